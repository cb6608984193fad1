// SPDX-License-Identifier: MIT

package wavelet

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the declarative form of a Transform, as read from a driver's
// input file:
//
//	name: density_wavelet
//	dim: 2
//	levels: 3
//	vanishing_moments: 4
//	smooth: true
//	workers: 4
type Config struct {
	Name             string `yaml:"name"`
	Dim              int    `yaml:"dim"`
	Levels           int    `yaml:"levels"`
	VanishingMoments int    `yaml:"vanishing_moments"`
	Smooth           bool   `yaml:"smooth"`
	Workers          int    `yaml:"workers"`
}

// DefaultConfig returns a 2-D, two-level, k=2 configuration without smoothing.
func DefaultConfig() Config {
	return Config{
		Name:             DefaultName,
		Dim:              2,
		Levels:           2,
		VanishingMoments: 2,
		Workers:          DefaultWorkers,
	}
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Unknown keys are rejected. Empty input yields the defaults.
// Errors: ErrConfig (wrapping the decoder or validation cause).
func ParseConfig(data []byte) (Config, error) {
	return LoadConfig(bytes.NewReader(data))
}

// LoadConfig is ParseConfig over a reader.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, joinCause(ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field without building a transform.
func (c Config) Validate() error {
	if c.Dim < 1 || c.Dim > 3 {
		return joinCause(ErrConfig, fmt.Errorf("dim=%d: %w", c.Dim, ErrBadDimension))
	}
	if _, err := RequiredGhostWidth(c.Levels, c.VanishingMoments); err != nil {
		return joinCause(ErrConfig, err)
	}
	if c.Workers < 1 {
		return joinCause(ErrConfig, fmt.Errorf("workers=%d must be >= 1", c.Workers))
	}

	return nil
}

// Build validates c and returns the matching Transform. Extra options are
// applied after the ones derived from c.
func (c Config) Build(opts ...Option) (*Transform, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	all := append([]Option{WithName(c.Name), WithWorkers(c.Workers)}, opts...)

	return New(c.Dim, c.Levels, c.VanishingMoments, all...)
}
