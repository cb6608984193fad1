// SPDX-License-Identifier: MIT

package wavelet

import (
	"github.com/katalvlaran/multires/grid"
)

// workspace holds the per-call intermediates: one scaling and one signed
// wavelet field per level and axis. It lives for one call only.
type workspace struct {
	layout      *grid.CellData     // shape shared by every intermediate and output
	scaling     [][]*grid.CellData // [level][axis]
	high        [][]*grid.CellData // [level][axis]
	axisWindows [][]grid.Box       // [level][axis]
	windows     []grid.Box         // [level], intersection of the axis windows
}

// newWorkspace allocates zeroed intermediates shaped like layout.
func (t *Transform) newWorkspace(layout *grid.CellData) (*workspace, error) {
	ws := &workspace{
		layout:      layout,
		scaling:     make([][]*grid.CellData, t.numLevels),
		high:        make([][]*grid.CellData, t.numLevels),
		axisWindows: make([][]grid.Box, t.numLevels),
		windows:     make([]grid.Box, t.numLevels),
	}
	for li := 0; li < t.numLevels; li++ {
		ws.scaling[li] = make([]*grid.CellData, t.dim)
		ws.high[li] = make([]*grid.CellData, t.dim)
		ws.axisWindows[li] = make([]grid.Box, t.dim)
		for a := 0; a < t.dim; a++ {
			s, err := grid.NewCellData(layout.Box(), 1, layout.GhostWidth())
			if err != nil {
				return nil, err
			}
			h, err := grid.NewCellData(layout.Box(), 1, layout.GhostWidth())
			if err != nil {
				return nil, err
			}
			ws.scaling[li][a], ws.high[li][a] = s, h
			ws.axisWindows[li][a] = t.axisWindow(layout.Box(), li, a)
		}
		ws.windows[li] = intersectAll(ws.axisWindows[li])
	}

	return ws, nil
}

// componentOf returns component d of a field whose depth was already validated.
func componentOf(f *grid.CellData, d int) []float64 {
	c, _ := f.Component(d)

	return c
}

// component0 returns the first component of a field.
func component0(f *grid.CellData) []float64 { return componentOf(f, 0) }

// run is the level driver behind every public entry point.
// Stage 1 (Validate): entry checks; nothing is written on failure.
// Stage 2 (Prepare): zero the outputs, allocate intermediates, smooth if asked.
// Stage 3 (Execute): for li = 0..L-1, cascade every axis, combine the axes
// into coeffs[li], then compute means[li] when requested. Level li reads only
// level li-1 scaling along the same axis, so levels run strictly in order.
// Complexity: O(L * dim * stencil width * ghost-box size).
func (t *Transform) run(method string, field *grid.CellData, depth int, coeffs, means []*grid.CellData, smooth bool) (*workspace, error) {
	if err := t.validateCall(field, depth, coeffs, means); err != nil {
		return nil, wrapf(t.name, method, err)
	}
	t.logger.Debug("wavelet transform",
		"name", t.name, "method", method, "depth", depth, "smooth", smooth,
		"local_means", len(means) > 0, "workers", t.workers, "box", field.Box().String())

	for _, w := range coeffs {
		w.FillAll(0)
	}
	for _, m := range means {
		m.FillAll(0)
	}
	ws, err := t.newWorkspace(coeffs[0])
	if err != nil {
		return nil, wrapf(t.name, method, err)
	}

	// Level-0 input per axis: the raw component, or its smoothed copy along
	// that axis.
	inputs := make([][]float64, t.dim)
	raw, _ := field.Component(depth)
	for a := range inputs {
		inputs[a] = raw
	}
	if smooth {
		sm, err := smoothField(field, depth, t.workers)
		if err != nil {
			return nil, wrapf(t.name, method, err)
		}
		for a := range inputs {
			inputs[a] = componentOf(sm, a)
		}
	}

	interior := field.Box()
	for li := 0; li < t.numLevels; li++ {
		step := 1 << li
		sources := make([]meanSource, t.dim)
		highs := make([][]float64, t.dim)
		for a := 0; a < t.dim; a++ {
			src := meanSource{src: inputs[a], srcF: field, valid: field.GhostBox()}
			if li > 0 {
				src = meanSource{
					src:   component0(ws.scaling[li-1][a]),
					srcF:  ws.layout,
					valid: ws.axisWindows[li-1][a],
				}
			}
			sources[a] = src
			highs[a] = component0(ws.high[li][a])

			err := t.cascade(cascadePass{
				src:    src.src,
				srcF:   src.srcF,
				valid:  src.valid,
				low:    component0(ws.scaling[li][a]),
				high:   highs[a],
				dstF:   ws.layout,
				window: ws.axisWindows[li][a],
				axis:   a,
				step:   step,
			})
			if err != nil {
				return nil, wrapf(t.name, method, err)
			}
		}

		if err := t.combine(highs, ws.layout, component0(coeffs[li]), ws.windows[li]); err != nil {
			return nil, wrapf(t.name, method, err)
		}
		if len(means) > 0 {
			if err := t.localMean(sources, component0(means[li]), means[li], interior, step); err != nil {
				return nil, wrapf(t.name, method, err)
			}
		}
		t.logger.Debug("wavelet level done",
			"name", t.name, "level", li, "step", step, "window", ws.windows[li].String())
	}

	return ws, nil
}
