package walls

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
)

// FromMask builds a Set from a non-empty, rectangular raster.
// Every cell values[y][x] ≥ opts.Threshold becomes a wall at
// (x*opts.Scale+dx, y*opts.Scale+dy), where (dx, dy) is zero unless
// opts.Center is set. With opts.Brush > 0 the wall is the brush square
// painted at that position.
//
// Returns ErrBadScale if Scale ≤ 0, ErrBadBrush if Brush < 0,
// ErrEmptyGrid if values has no rows or no columns and
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H×Brush²) time and memory.
func FromMask(values [][]int, opts MaskOptions) (Set, error) {
	if opts.Scale <= 0 {
		return nil, fmt.Errorf("%w (%d)", ErrBadScale, opts.Scale)
	}
	if opts.Brush < 0 {
		return nil, fmt.Errorf("%w (%d)", ErrBadBrush, opts.Brush)
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	var dx, dy int
	if opts.Center != nil {
		dx = opts.Center.X - w*opts.Scale/2
		dy = opts.Center.Y - len(values)*opts.Scale/2
	}

	s := NewSet()
	for y, row := range values {
		for x, v := range row {
			if v < opts.Threshold {
				continue
			}
			p := astar.Position{X: x*opts.Scale + dx, Y: y*opts.Scale + dy}
			if opts.Brush == 0 {
				s.Add(p)
				continue
			}
			if err := s.Paint(p, opts.Brush); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}
