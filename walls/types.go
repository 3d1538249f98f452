package walls

import (
	"errors"

	"github.com/katalvlaran/gridpath/astar"
)

// Sentinel errors for wall construction.
var (
	// ErrBadBrush indicates a brush size that is zero or negative.
	ErrBadBrush = errors.New("walls: brush size must be positive")
	// ErrEmptyGrid indicates the mask has no rows or no columns.
	ErrEmptyGrid = errors.New("walls: mask must have at least one row and one column")
	// ErrNonRectangular indicates mask rows of differing lengths.
	ErrNonRectangular = errors.New("walls: all mask rows must have the same length")
	// ErrBadScale indicates a mask scale that is zero or negative.
	ErrBadScale = errors.New("walls: mask scale must be positive")
)

// MaskOptions contains tunable parameters for FromMask.
type MaskOptions struct {
	// Threshold is the minimum cell value considered a wall.
	Threshold int
	// Scale maps mask cell (x,y) onto plane position (x*Scale, y*Scale).
	Scale int
	// Brush, if positive, paints every wall cell with Set.Paint of this size
	// instead of blocking a single pixel. Negative values are rejected.
	Brush int
	// Center, if non-nil, shifts the scaled mask so that its midpoint
	// (W*Scale/2, H*Scale/2) lands on *Center.
	Center *astar.Position
}

// DefaultMaskOptions returns MaskOptions with Threshold=1, Scale=1,
// no brush and no centring.
func DefaultMaskOptions() MaskOptions {
	return MaskOptions{
		Threshold: 1,
		Scale:     1,
	}
}
