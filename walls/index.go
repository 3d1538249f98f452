package walls

import (
	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/gridpath/astar"
)

// block is one painted square stored in the R-tree.
type block struct {
	center astar.Position
	size   int
	bbox   rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (b *block) Bounds() rtreego.Rect {
	return b.bbox
}

// Index is an R-tree of square wall blocks. Each block covers exactly the
// pixels Set.Paint would block for the same center and size.
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex creates an empty block index.
func NewIndex() *Index {
	return &Index{tree: rtreego.NewTree(2, 25, 50)}
}

// AddBlock stores the square [cx-size, cx+size) × [cy-size, cy+size).
func (ix *Index) AddBlock(center astar.Position, size int) error {
	if size <= 0 {
		return ErrBadBrush
	}
	bbox, err := rtreego.NewRect(
		rtreego.Point{float64(center.X - size), float64(center.Y - size)},
		[]float64{float64(2 * size), float64(2 * size)},
	)
	if err != nil {
		return err
	}
	ix.tree.Insert(&block{center: center, size: size, bbox: bbox})

	return nil
}

// RemoveBlock deletes one block previously added with the same center and
// size. It reports whether a block was removed.
func (ix *Index) RemoveBlock(center astar.Position, size int) bool {
	for _, item := range ix.tree.SearchIntersect(pointRect(center)) {
		b := item.(*block)
		if b.center == center && b.size == size {
			return ix.tree.Delete(b)
		}
	}

	return false
}

// EraseAt deletes every block whose center lies strictly inside the window
// (click.X±size, click.Y±size) and returns how many were removed. Pixels of
// other blocks stay covered even where the erased blocks overlapped them.
func (ix *Index) EraseAt(click astar.Position, size int) (int, error) {
	if size <= 0 {
		return 0, ErrBadBrush
	}
	window, err := rtreego.NewRect(
		rtreego.Point{float64(click.X - size), float64(click.Y - size)},
		[]float64{float64(2 * size), float64(2 * size)},
	)
	if err != nil {
		return 0, err
	}

	var hits []*block
	for _, item := range ix.tree.SearchIntersect(window) {
		b := item.(*block)
		if abs(b.center.X-click.X) < size && abs(b.center.Y-click.Y) < size {
			hits = append(hits, b)
		}
	}
	for _, b := range hits {
		ix.tree.Delete(b)
	}

	return len(hits), nil
}

// Contains reports whether any block covers p.
// The R-tree query returns candidates; the half-open pixel test decides.
func (ix *Index) Contains(p astar.Position) bool {
	for _, item := range ix.tree.SearchIntersect(pointRect(p)) {
		b := item.(*block)
		if brushCovers(b.center, b.size, p) {
			return true
		}
	}

	return false
}

// Len returns the number of stored blocks.
func (ix *Index) Len() int {
	return ix.tree.Size()
}

// pointRect is a unit query box centred on p.
func pointRect(p astar.Position) rtreego.Rect {
	return rtreego.Point{float64(p.X), float64(p.Y)}.ToRect(0.5)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
