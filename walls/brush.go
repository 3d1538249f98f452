package walls

import "github.com/katalvlaran/gridpath/astar"

// Paint blocks every pixel (cx+i, cy+j) with i, j in [-size, size).
// The square is 2·size pixels wide and not centred exactly: its right and
// bottom edges stop one pixel short of cx+size and cy+size.
func (s Set) Paint(center astar.Position, size int) error {
	if size <= 0 {
		return ErrBadBrush
	}
	for i := -size; i < size; i++ {
		for j := -size; j < size; j++ {
			s.Add(astar.Position{X: center.X + i, Y: center.Y + j})
		}
	}

	return nil
}

// Erase clears the same square Paint would block.
func (s Set) Erase(center astar.Position, size int) error {
	if size <= 0 {
		return ErrBadBrush
	}
	for i := -size; i < size; i++ {
		for j := -size; j < size; j++ {
			s.Remove(astar.Position{X: center.X + i, Y: center.Y + j})
		}
	}

	return nil
}

// brushCovers reports whether p lies in the square painted at center.
func brushCovers(center astar.Position, size int, p astar.Position) bool {
	return p.X >= center.X-size && p.X < center.X+size &&
		p.Y >= center.Y-size && p.Y < center.Y+size
}
