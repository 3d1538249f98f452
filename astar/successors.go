package astar

// InBounds reports whether 0 < p < limit. Both endpoints are excluded.
func InBounds(p, limit int) bool {
	return p > 0 && p < limit
}

// Successors returns the candidate positions one move away from pos.
//
// Candidate order is fixed per connectivity:
//
//	FourWay:  (x-s,y) (x,y-s) (x+s,y) (x,y+s)
//	EightWay: (x-s,y-s) (x-s,y+s) (x+s,y-s) (x+s,y+s)
//	AllEight: FourWay order, then EightWay order
//
// A candidate is kept iff it is not in walls and both coordinates are
// InBounds against the matching border dimension. walls may be nil.
// Unknown connectivity values yield no successors.
func Successors(pos Position, step int, conn Connectivity, walls Obstacles, borders Position) []Position {
	out := make([]Position, 0, 8)
	switch conn {
	case FourWay:
		out = appendOrthogonal(out, pos, step, walls, borders)
	case EightWay:
		out = appendDiagonal(out, pos, step, walls, borders)
	case AllEight:
		out = appendOrthogonal(out, pos, step, walls, borders)
		out = appendDiagonal(out, pos, step, walls, borders)
	}

	return out
}

func appendOrthogonal(out []Position, pos Position, step int, walls Obstacles, borders Position) []Position {
	for _, d := range [2]int{-step, step} {
		out = appendIfFree(out, Position{X: pos.X + d, Y: pos.Y}, walls, borders)
		out = appendIfFree(out, Position{X: pos.X, Y: pos.Y + d}, walls, borders)
	}

	return out
}

func appendDiagonal(out []Position, pos Position, step int, walls Obstacles, borders Position) []Position {
	for _, dx := range [2]int{-step, step} {
		for _, dy := range [2]int{-step, step} {
			out = appendIfFree(out, Position{X: pos.X + dx, Y: pos.Y + dy}, walls, borders)
		}
	}

	return out
}

func appendIfFree(out []Position, c Position, walls Obstacles, borders Position) []Position {
	if walls != nil && walls.Contains(c) {
		return out
	}
	if !InBounds(c.X, borders.X) || !InBounds(c.Y, borders.Y) {
		return out
	}

	return append(out, c)
}
