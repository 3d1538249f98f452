package walls

import (
	"sort"

	"github.com/katalvlaran/gridpath/astar"
)

// Set is a hash set of blocked positions. The zero value is not usable; use NewSet.
type Set map[astar.Position]struct{}

// NewSet returns a Set holding ps.
func NewSet(ps ...astar.Position) Set {
	s := make(Set, len(ps))
	for _, p := range ps {
		s[p] = struct{}{}
	}

	return s
}

// Add marks p as blocked.
func (s Set) Add(p astar.Position) { s[p] = struct{}{} }

// Remove clears p. Removing an absent position is a no-op.
func (s Set) Remove(p astar.Position) { delete(s, p) }

// Contains reports whether p is blocked.
func (s Set) Contains(p astar.Position) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of blocked positions.
func (s Set) Len() int { return len(s) }

// Positions returns the blocked positions sorted by Y, then X.
func (s Set) Positions() []astar.Position {
	out := make([]astar.Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})

	return out
}
