package astar

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Heuristic estimates the remaining cost from pos to goal.
type Heuristic func(pos, goal Position) float64

// Manhattan returns |goal.X-pos.X| + |goal.Y-pos.Y|.
func Manhattan(pos, goal Position) float64 {
	return float64(abs(goal.X-pos.X) + abs(goal.Y-pos.Y))
}

// Euclidean returns the straight-line distance between pos and goal.
func Euclidean(pos, goal Position) float64 {
	return planar.Distance(toPoint(pos), toPoint(goal))
}

func toPoint(p Position) orb.Point {
	return orb.Point{float64(p.X), float64(p.Y)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
