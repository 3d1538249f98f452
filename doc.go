// Package gridpath is a heuristic shortest-path toolkit for integer planes
// with sparse obstacles, built for sandboxes that draw walls on a canvas and
// replay the search as it runs.
//
// Under the hood, everything is organized under three subpackages:
//
//	astar/  — the search: successors, goal window, heuristics, visit trace
//	walls/  — obstacle sets: hash set, brush strokes, raster masks, R-tree blocks
//	render/ — a visit hook that paints the trace, path and markers to PNG
//
// Quick ASCII example (step 10, FourWay):
//
//	S # G
//	. # .
//	. . .
//
// The search goes down, across and back up: six steps, ending inside the
// open window of half-width 10 around G.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
