// Package astar implements a heuristic shortest-path search over an implicit,
// sparsely obstructed integer plane.
//
// What
//
//   - The plane has no stored graph: neighbors of a Position are generated on
//     demand from a step size, a Connectivity tag, the plane Borders and an
//     Obstacles set.
//   - The search stops as soon as a popped position falls inside the goal
//     tolerance window: the open square of half-width StepSize around Goal.
//     The literal goal coordinate may never be visited.
//   - Frontier entries are ordered by (priority, sequence). The sequence is an
//     insertion counter owned by the search invocation, so equal priorities are
//     resolved by insertion order and results are fully reproducible.
//   - Expanded positions go to a closed set and are never expanded again, even
//     when reached later at a lower cost.
//
// Heuristics
//
//   - Manhattan (default) ranks the frontier.
//   - Euclidean is selectable with WithHeuristic(Euclidean).
//
// Connectivity
//
//   - FourWay:  (x±s, y) and (x, y±s).
//   - EightWay: the four diagonals (x±s, y±s) only; orthogonal moves are NOT produced.
//   - AllEight: the four orthogonal moves followed by the four diagonals.
//
// Visit trace
//
//	With WithRecordVisits or WithOnVisit, every pop increments the visit count
//	of the popped position (re-pops of closed positions included) and appends a
//	Visit to Result.Trace. The optional VisitHook runs synchronously in pop
//	order and may return an opaque render handle; the engine only stores it.
//
// Errors
//
//   - ErrConfiguration wraps ErrStartUnset, ErrGoalUnset, ErrBadStepSize,
//     ErrBadBorders and ErrBadConnectivity; nothing is searched in that case.
//   - ErrOptionViolation is returned for invalid Option arguments.
//   - Context cancellation returns the partial Result and the wrapped ctx error.
//   - Exhaustion is not an error: Result.Found is false and Result.Path is nil.
//
// Complexity (N = free, in-bounds, reachable positions; d = successors per node)
//
//   - Time:   O(N·d·log(N·d))
//   - Memory: O(N·d) frontier entries of constant size; each links to the
//     entry it was pushed from and the path is rebuilt once, on success.
//
// Usage
//
//	start, goal := astar.Position{X: 10, Y: 10}, astar.Position{X: 90, Y: 90}
//	res, err := astar.Search(astar.Problem{
//		Borders: astar.Position{X: 100, Y: 100},
//		Walls:   walls.NewSet(),
//		Start:   &start,
//		Goal:    &goal,
//	}, astar.WithStepSize(5))
package astar
