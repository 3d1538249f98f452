// Package render paints an astar search onto an image.
//
// Canvas is a passive consumer: its Visit method satisfies astar.VisitHook and
// draws one disc per pop, tinted by visit count. The engine never owns any
// rendering state; it only stores the handle Visit returns.
//
// Draw operations are counted, and Visit returns the count before its own dot
// as the handle. Every dot counts once; a DrawWalls call counts once for the
// whole wall layer.
//
// Colours:
//
//   - walls:  #476042
//   - visits: rgb(170, 255-20·count, 241), green channel clamped at 0
//   - path:   #1ded0e
//   - start:  #FF5733
//   - goal:   #3F33FF
package render
