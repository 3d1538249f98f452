// Package walls provides obstacle sets for astar searches.
//
// What:
//
//   - Set holds individual blocked positions in a hash set.
//   - Paint and Erase stamp or clear a square brush of blocked pixels, the way
//     an interactive canvas turns a click into a wall.
//   - FromMask turns a rectangular raster (for example an edge-detection
//     output) into a Set, scaling cell coordinates onto the search plane.
//     MaskOptions.Brush paints each edge cell as a brush stroke and
//     MaskOptions.Center centres the mask on a canvas.
//   - Index stores whole square blocks in an R-tree instead of one entry per
//     pixel, for large brush strokes on big planes. EraseAt removes every
//     stroke whose center falls inside the click window.
//
// Both Set and Index satisfy astar.Obstacles.
//
// Complexity:
//
//   - Set.Contains:   O(1).
//   - Paint / Erase:  O(size²).
//   - FromMask:       O(W×H), or O(W×H×Brush²) with a brush.
//   - Index.EraseAt:  O(log B + k) plus one R-tree delete per erased block.
//   - Index.Contains: O(log B + k) for B blocks, k candidate blocks at the point.
//
// Errors:
//
//   - ErrBadBrush: brush size must be positive (mask brush: not negative).
//   - ErrEmptyGrid: mask has no rows or no columns.
//   - ErrNonRectangular: mask rows have differing lengths.
//   - ErrBadScale: mask scale must be positive.
package walls
