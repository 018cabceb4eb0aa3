// Package maze models a rectangular grid maze as an implicit graph whose
// vertices are passable cells and whose edges join orthogonal neighbors.
//
// What:
//
//   - Grid wraps n×m cells of four kinds: Floor '.', Wall '#', Start 'A', End 'B'.
//   - Neighbors enumerates in-bounds, non-wall cells around a coordinate in the
//     fixed order Up, Down, Left, Right.
//   - Walk replays a Path from the start and reports where it ends.
//
// Construction:
//
//   - FromRows / FromStrings scan rows in row-major order; the first 'A' is the
//     start and the first 'B' is the end. Later duplicates are treated as
//     their cell type but do not move the start or end.
//   - New additionally checks the rows against declared dimensions n and m.
//   - WithStart / WithEnd override the scanned positions. This is the only way
//     to express a maze whose start and end share a cell.
//
// Complexity:
//
//   - FromRows:  O(n×m), Memory: O(n×m).
//   - Neighbors: O(1).
//   - Walk:      O(len(path)).
//
// Errors:
//
//   - ErrInvalidGrid: empty or ragged rows, unknown symbol, missing start/end,
//     dimension mismatch, or an override on a wall / out of bounds.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrBlocked: a walked path steps into a wall.
package maze
