// Package bfs provides breadth-first search over a maze.Grid, returning
// shortest-hop paths as sequences of Up/Down/Left/Right moves.
//
// What
//
//   - Explore cells in non-decreasing distance (move count) from the start.
//   - Record, for every cell, the direction and cell that first reached it.
//   - Rebuild the start→end move sequence by walking those links backward.
//   - Supports functional hooks at two stages:
//   - OnDiscover (a cell is first reached)
//   - OnExpand   (immediately before a cell's neighbors are enumerated)
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	maze.Grid.Neighbors yields neighbors in the fixed order Up, Down, Left,
//	Right and Search enqueues them in that order, so the discovered path is
//	fully reproducible. Among several shortest paths the one chosen is the
//	first in that enumeration order, layer by layer.
//
// Termination
//
//	Search stops when the end cell is discovered or when the queue drains.
//	Whether a path exists depends only on whether the end received a
//	predecessor; an unreachable end is a normal result, not an error.
//
// Complexity (n×m grid)
//
//   - Time:   O(n·m)   (each cell enqueued at most once, 4 neighbors each)
//   - Memory: O(n·m)   (visited set and predecessor map, sized up front)
//
// Usage
//
//	path, found, err := bfs.ShortestPath(g)
//	if err != nil {
//		// ErrGridNil, ErrOptionViolation, ErrBrokenChain, or a context error
//	}
//	if !found {
//		// end is walled off
//	}
//
//	// With functional options:
//	res, err := bfs.Search(
//		g,
//		bfs.WithContext(ctx),
//		bfs.WithMaxDepth(50),
//		bfs.WithOnDiscover(func(c maze.Coordinate, depth int) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrBrokenChain      if predecessor links do not lead back to the start.
package bfs
