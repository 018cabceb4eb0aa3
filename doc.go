// Package labyrinth finds shortest paths through rectangular grid mazes.
//
// A maze is n rows of m cells: floor '.', wall '#', one start 'A' and one
// end 'B'. Moves go Up, Down, Left or Right into any non-wall cell. The
// answer is the fewest-move route from A to B, written as a run of
// U/D/L/R letters, or NO when walls cut B off.
//
// Quick ASCII example:
//
//	A . #
//	# . .
//	# # B
//
// has the answer RDRD (4 moves).
//
// Under the hood, everything is organized under a few subpackages:
//
//	maze/           — Grid, Cell, Direction, Path; neighbor enumeration and path replay
//	bfs/            — breadth-first search, predecessor map, path reconstruction
//	mazeio/         — "n m" + rows input decoder and NO / YES result encoder
//	cmd/labyrinth/  — command-line front end
//
//	go install github.com/katalvlaran/labyrinth/cmd/labyrinth@latest
package labyrinth
