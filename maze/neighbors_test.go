package maze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/maze"
)

// TestNeighbors checks order, bounds filtering and wall filtering.
func TestNeighbors(t *testing.T) {
	g, err := maze.FromStrings([]string{
		"A.#",
		"...",
		"#.B",
	})
	require.NoError(t, err)

	cases := []struct {
		name string
		at   maze.Coordinate
		want []maze.Neighbor
	}{
		{"Centre", maze.Coordinate{Row: 1, Col: 1}, []maze.Neighbor{
			{At: maze.Coordinate{Row: 0, Col: 1}, Dir: maze.Up},
			{At: maze.Coordinate{Row: 2, Col: 1}, Dir: maze.Down},
			{At: maze.Coordinate{Row: 1, Col: 0}, Dir: maze.Left},
			{At: maze.Coordinate{Row: 1, Col: 2}, Dir: maze.Right},
		}},
		{"CornerTopLeft", maze.Coordinate{Row: 0, Col: 0}, []maze.Neighbor{
			{At: maze.Coordinate{Row: 1, Col: 0}, Dir: maze.Down},
			{At: maze.Coordinate{Row: 0, Col: 1}, Dir: maze.Right},
		}},
		{"WallsFiltered", maze.Coordinate{Row: 1, Col: 2}, []maze.Neighbor{
			{At: maze.Coordinate{Row: 2, Col: 2}, Dir: maze.Down},
			{At: maze.Coordinate{Row: 1, Col: 1}, Dir: maze.Left},
		}},
		{"OutsideGrid", maze.Coordinate{Row: 5, Col: 5}, []maze.Neighbor{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, g.Neighbors(tc.at))
		})
	}
}

// TestNeighbors_Isolated verifies a walled-in cell has no neighbors.
func TestNeighbors_Isolated(t *testing.T) {
	g, err := maze.FromStrings([]string{
		".#.",
		"#A#",
		"B#.",
	})
	require.NoError(t, err)
	require.Empty(t, g.Neighbors(g.Start()))
}

// TestAppendNeighbors reuses a buffer across calls.
func TestAppendNeighbors(t *testing.T) {
	g, err := maze.FromStrings([]string{"A.B"})
	require.NoError(t, err)
	buf := make([]maze.Neighbor, 0, 4)
	buf = g.AppendNeighbors(buf[:0], maze.Coordinate{Row: 0, Col: 1})
	require.Len(t, buf, 2)
	buf = g.AppendNeighbors(buf[:0], maze.Coordinate{Row: 0, Col: 0})
	require.Equal(t, []maze.Neighbor{{At: maze.Coordinate{Row: 0, Col: 1}, Dir: maze.Right}}, buf)
}
