package maze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/maze"
)

// TestWalk replays valid and invalid paths on a small maze.
func TestWalk(t *testing.T) {
	g, err := maze.FromStrings([]string{
		"A#B",
		"...",
	})
	require.NoError(t, err)

	cases := []struct {
		name string
		path maze.Path
		end  maze.Coordinate
		err  error
	}{
		{"Empty", maze.Path{}, maze.Coordinate{Row: 0, Col: 0}, nil},
		{"AroundWall", maze.Path{maze.Down, maze.Right, maze.Right, maze.Up}, maze.Coordinate{Row: 0, Col: 2}, nil},
		{"IntoWall", maze.Path{maze.Right}, maze.Coordinate{Row: 0, Col: 0}, maze.ErrBlocked},
		{"OffTop", maze.Path{maze.Up}, maze.Coordinate{Row: 0, Col: 0}, maze.ErrOutOfBounds},
		{"OffBottom", maze.Path{maze.Down, maze.Down}, maze.Coordinate{Row: 1, Col: 0}, maze.ErrOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			at, err := g.Walk(tc.path)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tc.end, at)
		})
	}
}
