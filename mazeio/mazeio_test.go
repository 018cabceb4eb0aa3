package mazeio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/mazeio"
)

// TestRead decodes well-formed inputs.
func TestRead(t *testing.T) {
	cases := []struct {
		name       string
		in         string
		n, m       int
		start, end maze.Coordinate
	}{
		{"Minimal", "1 2\nAB\n", 1, 2, maze.Coordinate{}, maze.Coordinate{Row: 0, Col: 1}},
		{"LowerCase", "2 2\na.\n#b\n", 2, 2, maze.Coordinate{}, maze.Coordinate{Row: 1, Col: 1}},
		{"CRLF", "2 3\r\nA.#\r\n..B\r\n", 2, 3, maze.Coordinate{}, maze.Coordinate{Row: 1, Col: 2}},
		{"LeadingBlankAndNoFinalNewline", "\n  3 1 \nB\n.\nA", 3, 1, maze.Coordinate{Row: 2, Col: 0}, maze.Coordinate{}},
		{"ExtraTrailingLinesIgnored", "1 2\nBA\nignored\n", 1, 2, maze.Coordinate{Row: 0, Col: 1}, maze.Coordinate{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := mazeio.Read(strings.NewReader(tc.in))
			require.NoError(t, err)
			n, m := g.Dims()
			require.Equal(t, tc.n, n)
			require.Equal(t, tc.m, m)
			require.Equal(t, tc.start, g.Start())
			require.Equal(t, tc.end, g.End())
		})
	}
}

// TestRead_Errors checks header, truncation, and grid errors.
func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", mazeio.ErrHeader},
		{"OneField", "3\n", mazeio.ErrHeader},
		{"NotNumber", "x 2\nAB\n", mazeio.ErrHeader},
		{"ZeroRows", "0 2\n", mazeio.ErrHeader},
		{"NegativeCols", "1 -2\nAB\n", mazeio.ErrHeader},
		{"Truncated", "3 2\nA.\n.B\n", mazeio.ErrTruncated},
		{"WrongWidth", "2 2\nA.\n.B.\n", maze.ErrInvalidGrid},
		{"BadSymbol", "1 3\nA*B\n", maze.ErrInvalidGrid},
		{"NoEnd", "1 2\nA.\n", maze.ErrInvalidGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mazeio.Read(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestRead_Options passes an end override through to the grid.
func TestRead_Options(t *testing.T) {
	g, err := mazeio.Read(strings.NewReader("1 1\nA\n"), maze.WithEnd(maze.Coordinate{}))
	require.NoError(t, err)
	require.Equal(t, g.Start(), g.End())
}

// TestWrite checks both result shapes.
func TestWrite(t *testing.T) {
	cases := []struct {
		name  string
		path  maze.Path
		found bool
		want  string
	}{
		{"NotFound", nil, false, "NO\n"},
		{"Single", maze.Path{maze.Right}, true, "YES\n1\nR\n"},
		{"Empty", maze.Path{}, true, "YES\n0\n\n"},
		{"Long", maze.Path{maze.Down, maze.Down, maze.Right, maze.Right}, true, "YES\n4\nDDRR\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, mazeio.Write(&buf, tc.path, tc.found))
			require.Equal(t, tc.want, buf.String())
		})
	}
}
