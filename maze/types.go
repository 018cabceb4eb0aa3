// Package maze defines core types, options, and sentinel errors
// for the maze subpackage of github.com/katalvlaran/labyrinth.
package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for maze operations.
var (
	// ErrInvalidGrid indicates malformed input: empty or ragged rows, an
	// unrecognized symbol, a missing start or end, or a bad override.
	ErrInvalidGrid = errors.New("maze: invalid grid")
	// ErrOutOfBounds indicates a coordinate outside [0,n)×[0,m).
	ErrOutOfBounds = errors.New("maze: coordinate out of bounds")
	// ErrBlocked indicates a move into a wall cell.
	ErrBlocked = errors.New("maze: move blocked by wall")
)

// Cell is the type of a single grid square.
type Cell uint8

const (
	// Floor is an open cell ('.').
	Floor Cell = iota
	// Wall is an impassable cell ('#').
	Wall
	// Start is the designated start cell ('A').
	Start
	// End is the designated end cell ('B').
	End
)

// Symbol returns the input character for c.
func (c Cell) Symbol() byte {
	switch c {
	case Wall:
		return '#'
	case Start:
		return 'A'
	case End:
		return 'B'
	default:
		return '.'
	}
}

// ParseCell maps an input character to its Cell.
// Only the upper-case symbols '.', '#', 'A' and 'B' are recognized.
func ParseCell(b byte) (Cell, bool) {
	switch b {
	case '.':
		return Floor, true
	case '#':
		return Wall, true
	case 'A':
		return Start, true
	case 'B':
		return End, true
	}
	return Floor, false
}

// Direction is one of the four cardinal moves.
type Direction uint8

const (
	// Up moves to row-1.
	Up Direction = iota
	// Down moves to row+1.
	Down
	// Left moves to column-1.
	Left
	// Right moves to column+1.
	Right
)

// Directions lists every Direction in enumeration order.
// Neighbors follows this order, so it decides ties between equally short paths.
var Directions = [4]Direction{Up, Down, Left, Right}

// directionOffsets holds the (row, col) delta of each Direction.
var directionOffsets = [4][2]int{
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

// String returns the one-letter move code: U, D, L or R.
func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Coordinate addresses a cell by 0-indexed row and column.
type Coordinate struct {
	Row, Col int
}

// Move returns the coordinate one step away from c in direction d.
// The result may lie outside the grid.
func (c Coordinate) Move(d Direction) Coordinate {
	off := directionOffsets[d]
	return Coordinate{Row: c.Row + off[0], Col: c.Col + off[1]}
}

// String formats c as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Neighbor is a passable cell adjacent to some coordinate, together with
// the direction that reaches it.
type Neighbor struct {
	At  Coordinate
	Dir Direction
}

// Path is an ordered sequence of moves from start to end.
type Path []Direction

// String renders p as a run of move codes, e.g. "DDRR".
func (p Path) String() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, d := range p {
		sb.WriteString(d.String())
	}
	return sb.String()
}

// Option configures grid construction via functional arguments.
type Option func(*gridOptions)

// gridOptions holds construction overrides.
type gridOptions struct {
	start, end       Coordinate
	hasStart, hasEnd bool
}

// WithStart places the start at c instead of the first 'A' in the rows.
// c must be in bounds and not a wall.
func WithStart(c Coordinate) Option {
	return func(o *gridOptions) {
		o.start, o.hasStart = c, true
	}
}

// WithEnd places the end at c instead of the first 'B' in the rows.
// Setting it to the start coordinate yields a zero-move maze.
func WithEnd(c Coordinate) Option {
	return func(o *gridOptions) {
		o.end, o.hasEnd = c, true
	}
}

// Grid is an immutable rectangular maze.
// cells is stored row-major: cells[row*cols+col].
type Grid struct {
	rows, cols int
	cells      []Cell
	start, end Coordinate
}
