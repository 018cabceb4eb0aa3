package maze

import "fmt"

// New constructs a Grid of declared size n×m from rows.
// It returns ErrInvalidGrid if n or m is not positive, if len(rows) != n,
// or if any row is not exactly m cells wide, and otherwise behaves like FromRows.
func New(n, m int, rows [][]byte, opts ...Option) (*Grid, error) {
	if n <= 0 || m <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %d×%d", ErrInvalidGrid, n, m)
	}
	if len(rows) != n {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidGrid, n, len(rows))
	}
	for i, row := range rows {
		if len(row) != m {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidGrid, i, len(row), m)
		}
	}

	return FromRows(rows, opts...)
}

// FromStrings is FromRows for string rows.
func FromStrings(rows []string, opts ...Option) (*Grid, error) {
	raw := make([][]byte, len(rows))
	for i, s := range rows {
		raw[i] = []byte(s)
	}

	return FromRows(raw, opts...)
}

// FromRows constructs a Grid from a non-empty, rectangular set of rows.
// Each byte must be one of '.', '#', 'A', 'B'. The first 'A' and the first 'B'
// in row-major order become the start and end; duplicates are permitted.
// The input is copied, so later changes to rows do not affect the Grid.
// Complexity: O(n×m) time and memory.
func FromRows(rows [][]byte, opts ...Option) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidGrid)
	}
	var o gridOptions
	for _, opt := range opts {
		opt(&o)
	}

	n, m := len(rows), len(rows[0])
	g := &Grid{rows: n, cols: m, cells: make([]Cell, n*m)}
	foundStart, foundEnd := false, false
	for r, row := range rows {
		if len(row) != m {
			return nil, fmt.Errorf("%w: all rows must have the same length (row %d has %d, want %d)",
				ErrInvalidGrid, r, len(row), m)
		}
		for c, b := range row {
			cell, ok := ParseCell(b)
			if !ok {
				return nil, fmt.Errorf("%w: unrecognized symbol %q at (%d,%d)", ErrInvalidGrid, b, r, c)
			}
			g.cells[r*m+c] = cell
			switch {
			case cell == Start && !foundStart:
				g.start, foundStart = Coordinate{Row: r, Col: c}, true
			case cell == End && !foundEnd:
				g.end, foundEnd = Coordinate{Row: r, Col: c}, true
			}
		}
	}

	if o.hasStart {
		if err := g.checkOverride("start", o.start); err != nil {
			return nil, err
		}
		g.start, foundStart = o.start, true
	}
	if o.hasEnd {
		if err := g.checkOverride("end", o.end); err != nil {
			return nil, err
		}
		g.end, foundEnd = o.end, true
	}
	if !foundStart {
		return nil, fmt.Errorf("%w: no start cell 'A'", ErrInvalidGrid)
	}
	if !foundEnd {
		return nil, fmt.Errorf("%w: no end cell 'B'", ErrInvalidGrid)
	}

	return g, nil
}

// checkOverride validates a WithStart/WithEnd coordinate.
func (g *Grid) checkOverride(what string, c Coordinate) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s %v outside %d×%d grid", ErrInvalidGrid, what, c, g.rows, g.cols)
	}
	if g.cells[g.Index(c)] == Wall {
		return fmt.Errorf("%w: %s %v is a wall", ErrInvalidGrid, what, c)
	}
	return nil
}

// Dims returns the number of rows n and columns m.
func (g *Grid) Dims() (n, m int) {
	return g.rows, g.cols
}

// Size returns n×m, the number of cells.
func (g *Grid) Size() int {
	return len(g.cells)
}

// Start returns the start coordinate.
func (g *Grid) Start() Coordinate { return g.start }

// End returns the end coordinate.
func (g *Grid) End() Coordinate { return g.end }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// CellAt returns the cell at c, or ErrOutOfBounds.
func (g *Grid) CellAt(c Coordinate) (Cell, error) {
	if !g.InBounds(c) {
		return Floor, fmt.Errorf("%w: %v in %d×%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return g.cells[g.Index(c)], nil
}

// Index maps c to its row-major index: Row*m + Col.
// c must be in bounds.
func (g *Grid) Index(c Coordinate) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coordinate.
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{Row: idx / g.cols, Col: idx % g.cols}
}

// String renders the grid back to its symbol rows, one per line.
// Overridden start/end positions are not drawn.
func (g *Grid) String() string {
	buf := make([]byte, 0, g.rows*(g.cols+1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			buf = append(buf, g.cells[r*g.cols+c].Symbol())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
