package maze

import "fmt"

// Walk applies p move by move from the start and returns the final coordinate.
// It fails with ErrOutOfBounds if a move leaves the grid and with ErrBlocked
// if a move enters a wall; the error names the offending step.
// Complexity: O(len(p)).
func (g *Grid) Walk(p Path) (Coordinate, error) {
	at := g.start
	for i, d := range p {
		next := at.Move(d)
		cell, err := g.CellAt(next)
		if err != nil {
			return at, fmt.Errorf("step %d (%v from %v): %w", i, d, at, err)
		}
		if cell == Wall {
			return at, fmt.Errorf("%w: step %d (%v from %v) enters %v", ErrBlocked, i, d, at, next)
		}
		at = next
	}
	return at, nil
}
