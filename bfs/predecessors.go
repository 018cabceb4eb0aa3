package bfs

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
)

// linkState distinguishes unreached cells from the root and linked cells.
type linkState uint8

const (
	absent linkState = iota
	root
	linked
)

// entry is one slot of the predecessor map.
type entry struct {
	state linkState
	dir   maze.Direction
	from  maze.Coordinate
	depth int
}

// Step is a predecessor link: the move Dir taken from From to arrive.
type Step struct {
	Dir  maze.Direction
	From maze.Coordinate
}

// Predecessors maps each coordinate of an n×m grid to how it was first
// reached. Storage is allocated once for all n×m cells.
type Predecessors struct {
	rows, cols int
	entries    []entry
}

// NewPredecessors returns an empty predecessor map for an n×m grid.
func NewPredecessors(n, m int) *Predecessors {
	if n < 0 {
		n = 0
	}
	if m < 0 {
		m = 0
	}
	return &Predecessors{rows: n, cols: m, entries: make([]entry, n*m)}
}

// index returns the row-major slot of c, or -1 when c is out of range.
func (p *Predecessors) index(c maze.Coordinate) int {
	if c.Row < 0 || c.Row >= p.rows || c.Col < 0 || c.Col >= p.cols {
		return -1
	}
	return c.Row*p.cols + c.Col
}

// SetRoot marks c as the start: reached, with no predecessor, at depth 0.
// It returns false if c already has an entry or is out of range.
func (p *Predecessors) SetRoot(c maze.Coordinate) bool {
	i := p.index(c)
	if i < 0 || p.entries[i].state != absent {
		return false
	}
	p.entries[i] = entry{state: root}
	return true
}

// Link records that c was reached by moving dir from from.
// The first link for c wins: it returns false, leaving the map unchanged,
// if c already has an entry or is out of range.
// The depth of c is one more than the depth of from, when from is known.
func (p *Predecessors) Link(c maze.Coordinate, dir maze.Direction, from maze.Coordinate) bool {
	i := p.index(c)
	if i < 0 || p.entries[i].state != absent {
		return false
	}
	depth := 1
	if j := p.index(from); j >= 0 && p.entries[j].state != absent {
		depth = p.entries[j].depth + 1
	}
	p.entries[i] = entry{state: linked, dir: dir, from: from, depth: depth}
	return true
}

// Lookup returns the predecessor step for c. ok is false when c was not
// reached. The root reports ok with a zero Step; use IsRoot to tell it apart.
func (p *Predecessors) Lookup(c maze.Coordinate) (step Step, ok bool) {
	i := p.index(c)
	if i < 0 || p.entries[i].state == absent {
		return Step{}, false
	}
	e := p.entries[i]
	return Step{Dir: e.dir, From: e.from}, true
}

// IsRoot reports whether c is the root of the map.
func (p *Predecessors) IsRoot(c maze.Coordinate) bool {
	i := p.index(c)
	return i >= 0 && p.entries[i].state == root
}

// Depth returns the recorded distance of c from the root.
func (p *Predecessors) Depth(c maze.Coordinate) (int, bool) {
	i := p.index(c)
	if i < 0 || p.entries[i].state == absent {
		return 0, false
	}
	return p.entries[i].depth, true
}

// Reconstruct follows predecessor links from end back to the root and
// returns the moves in start-to-end order. The walk is iterative, so chains
// as long as the whole grid are fine.
//
// Returns ErrBrokenChain if end or any link target has no entry, or if the
// chain is longer than the map (a cycle).
// Complexity: O(L) time, O(L) memory, L = path length.
func Reconstruct(p *Predecessors, end maze.Coordinate) (maze.Path, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil predecessor map", ErrBrokenChain)
	}
	// build reversed path
	path := maze.Path{}
	limit := len(p.entries)
	for cur := end; ; {
		i := p.index(cur)
		if i < 0 {
			return nil, fmt.Errorf("%w: %v outside %d×%d map", ErrBrokenChain, cur, p.rows, p.cols)
		}
		e := p.entries[i]
		if e.state == absent {
			return nil, fmt.Errorf("%w: %v was never reached", ErrBrokenChain, cur)
		}
		if e.state == root {
			break
		}
		if len(path) >= limit {
			return nil, fmt.Errorf("%w: cycle through %v", ErrBrokenChain, cur)
		}
		path = append(path, e.dir)
		cur = e.from
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
