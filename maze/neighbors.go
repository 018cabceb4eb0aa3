package maze

// Neighbors returns the passable cells orthogonally adjacent to c, each
// paired with the direction that reaches it. Candidates are produced in the
// order Up, Down, Left, Right; those outside the grid or on a Wall are dropped.
// A coordinate outside the grid has no neighbors.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coordinate) []Neighbor {
	return g.AppendNeighbors(make([]Neighbor, 0, len(Directions)), c)
}

// AppendNeighbors is Neighbors that appends to dst, letting a traversal
// reuse one buffer for every expansion.
func (g *Grid) AppendNeighbors(dst []Neighbor, c Coordinate) []Neighbor {
	if !g.InBounds(c) {
		return dst
	}
	for _, d := range Directions {
		nc := c.Move(d)
		if !g.InBounds(nc) || g.cells[g.Index(nc)] == Wall {
			continue
		}
		dst = append(dst, Neighbor{At: nc, Dir: d})
	}
	return dst
}
