// Package bfs provides breadth-first search over a maze.Grid,
// returning shortest-hop paths, predecessor links, and discovery order.
//
// Search explores cells in increasing distance from the start,
// with optional hooks, depth limiting, and cancellation.
package bfs

import (
	"context"

	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/labyrinth/maze"
)

// queueItem pairs a coordinate with its BFS depth.
type queueItem struct {
	at    maze.Coordinate
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *maze.Grid
	opts    Options
	ctx     context.Context
	queue   *queue.Queue[queueItem]
	visited []bool
	nbrs    []maze.Neighbor
	res     *Result
}

// Search runs breadth-first search on g from its start toward its end,
// applying any number of functional Options.
//
// Each newly discovered cell records the direction and the cell it was
// reached from; the first discovery wins and is never overwritten, which
// makes every recorded chain a shortest-hop path. The end cell is never
// expanded, and the search stops as soon as the end is discovered.
//
// Returns ErrGridNil for a nil grid, ErrOptionViolation for bad options,
// or the context error if cancelled. An unreachable end is not an error:
// check Result.Found.
func Search(g *maze.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Prepare walker
	n, m := g.Dims()
	w := &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   queue.New[queueItem](),
		visited: make([]bool, g.Size()),
		nbrs:    make([]maze.Neighbor, 0, len(maze.Directions)),
		res: &Result{
			Start: g.Start(),
			End:   g.End(),
			Order: make([]maze.Coordinate, 0, g.Size()),
			Preds: NewPredecessors(n, m),
		},
	}

	// Seed queue with start (no predecessor)
	w.res.Preds.SetRoot(g.Start())
	w.discover(g.Start(), 0)
	if g.Start() == g.End() {
		return w.res, nil
	}
	// Main loop
	return w.res, w.loop()
}

// ShortestPath returns the moves of a shortest-hop path from g's start to
// its end. found is false, with a nil path and nil error, when the end is
// walled off. A maze whose start is its end yields an empty path and true.
func ShortestPath(g *maze.Grid, opts ...Option) (path maze.Path, found bool, err error) {
	res, err := Search(g, opts...)
	if err != nil {
		return nil, false, err
	}
	if !res.Found() {
		return nil, false, nil
	}
	path, err = res.PathTo(res.End)
	if err != nil {
		return nil, false, err
	}

	return path, true, nil
}

// discover marks c visited at depth d, appends it to Order,
// calls OnDiscover, and adds it to the queue.
func (w *walker) discover(c maze.Coordinate, d int) {
	w.visited[w.grid.Index(c)] = true
	w.res.Order = append(w.res.Order, c)
	w.opts.OnDiscover(c, d)
	w.queue.Enqueue(queueItem{at: c, depth: d})
}

// loop processes the queue until empty, the end is found, or cancellation.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if w.expand(w.queue.Dequeue()) {
			return nil
		}
	}
	return nil
}

// expand discovers every unvisited neighbor of item in enumeration order.
// It reports true once the end has been discovered.
func (w *walker) expand(item queueItem) bool {
	w.opts.OnExpand(item.at, item.depth)
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return false
	}

	w.nbrs = w.grid.AppendNeighbors(w.nbrs[:0], item.at)
	for _, nb := range w.nbrs {
		// first time seen?
		if w.visited[w.grid.Index(nb.At)] {
			continue
		}
		w.res.Preds.Link(nb.At, nb.Dir, item.at)
		w.discover(nb.At, nextDepth)
		if nb.At == w.res.End {
			return true
		}
	}
	return false
}
