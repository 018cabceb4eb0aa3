// Package bfs provides tunable options and error definitions
// for breadth-first search over a maze.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrBrokenChain is returned when predecessor links do not lead back to
	// the start: a cycle, a dangling link, or an unreached coordinate.
	ErrBrokenChain = errors.New("bfs: broken predecessor chain")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnDiscover is called when a coordinate is first reached and its
	// predecessor fixed. Receives the coordinate and its distance from the start.
	OnDiscover func(c maze.Coordinate, depth int)

	// OnExpand is called immediately before a coordinate's neighbors are enumerated.
	OnExpand func(c maze.Coordinate, depth int)

	// MaxDepth, if > 0, stops discovery beyond this many moves.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnDiscover, OnExpand)
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnDiscover: func(maze.Coordinate, int) {},
		OnExpand:   func(maze.Coordinate, int) {},
		MaxDepth:   0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnDiscover registers a callback to run when a coordinate is discovered.
func WithOnDiscover(fn func(c maze.Coordinate, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnExpand registers a callback to run before a coordinate is expanded.
func WithOnExpand(fn func(c maze.Coordinate, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxDepth stops the search from discovering cells more than d moves away.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a search:
//   - Start, End: the grid's endpoints.
//   - Order: coordinates in discovery sequence, starting with Start.
//   - Preds: first-discovery predecessor of every reached coordinate.
type Result struct {
	Start, End maze.Coordinate
	Order      []maze.Coordinate
	Preds      *Predecessors
}

// Found reports whether the end coordinate was reached.
func (r *Result) Found() bool {
	_, ok := r.Preds.Lookup(r.End)
	return ok
}

// Distance returns the number of moves from the start to c,
// and false if c was not reached.
func (r *Result) Distance(c maze.Coordinate) (int, bool) {
	return r.Preds.Depth(c)
}

// PathTo reconstructs the moves from the start to dest.
// Returns ErrBrokenChain if dest was not reached.
func (r *Result) PathTo(dest maze.Coordinate) (maze.Path, error) {
	return Reconstruct(r.Preds, dest)
}
