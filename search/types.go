// Package search provides tunable options and error definitions
// for breadth-first search over an implicit state graph.
package search

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrNilFunc is returned when the neighbor or goal function is nil.
	ErrNilFunc = errors.New("search: neighbor and goal functions are required")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrBudgetExceeded is returned when the visited set outgrows MaxStates.
	ErrBudgetExceeded = errors.New("search: state budget exceeded")

	// ErrParentsNotRecorded is returned by PathTo unless WithParents was set.
	ErrParentsNotRecorded = errors.New("search: parents not recorded")

	// ErrNoPath is returned by PathTo for a state the search never reached.
	ErrNoPath = errors.New("search: no path")
)

// NeighborFunc returns every state reachable from s in one move.
// It alone decides what a legal move is.
type NeighborFunc[S comparable] func(s S) []S

// GoalFunc reports whether s terminates the search.
type GoalFunc[S comparable] func(s S) bool

// Progress is a snapshot of the search taken right after a dequeue.
type Progress struct {
	Depth    int // depth of the state just dequeued
	Frontier int // states still waiting in the queue
	Visited  int // distinct states ever enqueued
}

// ProgressFunc observes search progress. It cannot influence the search.
type ProgressFunc func(p Progress)

// Option configures Search behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize Search execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MaxStates, if > 0, caps the size of the visited set.
	MaxStates int

	// OnProgress is called after every dequeue.
	OnProgress ProgressFunc

	// Parents records the predecessor of every state so PathTo works.
	Parents bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - context.Background()
//   - no depth limit, no state budget
//   - no-op progress hook
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxDepth:   0,
		MaxStates:  0,
		OnProgress: func(Progress) {},
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

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: never enqueue states deeper than d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxStates aborts the search with ErrBudgetExceeded once more than n
// distinct states would have to be remembered. n == 0 disables the budget.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithOnProgress registers a callback to run after each dequeue.
func WithOnProgress(fn ProgressFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProgress = fn
		}
	}
}

// WithParents records each state's predecessor, enabling Result.PathTo.
// It costs one map entry per visited state.
func WithParents() Option {
	return func(o *Options) {
		o.Parents = true
	}
}

// Result holds the outcome of a search:
//   - Found: whether a goal state was reached.
//   - Depth: moves from the initial state to Goal (valid only if Found).
//   - Goal: the first goal state discovered.
//   - Visited: distinct states ever enqueued, the initial state included.
//   - Expanded: states dequeued and passed to the neighbor function.
type Result[S comparable] struct {
	Found    bool
	Depth    int
	Goal     S
	Visited  int
	Expanded int

	start   S
	parents map[S]S // nil unless WithParents
}

// PathTo reconstructs the states from the initial state to dest, both
// included. dest may be the goal or any state that was enqueued.
// Returns ErrParentsNotRecorded without WithParents, or ErrNoPath if dest
// was never reached.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if r.parents == nil {
		return nil, ErrParentsNotRecorded
	}
	if _, ok := r.parents[dest]; !ok && dest != r.start {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []S{}
	for cur := dest; ; {
		path = append(path, cur)
		if cur == r.start {
			break
		}
		cur = r.parents[cur]
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
