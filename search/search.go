package search

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// node pairs a state with its BFS depth.
type node[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable search state. One walker per Search call.
type walker[S comparable] struct {
	neighbors NeighborFunc[S]
	isGoal    GoalFunc[S]
	opts      Options
	queue     []node[S]
	visited   mapset.Set[S]
	res       *Result[S]
}

// Search runs breadth-first search from initial, expanding states with
// neighbors until isGoal accepts one of them.
//
// The goal test runs on each neighbor as soon as it is generated, so the
// reported depth is the first level that contains a goal. A goal that was
// never found is not an error: Result.Found is false and err is nil.
// Returns ErrNilFunc or ErrOptionViolation for invalid input, the context
// error on cancellation, or ErrBudgetExceeded when MaxStates is hit.
func Search[S comparable](initial S, neighbors NeighborFunc[S], isGoal GoalFunc[S], opts ...Option) (*Result[S], error) {
	if neighbors == nil || isGoal == nil {
		return nil, ErrNilFunc
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		neighbors: neighbors,
		isGoal:    isGoal,
		opts:      o,
		visited:   mapset.New[S](),
		res:       &Result[S]{start: initial},
	}
	if o.Parents {
		w.res.parents = make(map[S]S)
	}
	w.enqueue(initial, 0)

	if isGoal(initial) {
		w.res.Found = true
		w.res.Goal = initial
		w.res.Visited = w.visited.Size()
		return w.res, nil
	}

	err := w.loop()
	w.res.Visited = w.visited.Size()

	return w.res, err
}

// ShortestDepth is Search without options: it returns the minimum number of
// moves to a goal and whether one was reachable at all.
// A nil neighbors or isGoal is a programming error and panics with ErrNilFunc.
func ShortestDepth[S comparable](initial S, neighbors NeighborFunc[S], isGoal GoalFunc[S]) (int, bool) {
	res, err := Search(initial, neighbors, isGoal)
	if err != nil {
		panic(err)
	}
	if !res.Found {
		return 0, false
	}
	return res.Depth, true
}

// enqueue marks s visited and appends it to the frontier at depth d.
func (w *walker[S]) enqueue(s S, d int) {
	w.visited.Put(s)
	w.queue = append(w.queue, node[S]{state: s, depth: d})
}

// dequeue pops the earliest node and reports progress.
func (w *walker[S]) dequeue() node[S] {
	n := w.queue[0]
	var zero node[S]
	w.queue[0] = zero
	w.queue = w.queue[1:]
	w.res.Expanded++
	w.opts.OnProgress(Progress{
		Depth:    n.depth,
		Frontier: len(w.queue),
		Visited:  w.visited.Size(),
	})
	return n
}

// loop processes the frontier until a goal is found, it empties,
// the context is cancelled, or the budget runs out.
func (w *walker[S]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		n := w.dequeue()
		next := n.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		done, err := w.expand(n.state, next)
		if err != nil || done {
			return err
		}
	}
	return nil
}

// expand feeds every neighbor of s through the goal test and the visited
// set. It reports true once a goal has been recorded in the result.
func (w *walker[S]) expand(s S, next int) (bool, error) {
	for _, nbr := range w.neighbors(s) {
		if w.isGoal(nbr) {
			w.link(nbr, s)
			w.res.Found = true
			w.res.Depth = next
			w.res.Goal = nbr
			return true, nil
		}
		if w.visited.Has(nbr) {
			continue
		}
		if w.opts.MaxStates > 0 && w.visited.Size() >= w.opts.MaxStates {
			return false, fmt.Errorf("%w: %d states at depth %d", ErrBudgetExceeded, w.visited.Size(), next)
		}
		w.link(nbr, s)
		w.enqueue(nbr, next)
	}
	return false, nil
}

// link records parent as the predecessor of s when parents are kept.
func (w *walker[S]) link(s, parent S) {
	if w.res.parents != nil {
		w.res.parents[s] = parent
	}
}
