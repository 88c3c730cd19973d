// Package search provides breadth-first search over an implicit graph whose
// vertices are arbitrary comparable state values, returning the minimum
// number of moves from a start state to a goal state.
//
// What
//
//   - States are never materialized as a graph. A NeighborFunc expands one
//     state into its successors on demand and a GoalFunc recognizes the end.
//   - The frontier is FIFO, so states leave the queue in non-decreasing depth
//     and the first goal discovered sits at the minimum depth.
//   - The goal test runs while neighbors are generated, one level earlier
//     than a pop-then-test loop would reach it.
//   - A visited set holds every state ever enqueued. It only grows.
//   - Options add a depth limit, a state budget, cancellation and an
//     observational progress hook. None of them reorder the search.
//
// Determinism
//
//	For fixed inputs the reported depth is always the same. When several
//	shortest paths exist, Result.Goal is the first goal produced by the
//	neighbor function's enumeration order.
//
// Complexity
//
//   - Time:   O(V + E) over the reachable part of the state graph.
//   - Memory: O(V) for the frontier and the visited set.
//
// Usage
//
//	depth, ok := search.ShortestDepth(start, next, done)
//
//	res, err := search.Search(
//	    start, next, done,
//	    search.WithContext(ctx),
//	    search.WithMaxStates(1_000_000),
//	    search.WithOnProgress(search.LogProgress(logger, 250)),
//	)
//
// Errors
//
//   - ErrNilFunc          if the neighbor or goal function is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrBudgetExceeded   if the visited set would outgrow MaxStates.
//   - ctx.Err()           if the context is cancelled.
package search
