// Package adventofcode2016 collects breadth-first searches over implicit
// puzzle state graphs.
//
// Every puzzle here is a graph that is never built: a state value stands for
// a vertex, a move generator produces its edges on demand, and a goal test
// says when to stop. One engine drives them all.
//
//	search/    — generic FIFO search over comparable states, options & hooks
//	transport/ — chips and generators carried up a building by an elevator
//	maze/      — cubicle maze with walls derived from a favorite number
//	vault/     — 4×4 rooms whose doors follow an MD5 of the path taken
//
// Quick example:
//
//	steps, ok, err := transport.Solve(transport.Layout{
//	    {transport.NewChip("hydrogen"), transport.NewChip("lithium")},
//	    {transport.NewGenerator("hydrogen")},
//	    {transport.NewGenerator("lithium")},
//	    {},
//	})
//	// steps == 11
package adventofcode2016
