// Package transport models the radioisotope elevator puzzle and solves it
// with package search.
//
// A building has a few floors. Each floor holds chips and generators, each
// tagged with an element. A chip is fried when it shares a floor with any
// generator unless its own generator is there too. The elevator carries one
// or two items per trip, moves exactly one floor at a time, and must never
// leave a fried chip behind at its destination. The goal is every item on
// the top floor, in as few trips as possible.
//
// Representation
//
//   - Element labels are interned by a Catalog into bit positions.
//   - A Floor is two bitsets, one for chips and one for generators.
//   - A FloorState is a fixed array of Floors plus the elevator position. It
//     is comparable, so it doubles as its own visited-set key.
//
// Usage
//
//	layout := transport.Layout{
//	    {transport.NewChip("hydrogen"), transport.NewChip("lithium")},
//	    {transport.NewGenerator("hydrogen")},
//	    {transport.NewGenerator("lithium")},
//	    {},
//	}
//	steps, ok, err := transport.Solve(layout)
package transport
