package transport_test

import (
	"testing"

	"github.com/shepmaster/advent-of-code-2016/transport"
)

// BenchmarkSolve_Example solves the two-element building.
func BenchmarkSolve_Example(b *testing.B) {
	layout := exampleLayout()
	if steps, ok, err := transport.Solve(layout); err != nil || !ok {
		b.Fatalf("Solve = %d, %v, %v; want a solution", steps, ok, err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = transport.Solve(layout)
	}
}

// BenchmarkSolve_ExtraPair adds a matched pair to the first floor,
// growing the state space by roughly an order of magnitude.
func BenchmarkSolve_ExtraPair(b *testing.B) {
	layout := extraPairLayout(b)
	if steps, ok, err := transport.Solve(layout); err != nil || !ok {
		b.Fatalf("Solve = %d, %v, %v; want a solution", steps, ok, err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = transport.Solve(layout)
	}
}

// BenchmarkNeighbors measures move generation on a crowded ground floor.
func BenchmarkNeighbors(b *testing.B) {
	var floor []transport.Item
	for _, e := range []string{"a", "b", "c", "d", "e"} {
		floor = append(floor, transport.NewChip(e), transport.NewGenerator(e))
	}
	start, _, err := transport.NewFloorState(transport.Layout{floor, {}, {}, {}}, 0)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = start.Neighbors()
	}
}
