package transport

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFloor_Fried(t *testing.T) {
	cases := []struct {
		name  string
		floor Floor
		want  bool
	}{
		{"empty", Floor{}, false},
		{"chips only", Floor{Chips: 0b11}, false},
		{"generators only", Floor{Generators: 0b111}, false},
		{"protected pair", Floor{Chips: 0b01, Generators: 0b01}, false},
		{"extra generator is harmless", Floor{Chips: 0b01, Generators: 0b11}, false},
		{"unprotected chip", Floor{Chips: 0b10, Generators: 0b01}, true},
		{"one of two unprotected", Floor{Chips: 0b11, Generators: 0b01}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.floor.Fried())
		})
	}
}

func TestLoads_Counts(t *testing.T) {
	for k := 0; k <= 10; k++ {
		var f Floor
		for i := 0; i < k; i++ {
			if i%2 == 0 {
				f.Chips |= 1 << uint(i)
			} else {
				f.Generators |= 1 << uint(i)
			}
		}
		loads := Loads(f)
		assert.Len(t, loads, k+k*(k-1)/2, "k=%d", k)

		seen := make(map[Floor]bool)
		for _, l := range loads {
			n := l.Len()
			assert.True(t, n == 1 || n == 2, "load of %d items", n)
			assert.Equal(t, f, f.with(l), "load must come from the floor")
			assert.False(t, seen[l], "duplicate load %+v", l)
			seen[l] = true
		}
	}
}

func TestLoads_Order(t *testing.T) {
	f := Floor{Chips: 0b101, Generators: 0b010}
	want := []Floor{
		{Chips: 0b001},
		{Chips: 0b100},
		{Generators: 0b010},
		{Chips: 0b101},
		{Chips: 0b001, Generators: 0b010},
		{Chips: 0b100, Generators: 0b010},
	}
	if diff := cmp.Diff(want, Loads(f)); diff != "" {
		t.Errorf("Loads mismatch (-want +got):\n%s", diff)
	}
}

func TestFloor_Items(t *testing.T) {
	cat := newCatalog()
	for _, e := range []string{"hydrogen", "lithium", "curium"} {
		_, _ = cat.intern(e)
	}
	f := Floor{Chips: 0b100, Generators: 0b011}
	assert.True(t, f.Chips.Has(2))
	assert.False(t, f.Chips.Has(0))
	i, ok := cat.Index("lithium")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	want := []Item{
		NewChip("curium"),
		NewGenerator("hydrogen"),
		NewGenerator("lithium"),
	}
	if diff := cmp.Diff(want, f.Items(cat)); diff != "" {
		t.Errorf("Items mismatch (-want +got):\n%s", diff)
	}
}
