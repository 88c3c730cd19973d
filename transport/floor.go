package transport

import "math/bits"

// MaxElements is the number of distinct element labels a puzzle may use.
const MaxElements = 64

// Elements is a set of element indices assigned by a Catalog.
type Elements uint64

// Has reports whether element index i is in the set.
func (e Elements) Has(i int) bool { return e&(1<<uint(i)) != 0 }

// Len is the number of elements in the set.
func (e Elements) Len() int { return bits.OnesCount64(uint64(e)) }

// each calls fn with the index of every element, lowest first.
func (e Elements) each(fn func(i int)) {
	for rest := uint64(e); rest != 0; rest &= rest - 1 {
		fn(bits.TrailingZeros64(rest))
	}
}

// Floor holds the chips and generators resting on one level.
// The two sets are independent: an element may have its chip, its
// generator, both or neither here.
type Floor struct {
	Chips      Elements
	Generators Elements
}

// Empty reports whether nothing rests on the floor.
func (f Floor) Empty() bool { return f.Chips == 0 && f.Generators == 0 }

// Len is the number of items on the floor.
func (f Floor) Len() int { return f.Chips.Len() + f.Generators.Len() }

// Fried reports whether some chip shares the floor with a generator while
// its own generator is absent.
func (f Floor) Fried() bool {
	return f.Generators != 0 && f.Chips&^f.Generators != 0
}

// Items lists the floor's contents using cat's labels, chips first.
func (f Floor) Items(cat *Catalog) []Item {
	out := make([]Item, 0, f.Len())
	f.Chips.each(func(i int) { out = append(out, NewChip(cat.Element(i))) })
	f.Generators.each(func(i int) { out = append(out, NewGenerator(cat.Element(i))) })
	return out
}

func (f Floor) with(load Floor) Floor {
	return Floor{Chips: f.Chips | load.Chips, Generators: f.Generators | load.Generators}
}

func (f Floor) without(load Floor) Floor {
	return Floor{Chips: f.Chips &^ load.Chips, Generators: f.Generators &^ load.Generators}
}

// singles splits f into one single-item Floor per item, chips first.
func (f Floor) singles() []Floor {
	out := make([]Floor, 0, f.Len())
	f.Chips.each(func(i int) { out = append(out, Floor{Chips: 1 << uint(i)}) })
	f.Generators.each(func(i int) { out = append(out, Floor{Generators: 1 << uint(i)}) })
	return out
}

// Loads returns every elevator load that can leave f: each item alone,
// then each unordered pair of items. For k items that is k + k(k-1)/2 loads.
func Loads(f Floor) []Floor {
	items := f.singles()
	k := len(items)
	loads := make([]Floor, 0, k+k*(k-1)/2)
	loads = append(loads, items...)
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			loads = append(loads, items[i].with(items[j]))
		}
	}
	return loads
}
