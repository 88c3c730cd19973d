package transport

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
)

// Kind tags an Item as a chip or a generator. The zero value is invalid.
type Kind uint8

const (
	// Chip is a microchip, safe only next to its own generator or no generator at all.
	Chip Kind = iota + 1
	// Generator is a radioisotope generator.
	Generator
)

// String returns "chip", "generator" or a placeholder for invalid kinds.
func (k Kind) String() string {
	switch k {
	case Chip:
		return "chip"
	case Generator:
		return "generator"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Item is one chip or generator, identified by its element label.
type Item struct {
	Kind    Kind
	Element string
}

// NewChip returns the chip of element.
func NewChip(element string) Item { return Item{Kind: Chip, Element: element} }

// NewGenerator returns the generator of element.
func NewGenerator(element string) Item { return Item{Kind: Generator, Element: element} }

func (it Item) String() string { return it.Element + " " + it.Kind.String() }

// Layout lists the items resting on each floor, bottom floor first.
// It is the external input from which a FloorState is built.
type Layout [][]Item

// With returns a copy of l with items added to floor. l is left untouched.
func (l Layout) With(floor int, items ...Item) (Layout, error) {
	if floor < 0 || floor >= len(l) {
		return nil, fmt.Errorf("%w: %d of %d", ErrFloorOutOfRange, floor, len(l))
	}
	var out Layout
	if err := deepcopy.Copy(&out, l); err != nil {
		return nil, fmt.Errorf("transport: copy layout: %w", err)
	}
	out[floor] = append(out[floor], items...)
	return out, nil
}

// Catalog interns element labels into the bit positions used by Elements.
// Indices are assigned in first-seen order.
type Catalog struct {
	index map[string]int
	names []string
}

func newCatalog() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// intern returns the index of element, assigning the next free one if needed.
func (c *Catalog) intern(element string) (int, error) {
	if element == "" {
		return 0, ErrEmptyElement
	}
	if i, ok := c.index[element]; ok {
		return i, nil
	}
	if len(c.names) == MaxElements {
		return 0, fmt.Errorf("%w: %q would be element %d, limit is %d", ErrTooManyElements, element, len(c.names)+1, MaxElements)
	}
	i := len(c.names)
	c.index[element] = i
	c.names = append(c.names, element)
	return i, nil
}

// Index reports the bit position of element.
func (c *Catalog) Index(element string) (int, bool) {
	i, ok := c.index[element]
	return i, ok
}

// Element returns the label at bit position i.
func (c *Catalog) Element(i int) string { return c.names[i] }

// Len is the number of distinct elements known.
func (c *Catalog) Len() int { return len(c.names) }
