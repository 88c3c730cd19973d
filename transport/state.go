package transport

import "fmt"

// MaxFloors is the tallest building a FloorState can describe.
const MaxFloors = 8

// FloorState is the whole building at one moment: every floor's contents
// plus where the elevator is. It is a comparable value, so two states are
// == exactly when each floor holds the same items and the elevator stops
// at the same floor. Item order within a floor never matters.
type FloorState struct {
	floors   [MaxFloors]Floor
	count    uint8
	elevator uint8
}

// NewFloorState builds the starting state for layout with the elevator at
// the given floor. Element labels are interned into the returned Catalog.
// Every element may contribute at most one chip and one generator to the
// whole building, and no chip may start out fried.
func NewFloorState(layout Layout, elevator int) (FloorState, *Catalog, error) {
	var s FloorState
	switch {
	case len(layout) == 0:
		return s, nil, ErrNoFloors
	case len(layout) > MaxFloors:
		return s, nil, fmt.Errorf("%w: %d, limit is %d", ErrTooManyFloors, len(layout), MaxFloors)
	case elevator < 0 || elevator >= len(layout):
		return s, nil, fmt.Errorf("%w: %d of %d", ErrElevatorOutOfRange, elevator, len(layout))
	}

	cat := newCatalog()
	var placedChips, placedGenerators Elements
	for n, items := range layout {
		for _, it := range items {
			i, err := cat.intern(it.Element)
			if err != nil {
				return s, nil, fmt.Errorf("floor %d: %w", n, err)
			}
			bit := Elements(1) << uint(i)
			switch it.Kind {
			case Chip:
				if placedChips&bit != 0 {
					return s, nil, fmt.Errorf("%w: %s on floor %d", ErrDuplicateItem, it, n)
				}
				placedChips |= bit
				s.floors[n].Chips |= bit
			case Generator:
				if placedGenerators&bit != 0 {
					return s, nil, fmt.Errorf("%w: %s on floor %d", ErrDuplicateItem, it, n)
				}
				placedGenerators |= bit
				s.floors[n].Generators |= bit
			default:
				return s, nil, fmt.Errorf("%w: %s on floor %d", ErrUnknownKind, it, n)
			}
		}
	}
	s.count = uint8(len(layout))
	s.elevator = uint8(elevator)

	if s.Fried() {
		return FloorState{}, nil, ErrInvalidInitial
	}
	return s, cat, nil
}

// NumFloors is the number of floors in the building.
func (s FloorState) NumFloors() int { return int(s.count) }

// Elevator is the floor the elevator currently stops at.
func (s FloorState) Elevator() int { return int(s.elevator) }

// Floor returns the contents of floor n.
func (s FloorState) Floor(n int) Floor { return s.floors[n] }

// Floors returns the contents of every floor, bottom first.
func (s FloorState) Floors() []Floor {
	out := make([]Floor, s.count)
	copy(out, s.floors[:s.count])
	return out
}

// Fried reports whether any floor fries a chip.
func (s FloorState) Fried() bool {
	for _, f := range s.floors[:s.count] {
		if f.Fried() {
			return true
		}
	}
	return false
}

// Complete reports whether every item has reached the top floor.
func (s FloorState) Complete() bool {
	if s.count == 0 {
		return false
	}
	for _, f := range s.floors[:s.count-1] {
		if !f.Empty() {
			return false
		}
	}
	return true
}

// adjacent returns the floors one step below and above the elevator.
func (s FloorState) adjacent() []int {
	out := make([]int, 0, 2)
	if s.elevator > 0 {
		out = append(out, int(s.elevator)-1)
	}
	if int(s.elevator)+1 < int(s.count) {
		out = append(out, int(s.elevator)+1)
	}
	return out
}

// Neighbors returns every state reachable with one elevator trip: one or
// two items from the elevator's floor carried one floor up or down.
// Trips that would fry a chip on the destination floor are dropped; the
// floor being left can only get safer, so it is not checked.
func (s FloorState) Neighbors() []FloorState {
	from := s.floors[s.elevator]
	loads := Loads(from)
	dests := s.adjacent()
	out := make([]FloorState, 0, len(loads)*len(dests))
	for _, to := range dests {
		for _, load := range loads {
			dst := s.floors[to].with(load)
			if dst.Fried() {
				continue
			}
			next := s
			next.floors[s.elevator] = from.without(load)
			next.floors[to] = dst
			next.elevator = uint8(to)
			out = append(out, next)
		}
	}
	return out
}
