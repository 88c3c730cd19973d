package transport

import "errors"

var (
	// ErrNoFloors indicates a layout without any floor.
	ErrNoFloors = errors.New("transport: layout must have at least one floor")
	// ErrTooManyFloors indicates a layout taller than MaxFloors.
	ErrTooManyFloors = errors.New("transport: layout has too many floors")
	// ErrElevatorOutOfRange indicates an elevator index outside the layout.
	ErrElevatorOutOfRange = errors.New("transport: elevator floor out of range")
	// ErrFloorOutOfRange indicates a floor index outside the layout.
	ErrFloorOutOfRange = errors.New("transport: floor index out of range")
	// ErrUnknownKind indicates an item that is neither chip nor generator.
	ErrUnknownKind = errors.New("transport: unknown item kind")
	// ErrEmptyElement indicates an item without an element label.
	ErrEmptyElement = errors.New("transport: item element must not be empty")
	// ErrDuplicateItem indicates the same chip or generator placed twice.
	ErrDuplicateItem = errors.New("transport: item appears more than once")
	// ErrTooManyElements indicates more distinct elements than MaxElements.
	ErrTooManyElements = errors.New("transport: too many distinct elements")
	// ErrInvalidInitial indicates a starting layout where a chip is already fried.
	ErrInvalidInitial = errors.New("transport: initial layout fries a chip")
)
