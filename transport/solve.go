package transport

import "github.com/shepmaster/advent-of-code-2016/search"

// Solve returns the fewest elevator trips that bring every item in layout
// to the top floor, starting with the elevator on the bottom floor.
// found is false when no sequence of safe trips reaches that goal.
// Layout errors are returned before any search starts; opts are passed
// through to search.Search.
func Solve(layout Layout, opts ...search.Option) (steps int, found bool, err error) {
	start, _, err := NewFloorState(layout, 0)
	if err != nil {
		return 0, false, err
	}
	res, err := search.Search(start, FloorState.Neighbors, FloorState.Complete, opts...)
	if err != nil {
		return 0, false, err
	}
	return res.Depth, res.Found, nil
}
