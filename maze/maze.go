// Package maze explores the cubicle maze whose walls come from a designer's
// favorite number, using package search for shortest paths and reach.
//
// The maze covers the quadrant x ≥ 0, y ≥ 0 and is unbounded beyond that.
// Cell (x, y) is open when x²+3x+2xy+y+y² plus the favorite number has an
// even count of one bits.
package maze

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/shepmaster/advent-of-code-2016/search"
)

// ErrNegativeSteps is returned by Reachable for a negative step count.
var ErrNegativeSteps = errors.New("maze: steps must not be negative")

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// offsets lists the 4-connected moves: W, E, N, S.
var offsets = [4]Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Maze is defined entirely by its favorite number.
type Maze struct {
	Favorite int
}

// New returns the maze for favorite.
func New(favorite int) Maze { return Maze{Favorite: favorite} }

// Open reports whether p is an open cell. Cells outside the quadrant are walls.
func (m Maze) Open(p Point) bool {
	if p.X < 0 || p.Y < 0 {
		return false
	}
	x, y := p.X, p.Y
	v := x*x + 3*x + 2*x*y + y + y*y + m.Favorite
	return bits.OnesCount(uint(v))%2 == 0
}

// Neighbors returns the open cells one step from p.
func (m Maze) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(offsets))
	for _, d := range offsets {
		n := Point{p.X + d.X, p.Y + d.Y}
		if m.Open(n) {
			out = append(out, n)
		}
	}
	return out
}

// ShortestPath returns the fewest steps from one cell to another.
// The maze is unbounded, so callers that cannot rule out an unreachable
// target should pass search.WithMaxStates or search.WithMaxDepth.
func (m Maze) ShortestPath(from, to Point, opts ...search.Option) (int, bool, error) {
	res, err := search.Search(from, m.Neighbors, func(p Point) bool { return p == to }, opts...)
	if err != nil {
		return 0, false, err
	}
	return res.Depth, res.Found, nil
}

// Reachable counts the distinct cells, from included, that can be reached
// in at most steps moves.
func (m Maze) Reachable(from Point, steps int) (int, error) {
	switch {
	case steps < 0:
		return 0, fmt.Errorf("%w: %d", ErrNegativeSteps, steps)
	case steps == 0:
		return 1, nil
	}
	never := func(Point) bool { return false }
	res, err := search.Search(from, m.Neighbors, never, search.WithMaxDepth(steps))
	if err != nil {
		return 0, err
	}
	return res.Visited, nil
}
