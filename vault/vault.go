// Package vault finds routes through the 4×4 room grid whose doors are
// locked and unlocked by the MD5 hash of a passcode and the path so far.
//
// The search starts in the top-left room and ends on entering the
// bottom-right vault. A door is open when the matching hex digit of
// MD5(passcode + path) is one of b, c, d, e or f; the first four digits
// govern up, down, left and right in that order.
package vault

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/shepmaster/advent-of-code-2016/search"
)

// Size is the width and height of the room grid.
const Size = 4

// Doors records which doors of the current room are unlocked.
type Doors struct {
	Up, Down, Left, Right bool
}

// State is a room plus the moves that led to it. Because the path is part
// of the state, no two routes ever collapse into one.
type State struct {
	X, Y int
	Path string
}

// AtVault reports whether s is in the bottom-right room.
func (s State) AtVault() bool { return s.X == Size-1 && s.Y == Size-1 }

// step is one door: its path letter and how it moves the position.
type step struct {
	letter byte
	dx, dy int
}

var steps = [4]step{{'U', 0, -1}, {'D', 0, 1}, {'L', -1, 0}, {'R', 1, 0}}

// Unlocked returns the doors opened by passcode after path, ignoring walls.
func Unlocked(passcode, path string) Doors {
	sum := md5.Sum([]byte(passcode + path))
	digits := hex.EncodeToString(sum[:2])
	open := func(c byte) bool { return c >= 'b' && c <= 'f' }
	return Doors{
		Up:    open(digits[0]),
		Down:  open(digits[1]),
		Left:  open(digits[2]),
		Right: open(digits[3]),
	}
}

// Grid binds a passcode to the room grid.
type Grid struct {
	Passcode string
}

// Start is the top-left room with an empty path.
func (g Grid) Start() State { return State{} }

// Neighbors returns the rooms reachable through unlocked doors that lead
// somewhere inside the grid.
func (g Grid) Neighbors(s State) []State {
	d := Unlocked(g.Passcode, s.Path)
	open := [4]bool{d.Up, d.Down, d.Left, d.Right}
	out := make([]State, 0, len(steps))
	for i, st := range steps {
		x, y := s.X+st.dx, s.Y+st.dy
		if !open[i] || x < 0 || x >= Size || y < 0 || y >= Size {
			continue
		}
		out = append(out, State{X: x, Y: y, Path: s.Path + string(st.letter)})
	}
	return out
}

// ShortestPath returns the shortest door sequence that reaches the vault.
func (g Grid) ShortestPath(opts ...search.Option) (string, bool, error) {
	res, err := search.Search(g.Start(), g.Neighbors, State.AtVault, opts...)
	if err != nil || !res.Found {
		return "", false, err
	}
	return res.Goal.Path, true, nil
}

// LongestPath returns the length of the longest route that ends in the
// vault. Entering the vault ends a route, so every path is explored until
// it reaches the vault or runs out of open doors.
func (g Grid) LongestPath(opts ...search.Option) (int, bool, error) {
	longest, found := 0, false
	next := func(s State) []State {
		if s.AtVault() {
			if len(s.Path) > longest {
				longest = len(s.Path)
			}
			found = true
			return nil
		}
		return g.Neighbors(s)
	}
	never := func(State) bool { return false }
	if _, err := search.Search(g.Start(), next, never, opts...); err != nil {
		return 0, false, err
	}
	return longest, found, nil
}
