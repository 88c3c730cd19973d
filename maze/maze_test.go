package maze_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shepmaster/advent-of-code-2016/maze"
	"github.com/shepmaster/advent-of-code-2016/search"
)

// exampleRows is the top-left corner of the maze for favorite number 10.
var exampleRows = []string{
	".#.####.##",
	"..#..#...#",
	"#....##...",
	"###.#.###.",
	".##..#..#.",
	"..##....#.",
	"#...##.###",
}

func TestMaze_Open(t *testing.T) {
	m := maze.New(10)
	for y, row := range exampleRows {
		var got strings.Builder
		for x := range row {
			if m.Open(maze.Point{X: x, Y: y}) {
				got.WriteByte('.')
			} else {
				got.WriteByte('#')
			}
		}
		assert.Equal(t, row, got.String(), "row %d", y)
	}
	assert.False(t, m.Open(maze.Point{X: -1, Y: 0}))
	assert.False(t, m.Open(maze.Point{X: 0, Y: -1}))
}

func TestMaze_Neighbors(t *testing.T) {
	m := maze.New(10)
	assert.ElementsMatch(t, []maze.Point{{X: 3, Y: 2}, {X: 3, Y: 4}}, m.Neighbors(maze.Point{X: 3, Y: 3}))
	assert.ElementsMatch(t, []maze.Point{{X: 0, Y: 1}}, m.Neighbors(maze.Point{X: 0, Y: 0}))
}

func TestMaze_ShortestPath(t *testing.T) {
	m := maze.New(10)
	steps, ok, err := m.ShortestPath(maze.Point{X: 1, Y: 1}, maze.Point{X: 7, Y: 4})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 11, steps)

	steps, ok, err = m.ShortestPath(maze.Point{X: 1, Y: 1}, maze.Point{X: 1, Y: 1})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, steps)
}

func TestMaze_ShortestPathToWall(t *testing.T) {
	m := maze.New(10)
	// (1,0) is a wall and can never be entered; bound the unbounded maze.
	_, ok, err := m.ShortestPath(maze.Point{X: 1, Y: 1}, maze.Point{X: 1, Y: 0}, search.WithMaxDepth(30))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMaze_Reachable(t *testing.T) {
	m := maze.New(10)
	start := maze.Point{X: 1, Y: 1}
	want := []int{1, 3, 5, 6, 9, 11}
	for steps, n := range want {
		got, err := m.Reachable(start, steps)
		require.NoError(t, err)
		assert.Equal(t, n, got, "steps=%d", steps)
	}

	_, err := m.Reachable(start, -1)
	assert.ErrorIs(t, err, maze.ErrNegativeSteps)
}
