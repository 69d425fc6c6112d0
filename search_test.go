package maze_solver

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Returns the position reached by taking the given action from p.
func applyAction(p Position, action Action) Position {
	switch action {
	case ActionUp:
		return Position{Row: p.Row - 1, Col: p.Col}
	case ActionDown:
		return Position{Row: p.Row + 1, Col: p.Col}
	case ActionLeft:
		return Position{Row: p.Row, Col: p.Col - 1}
	case ActionRight:
		return Position{Row: p.Row, Col: p.Col + 1}
	}
	return p
}

// Checks that the path is a valid walk: each step's state must be exactly
// one move (per its action) away from the previous state.
func assertValidWalk(t *testing.T, grid *Grid, path []Step) {
	current := grid.Start()
	for _, step := range path {
		next := applyAction(current, step.Action)
		assert.Equal(t, step.State, next)
		assert.False(t, grid.IsWall(next))
		current = next
	}
	assert.Equal(t, grid.Goal(), current)
}

func TestSolveTrivial(t *testing.T) {
	grid, e := ParseMaze("AB")
	require.NoError(t, e)
	result := Solve(grid)
	require.True(t, result.Found)
	require.Len(t, result.Path, 1)
	assert.Equal(t, Step{ActionRight, Position{0, 1}}, result.Path[0])
}

func TestSolveSmallMaze(t *testing.T) {
	grid, e := ParseMaze("A #\n  #\n B")
	require.NoError(t, e)

	t.Run("LIFO", func(t *testing.T) {
		result := Solve(grid)
		require.True(t, result.Found)
		require.Len(t, result.Path, 3)
		assert.Equal(t, []Step{
			{ActionRight, Position{0, 1}},
			{ActionDown, Position{1, 1}},
			{ActionDown, Position{2, 1}},
		}, result.Path)
		assert.Equal(t, 4, result.Explored)
		assertValidWalk(t, grid, result.Path)
	})

	t.Run("FIFO", func(t *testing.T) {
		result := Solve(grid, WithPolicy(FIFO))
		require.True(t, result.Found)
		require.Len(t, result.Path, 3)
		assert.Equal(t, []Step{
			{ActionDown, Position{1, 0}},
			{ActionDown, Position{2, 0}},
			{ActionRight, Position{2, 1}},
		}, result.Path)
		assert.Equal(t, 6, result.Explored)
		assertValidWalk(t, grid, result.Path)
	})
}

func TestSolveUnsolvable(t *testing.T) {
	// The goal's row is cut off by a solid wall.
	grid, e := ParseMaze("A  \n###\n B ")
	require.NoError(t, e)
	result := Solve(grid)
	assert.False(t, result.Found)
	assert.Nil(t, result.Path)
	// Only the start's row is reachable.
	assert.Equal(t, 3, result.Explored)
	result = Solve(grid, WithPolicy(FIFO))
	assert.False(t, result.Found)
}

func TestSolveWalkProperty(t *testing.T) {
	contents := "#######\n#A    #\n# ### #\n# #   #\n# # # #\n#    B#\n#######"
	grid, e := ParseMaze(contents)
	require.NoError(t, e)
	for _, policy := range []RemovalPolicy{LIFO, FIFO} {
		result := Solve(grid, WithPolicy(policy))
		require.True(t, result.Found, "policy %s", policy)
		assertValidWalk(t, grid, result.Path)
	}
}

func TestSolveDeterminism(t *testing.T) {
	grid, e := ParseMaze("A    \n ### \n # # \n ### \n    B")
	require.NoError(t, e)
	first := Solve(grid)
	second := Solve(grid)
	assert.Equal(t, first, second)
	first = Solve(grid, WithPolicy(FIFO))
	second = Solve(grid, WithPolicy(FIFO))
	assert.Equal(t, first, second)
}

func TestSolveBFSFindsShortestPath(t *testing.T) {
	// An open room: plenty of longer routes exist, but BFS must return a
	// path of exactly (height - 1) + (width - 1) moves.
	grid, e := ParseMaze("A    \n     \n     \n    B")
	require.NoError(t, e)
	result := Solve(grid, WithPolicy(FIFO))
	require.True(t, result.Found)
	assert.Len(t, result.Path, 7)
	assertValidWalk(t, grid, result.Path)
}

func TestSolveVisited(t *testing.T) {
	grid, e := ParseMaze("A #\n  #\n B")
	require.NoError(t, e)
	result := Solve(grid)
	// Visited holds expanded states only; the goal is never expanded, and
	// wall cells are never reached.
	assert.False(t, result.Visited[grid.Goal()])
	assert.True(t, result.Visited[grid.Start()])
	for state := range result.Visited {
		assert.False(t, grid.IsWall(state))
	}
}

func TestSolveSharedGrid(t *testing.T) {
	// A single Grid is immutable, so concurrent searches on it must not
	// interfere with one another.
	grid, e := ParseMaze("A    \n ### \n     \n ### \n    B")
	require.NoError(t, e)
	expected := Solve(grid)
	var wg sync.WaitGroup
	results := make([]*Result, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Solve(grid)
		}(i)
	}
	wg.Wait()
	for _, result := range results {
		assert.Equal(t, expected, result)
	}
}
