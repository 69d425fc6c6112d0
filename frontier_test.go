package maze_solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fills the arena with one node per given state and returns their indices.
func addTestNodes(arena *NodeArena, states ...Position) []int {
	toReturn := make([]int, 0, len(states))
	for _, state := range states {
		toReturn = append(toReturn, arena.Add(state, -1, ActionNone))
	}
	return toReturn
}

func TestNodeArena(t *testing.T) {
	arena := &NodeArena{}
	root := arena.Add(Position{0, 0}, -1, ActionNone)
	child := arena.Add(Position{1, 0}, root, ActionDown)
	assert.Equal(t, 2, arena.Len())
	assert.Equal(t, 0, root)
	assert.Equal(t, SearchNode{Position{1, 0}, root, ActionDown},
		arena.Node(child))
	assert.Equal(t, -1, arena.Node(root).Parent)
}

func TestFrontierLIFO(t *testing.T) {
	arena := &NodeArena{}
	ids := addTestNodes(arena, Position{0, 0}, Position{0, 1}, Position{0, 2})
	f := NewFrontier(LIFO, arena)
	assert.True(t, f.IsEmpty())
	for _, id := range ids {
		f.Add(id)
	}
	assert.Equal(t, 3, f.Len())
	// Most recently added first.
	for i := len(ids) - 1; i >= 0; i-- {
		id, e := f.Remove()
		require.NoError(t, e)
		assert.Equal(t, ids[i], id)
	}
	assert.True(t, f.IsEmpty())
}

func TestFrontierFIFO(t *testing.T) {
	arena := &NodeArena{}
	ids := addTestNodes(arena, Position{0, 0}, Position{0, 1}, Position{0, 2})
	f := NewFrontier(FIFO, arena)
	for _, id := range ids {
		f.Add(id)
	}
	// Earliest added first.
	for i := 0; i < len(ids); i++ {
		id, e := f.Remove()
		require.NoError(t, e)
		assert.Equal(t, ids[i], id)
	}
	assert.True(t, f.IsEmpty())
}

func TestFrontierContainsState(t *testing.T) {
	arena := &NodeArena{}
	state := Position{Row: 4, Col: 7}
	f := NewFrontier(LIFO, arena)
	assert.False(t, f.ContainsState(state))
	f.Add(arena.Add(state, -1, ActionNone))
	assert.True(t, f.ContainsState(state))
	_, e := f.Remove()
	require.NoError(t, e)
	assert.False(t, f.ContainsState(state))

	t.Run("Track duplicate states independently", func(t *testing.T) {
		f.Add(arena.Add(state, -1, ActionNone))
		f.Add(arena.Add(state, -1, ActionNone))
		_, e := f.Remove()
		require.NoError(t, e)
		// One node with the state is still pending.
		assert.True(t, f.ContainsState(state))
		_, e = f.Remove()
		require.NoError(t, e)
		assert.False(t, f.ContainsState(state))
	})
}

func TestFrontierEmptyRemove(t *testing.T) {
	f := NewFrontier(LIFO, &NodeArena{})
	_, e := f.Remove()
	assert.ErrorIs(t, e, ErrEmptyFrontier)
	f = NewFrontier(FIFO, &NodeArena{})
	_, e = f.Remove()
	assert.ErrorIs(t, e, ErrEmptyFrontier)
}

func TestRemovalPolicyString(t *testing.T) {
	assert.Equal(t, "LIFO", LIFO.String())
	assert.Equal(t, "FIFO", FIFO.String())
}
