package maze_solver

import (
	"errors"
	"fmt"
)

// Returned by Frontier.Remove when the frontier holds no pending nodes. For
// a search this is a control signal meaning "every reachable state has been
// tried", not a fault; Solve converts it into an unsolvable Result instead
// of propagating it.
var ErrEmptyFrontier = errors.New("empty frontier")

// A single node in a search tree: a maze position, the action that reached
// it, and the arena index of the node it was expanded from. Parent is -1 for
// the root node, and Action is ActionNone.
type SearchNode struct {
	State  Position
	Parent int
	Action Action
}

// Holds every node created during one search, in creation order. Nodes refer
// to their parents by index into the arena rather than by pointer, so the
// whole search tree stays a single flat slice. Index 0 is always the root.
type NodeArena struct {
	nodes []SearchNode
}

// Appends a new node to the arena and returns its index.
func (a *NodeArena) Add(state Position, parent int, action Action) int {
	a.nodes = append(a.nodes, SearchNode{
		State:  state,
		Parent: parent,
		Action: action,
	})
	return len(a.nodes) - 1
}

// Returns the node at the given index. The index must have been returned by
// a prior call to Add.
func (a *NodeArena) Node(index int) SearchNode {
	return a.nodes[index]
}

// Returns the number of nodes in the arena.
func (a *NodeArena) Len() int {
	return len(a.nodes)
}

// Selects which pending node Frontier.Remove returns. The policy is the only
// thing distinguishing a depth-first search from a breadth-first one; the
// rest of the traversal loop is identical.
type RemovalPolicy uint8

const (
	// Removes the most recently added node first (a stack). Searches using
	// this policy are depth-first, and make no shortest-path guarantee.
	LIFO RemovalPolicy = iota
	// Removes the earliest added node first (a queue). Searches using this
	// policy are breadth-first.
	FIFO
)

func (p RemovalPolicy) String() string {
	switch p {
	case LIFO:
		return "LIFO"
	case FIFO:
		return "FIFO"
	}
	return fmt.Sprintf("Unknown removal policy: %d", uint8(p))
}

// Holds the pending, not-yet-expanded nodes of one search, in insertion
// order. A single Frontier type covers both stack and queue behavior via its
// RemovalPolicy. Create using NewFrontier. Not safe for concurrent use; each
// search owns its own Frontier.
type Frontier struct {
	policy RemovalPolicy
	arena  *NodeArena
	// Arena indices of pending nodes, oldest first.
	pending []int
	// Counts pending nodes per state, so ContainsState is O(1).
	states map[Position]int
}

// Returns a new, empty Frontier with the given removal policy. The arena is
// used to look up the states of pending nodes, and must be the same arena
// the added indices refer to.
func NewFrontier(policy RemovalPolicy, arena *NodeArena) *Frontier {
	return &Frontier{
		policy: policy,
		arena:  arena,
		states: make(map[Position]int),
	}
}

// Appends the node with the given arena index to the frontier.
func (f *Frontier) Add(index int) {
	f.pending = append(f.pending, index)
	f.states[f.arena.Node(index).State]++
}

// Returns true if any currently pending node has the given state.
func (f *Frontier) ContainsState(state Position) bool {
	return f.states[state] > 0
}

// Returns true if the frontier holds no pending nodes.
func (f *Frontier) IsEmpty() bool {
	return len(f.pending) == 0
}

// Returns the number of pending nodes.
func (f *Frontier) Len() int {
	return len(f.pending)
}

// Removes one pending node per the removal policy and returns its arena
// index. Returns ErrEmptyFrontier if the frontier is empty.
func (f *Frontier) Remove() (int, error) {
	if len(f.pending) == 0 {
		return -1, ErrEmptyFrontier
	}
	var index int
	if f.policy == FIFO {
		index = f.pending[0]
		f.pending = f.pending[1:]
	} else {
		index = f.pending[len(f.pending)-1]
		f.pending = f.pending[:len(f.pending)-1]
	}
	state := f.arena.Node(index).State
	f.states[state]--
	if f.states[state] == 0 {
		delete(f.states, state)
	}
	return index, nil
}
