package maze_solver

// Holds the outcome of one call to Solve. Whether the maze was solved is an
// explicit field rather than an error: an unsolvable maze is a normal,
// expected outcome, so errors stay reserved for genuine faults such as
// malformed input.
type Result struct {
	// True if a path from the start to the goal was found.
	Found bool
	// The moves from the start to the goal, excluding the start cell and
	// including the goal cell. Nil if Found is false.
	Path []Step
	// The number of nodes removed from the frontier during the search.
	Explored int
	// The set of states that were expanded during the search. Useful for
	// diagnostics, e.g. comparing how much of the maze each removal policy
	// ends up touching.
	Visited map[Position]bool
}

// Holds configurable search settings. Modified via Option functions.
type solveConfig struct {
	policy RemovalPolicy
}

// Modifies search settings; pass these to Solve.
type Option func(*solveConfig)

// Selects the frontier removal policy used by the search. The default is
// LIFO (depth-first).
func WithPolicy(policy RemovalPolicy) Option {
	return func(c *solveConfig) {
		c.policy = policy
	}
}

// Searches the maze for a path from its start cell to its goal cell, and
// returns the outcome along with the search's run statistics. Every state is
// added to the frontier at most once and expanded at most once, so the
// search always terminates after at most one iteration per reachable cell.
// Deterministic: identical grids and options always produce identical
// Results. Blocks until the search finishes; concurrent calls on a shared
// Grid are safe since each call owns all of its mutable state.
func Solve(g *Grid, options ...Option) *Result {
	config := solveConfig{
		policy: LIFO,
	}
	for _, option := range options {
		option(&config)
	}
	arena := &NodeArena{}
	frontier := NewFrontier(config.policy, arena)
	frontier.Add(arena.Add(g.Start(), -1, ActionNone))
	toReturn := &Result{
		Visited: make(map[Position]bool),
	}
	for {
		index, e := frontier.Remove()
		if e != nil {
			// The frontier ran dry without reaching the goal, so no path
			// exists.
			return toReturn
		}
		toReturn.Explored++
		node := arena.Node(index)
		if node.State == g.Goal() {
			toReturn.Found = true
			toReturn.Path = reconstructPath(arena, index)
			return toReturn
		}
		toReturn.Visited[node.State] = true
		for _, step := range g.Neighbors(node.State) {
			// Skipping states that are already pending or already expanded
			// is what guarantees termination on mazes with cycles.
			if toReturn.Visited[step.State] || frontier.ContainsState(step.State) {
				continue
			}
			frontier.Add(arena.Add(step.State, index, step.Action))
		}
	}
}

// Walks parent indices from the given node back to the root, collecting one
// Step per node, then reverses the sequence so it reads start to goal. The
// root itself contributes no Step.
func reconstructPath(arena *NodeArena, index int) []Step {
	toReturn := make([]Step, 0)
	for index >= 0 {
		node := arena.Node(index)
		if node.Parent < 0 {
			break
		}
		toReturn = append(toReturn, Step{
			Action: node.Action,
			State:  node.State,
		})
		index = node.Parent
	}
	for i, j := 0, len(toReturn)-1; i < j; i, j = i+1, j-1 {
		toReturn[i], toReturn[j] = toReturn[j], toReturn[i]
	}
	return toReturn
}
