package search

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyFrontier indicates Pop was called on an empty frontier. Under
// correct engine use this is unreachable; it is a contract violation, not a
// search outcome.
var ErrEmptyFrontier = errors.New("search: remove from empty frontier")

// Policy selects the frontier removal discipline. The policy is the only
// behavioral difference between depth-first and breadth-first traversal;
// the engine loop is identical for both.
type Policy int

const (
	// PolicyFIFO removes the earliest added node first (breadth-first).
	// Only this discipline guarantees shortest paths in an unweighted graph.
	PolicyFIFO Policy = iota
	// PolicyLIFO removes the most recently added node first (depth-first).
	PolicyLIFO
)

// ParsePolicy maps a configuration string to a Policy, defaulting to FIFO.
func ParsePolicy(value string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "fifo", "queue", "bfs":
		return PolicyFIFO, nil
	case "lifo", "stack", "dfs":
		return PolicyLIFO, nil
	default:
		return PolicyFIFO, fmt.Errorf("unknown frontier policy %q", value)
	}
}

func (p Policy) String() string {
	if p == PolicyLIFO {
		return "lifo"
	}
	return "fifo"
}

// frontier is the pending-node collection of one in-flight search. Nodes are
// arena handles; states are counted so ContainsState stays O(1) even with
// duplicate states pending.
type frontier struct {
	policy Policy
	nodes  []int
	states map[string]int
	arena  *arena
}

func newFrontier(policy Policy, a *arena) *frontier {
	return &frontier{
		policy: policy,
		states: make(map[string]int),
		arena:  a,
	}
}

// push inserts a node handle with no uniqueness check.
func (f *frontier) push(handle int) {
	f.nodes = append(f.nodes, handle)
	f.states[f.arena.state(handle)]++
}

// pop removes one node handle according to the removal policy.
func (f *frontier) pop() (int, error) {
	if len(f.nodes) == 0 {
		return 0, ErrEmptyFrontier
	}

	var handle int
	if f.policy == PolicyLIFO {
		handle = f.nodes[len(f.nodes)-1]
		f.nodes = f.nodes[:len(f.nodes)-1]
	} else {
		handle = f.nodes[0]
		f.nodes = f.nodes[1:]
	}

	state := f.arena.state(handle)
	if f.states[state] <= 1 {
		delete(f.states, state)
	} else {
		f.states[state]--
	}
	return handle, nil
}

// containsState reports whether some pending node carries the given state.
func (f *frontier) containsState(state string) bool {
	return f.states[state] > 0
}

func (f *frontier) empty() bool {
	return len(f.nodes) == 0
}

func (f *frontier) len() int {
	return len(f.nodes)
}
