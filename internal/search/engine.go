package search

import (
	"context"
	"fmt"

	"github.com/vanshika/degrees/backend/internal/domain"
)

// Graph is the read-only adjacency contract the engine traverses. The dataset
// package satisfies it; tests supply small fixtures.
type Graph interface {
	// Neighbors returns every (movieID, personID) pair co-starring with the
	// given person.
	Neighbors(personID string) []domain.PathStep
	// HasPerson reports whether the ID exists in the people table.
	HasPerson(personID string) bool
}

// Observer receives traversal callbacks. All fields are optional.
type Observer struct {
	// OnExpand fires when a node is removed from the frontier, with the
	// node's depth in the search tree.
	OnExpand func(state string, depth int)
	// OnEnqueue fires when a child node is added to the frontier.
	OnEnqueue func(state string, depth int)
}

// Option configures an Engine.
type Option func(*Engine)

// WithPolicy selects the frontier removal discipline.
func WithPolicy(policy Policy) Option {
	return func(e *Engine) { e.policy = policy }
}

// WithObserver attaches traversal callbacks.
func WithObserver(obs Observer) Option {
	return func(e *Engine) { e.observer = obs }
}

// Engine runs frontier-driven traversals over an implicit people-movies
// graph. The engine itself holds no per-search state; every ShortestPath call
// owns its own frontier, arena and explored set, so one Engine may serve
// concurrent searches over the same immutable graph.
type Engine struct {
	graph    Graph
	policy   Policy
	observer Observer
}

// New constructs an Engine over the given graph. The default policy is FIFO,
// the only discipline that honors the shortest-path guarantee.
func New(graph Graph, opts ...Option) *Engine {
	e := &Engine{
		graph:  graph,
		policy: PolicyFIFO,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// node is one entry of the per-search arena. parent is an arena handle, -1
// for the root. Nodes are only appended and parents never reassigned, so the
// arena forms a tree that grows forward from the frontier.
type node struct {
	state  string
	parent int
	action string
	depth  int
}

type arena struct {
	nodes []node
}

func (a *arena) add(state string, parent int, action string) int {
	depth := 0
	if parent >= 0 {
		depth = a.nodes[parent].depth + 1
	}
	a.nodes = append(a.nodes, node{state: state, parent: parent, action: action, depth: depth})
	return len(a.nodes) - 1
}

func (a *arena) state(handle int) string {
	return a.nodes[handle].state
}

// ShortestPath searches for a co-star chain from sourceID to targetID.
// It returns (steps, true, nil) on success, (nil, false, nil) when the
// frontier is exhausted without reaching the target, and an error only for
// malformed input IDs or context cancellation. A search from a person to
// itself is not special-cased: the source is marked explored at its first
// expansion, so a self-search exhausts its component without success. Callers
// wanting a zero-length connection must short-circuit before searching.
func (e *Engine) ShortestPath(ctx context.Context, sourceID, targetID string) ([]domain.PathStep, bool, error) {
	if !e.graph.HasPerson(sourceID) {
		return nil, false, fmt.Errorf("unknown source person %q", sourceID)
	}
	if !e.graph.HasPerson(targetID) {
		return nil, false, fmt.Errorf("unknown target person %q", targetID)
	}

	nodes := &arena{}
	front := newFrontier(e.policy, nodes)
	front.push(nodes.add(sourceID, -1, ""))

	explored := make(map[string]struct{})

	for !front.empty() {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}

		handle, err := front.pop()
		if err != nil {
			return nil, false, err
		}
		current := nodes.nodes[handle]
		explored[current.state] = struct{}{}

		if e.observer.OnExpand != nil {
			e.observer.OnExpand(current.state, current.depth)
		}

		for _, neighbor := range e.graph.Neighbors(current.state) {
			if front.containsState(neighbor.PersonID) {
				continue
			}
			if _, done := explored[neighbor.PersonID]; done {
				continue
			}

			// Early goal check: the goal node is reconstructed the moment it
			// is discovered and never enters the frontier.
			child := nodes.add(neighbor.PersonID, handle, neighbor.MovieID)
			if neighbor.PersonID == targetID {
				return reconstruct(nodes, child), true, nil
			}

			front.push(child)
			if e.observer.OnEnqueue != nil {
				e.observer.OnEnqueue(neighbor.PersonID, current.depth+1)
			}
		}
	}

	return nil, false, nil
}

// reconstruct walks parent handles from the goal node to the root, collecting
// (action, state) pairs, then reverses them into source-to-target order. The
// root contributes no pair.
func reconstruct(nodes *arena, handle int) []domain.PathStep {
	var steps []domain.PathStep
	for handle >= 0 {
		n := nodes.nodes[handle]
		if n.parent < 0 {
			break
		}
		steps = append(steps, domain.PathStep{MovieID: n.action, PersonID: n.state})
		handle = n.parent
	}

	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}
