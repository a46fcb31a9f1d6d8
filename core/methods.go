// File: methods.go
// Role: construction helpers and read-only neighborhood queries.
// Determinism:
//   - Nodes() is sorted ascending.
//   - Neighbors() preserves insertion order, duplicates included.

package core

import (
	"fmt"
	"slices"
)

// FromAdjacency builds a Graph from a plain adjacency map.
// Neighbor slices are deep-copied, so later changes to adj do not leak in.
// Returns ErrNilNeighbors if any key maps to a nil slice.
// Complexity: O(V + E)
func FromAdjacency(adj map[NodeID][]NodeID) (*Graph, error) {
	g := NewGraph(WithCapacity(len(adj)))
	for id, nbrs := range adj {
		if nbrs == nil {
			return nil, fmt.Errorf("%w: node %d", ErrNilNeighbors, id)
		}
		g.adjacency[id] = slices.Clone(nbrs)
	}

	return g, nil
}

// AddNode registers id as a key with no neighbors. Existing keys are untouched.
func (g *Graph) AddNode(id NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = []NodeID{}
	}
}

// AddEdge appends the directed edge from→to.
// Only from becomes a key; to stays dangling until added explicitly.
func (g *Graph) AddEdge(from, to NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.adjacency[from] = append(g.adjacency[from], to)
}

// AddFriendship adds the reciprocal pair a→b and b→a.
func (g *Graph) AddFriendship(a, b NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.adjacency[a] = append(g.adjacency[a], b)
	if a != b {
		g.adjacency[b] = append(g.adjacency[b], a)
	}
}

// Neighbors returns a copy of id's neighbor sequence.
// Unknown ids yield an empty, non-nil slice.
func (g *Graph) Neighbors(id NodeID) []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs := g.adjacency[id]
	out := make([]NodeID, len(nbrs))
	copy(out, nbrs)

	return out
}

// Nodes returns every key of the graph sorted ascending.
// Dangling neighbor references are not included.
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]NodeID, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// HasNode reports whether id is a key.
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// HasEdge reports whether b appears in Neighbors(a). The test is directed.
func (g *Graph) HasEdge(a, b NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Contains(g.adjacency[a], b)
}

// Len returns the number of keys.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Adjacency returns a deep copy of the adjacency map.
func (g *Graph) Adjacency() map[NodeID][]NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[NodeID][]NodeID, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		out[id] = slices.Clone(nbrs)
	}

	return out
}

// Reversed returns a new Graph with every edge u→v replaced by v→u.
// Every original key stays a key, even when it receives no edges.
func (g *Graph) Reversed() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	r := NewGraph(WithCapacity(len(g.adjacency)))
	for id := range g.adjacency {
		if _, ok := r.adjacency[id]; !ok {
			r.adjacency[id] = []NodeID{}
		}
	}
	for u, nbrs := range g.adjacency {
		for _, v := range nbrs {
			r.adjacency[v] = append(r.adjacency[v], u)
		}
	}

	return r
}

// edgeKey is an unordered node pair stored as (min, max).
type edgeKey struct{ lo, hi NodeID }

// CountUniqueConnections counts unordered pairs {u,v} over every directed edge.
// A reciprocal pair counts once, a one-directional edge counts once, and a
// self-loop u→u counts once.
// Complexity: O(V + E)
func (g *Graph) CountUniqueConnections() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	seen := make(map[edgeKey]struct{})
	for u, nbrs := range g.adjacency {
		for _, v := range nbrs {
			seen[edgeKey{lo: min(u, v), hi: max(u, v)}] = struct{}{}
		}
	}

	return len(seen)
}
