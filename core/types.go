package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrGraphNil indicates a nil *Graph was supplied.
	ErrGraphNil = errors.New("core: graph is nil")

	// ErrNodeNotFound indicates an operation anchored on a node that is not a graph key.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNilNeighbors indicates an adjacency entry whose neighbor list is nil.
	ErrNilNeighbors = errors.New("core: nil neighbor list")
)

// NodeID identifies a person in the social graph.
type NodeID = int64

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the adjacency map for n nodes.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.adjacency = make(map[NodeID][]NodeID, n)
		}
	}
}

// Graph is a directed adjacency list.
//
// adjacency[u] is the ordered neighbor sequence of u. Keys without edges are
// isolated nodes; neighbor values absent from the key set are dangling.
type Graph struct {
	mu        sync.RWMutex
	adjacency map[NodeID][]NodeID
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.adjacency == nil {
		g.adjacency = make(map[NodeID][]NodeID)
	}

	return g
}
