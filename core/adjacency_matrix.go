package core

import "fmt"

// AdjacencyMatrix is a dense 0/1 view of a Graph.
//
// Order fixes the enumeration used for both rows and columns; Index is its
// reverse lookup. Cells[i][j] == 1 iff Order[j] ∈ Neighbors(Order[i]).
// The matrix is not symmetrised: one-directional edges stay one-directional.
type AdjacencyMatrix struct {
	Order []NodeID
	Index map[NodeID]int
	Cells [][]uint8
}

// AdjacencyMatrix materialises the graph into an n×n matrix over Nodes().
// Edges to dangling neighbors have no column and are skipped.
// Complexity: O(V² + E)
func (g *Graph) AdjacencyMatrix() *AdjacencyMatrix {
	order := g.Nodes()
	n := len(order)
	am := &AdjacencyMatrix{
		Order: order,
		Index: make(map[NodeID]int, n),
		Cells: make([][]uint8, n),
	}
	for i, id := range order {
		am.Index[id] = i
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	for i, id := range order {
		row := make([]uint8, n)
		for _, nbr := range g.adjacency[id] {
			if j, ok := am.Index[nbr]; ok {
				row[j] = 1
			}
		}
		am.Cells[i] = row
	}

	return am
}

// Size returns n for an n×n matrix.
func (am *AdjacencyMatrix) Size() int { return len(am.Order) }

// At returns cell (i,j). Out-of-range indices are an error.
func (am *AdjacencyMatrix) At(i, j int) (uint8, error) {
	n := am.Size()
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("core: index (%d,%d) out of range for %dx%d matrix", i, j, n, n)
	}

	return am.Cells[i][j], nil
}

// IndexOf returns the row/column index of id.
func (am *AdjacencyMatrix) IndexOf(id NodeID) (int, error) {
	i, ok := am.Index[id]
	if !ok {
		return -1, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return i, nil
}

// Symmetric reports whether cell (i,j) equals (j,i) for every pair.
func (am *AdjacencyMatrix) Symmetric() bool {
	for i := range am.Cells {
		for j := i + 1; j < len(am.Cells); j++ {
			if am.Cells[i][j] != am.Cells[j][i] {
				return false
			}
		}
	}

	return true
}
