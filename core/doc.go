// Package core defines the social Graph: a directed adjacency list keyed by
// 64-bit node identifiers, together with the read-only queries every
// algorithm in this module builds on.
//
// What
//
//   - Graph maps each NodeID to an ordered slice of neighbor NodeIDs.
//   - A friendship between u and v is two reciprocal edges (u→v, v→u), but
//     reciprocity is not enforced: one-directional edges are legal.
//   - A neighbor that never appears as a key is a dangling reference. Every
//     query treats it as a node with zero neighbors; nothing fails on it.
//
// Queries
//
//   - Neighbors(id)              ordered neighbor copy; empty for unknown ids.
//   - Nodes()                    every key, sorted ascending.
//   - HasNode(id), HasEdge(a,b)  key membership; directed edge membership.
//   - CountUniqueConnections()   unordered-pair edge count (self-loops once).
//   - AdjacencyMatrix()          dense 0/1 matrix over a stable node order.
//   - Reversed()                 a copy with every edge flipped.
//
// Lifecycle
//
//	A Graph is built once (NewGraph + AddEdge, or FromAdjacency) and then
//	consumed read-only. All methods are guarded by a sync.RWMutex, so
//	concurrent readers are safe; mutation after algorithms start is
//	unsupported by contract.
//
// Errors
//
//   - ErrGraphNil      nil *Graph passed to a constructor helper.
//   - ErrNodeNotFound  shared "anchor node missing" condition used by bfs and paths.
//   - ErrNilNeighbors  FromAdjacency received a nil neighbor slice.
package core
