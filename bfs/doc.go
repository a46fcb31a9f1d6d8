// Package bfs computes shortest-hop distances from a source node over a
// core.Graph.
//
// What
//
//   - Level-by-level frontier expansion with a FIFO queue and a visited set.
//   - Each node's distance is its parent's distance + 1, assigned once, at
//     first discovery.
//   - The Result covers every graph key. Keys the source cannot reach are
//     marked Unreachable, which is never a valid hop count; use
//     Result.Distance to filter it out before doing arithmetic.
//   - Dangling neighbors (referenced but not keys) are reached normally and
//     expand to nothing.
//
// Determinism
//
//	Neighbors are expanded in their stored order and Graph.Nodes() is sorted,
//	so Order is reproducible. Only distances are promised; picking a concrete
//	shortest path is the job of package paths.
//
// Complexity (V = |keys|, E = |edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil          nil graph.
//   - ErrSourceNotFound    source is not a key (wraps core.ErrNodeNotFound).
//   - ErrOptionViolation   negative MaxDepth.
//   - ctx.Err()            the context passed via WithContext was cancelled.
//   - Wrapped OnVisit hook errors.
package bfs
