// Package paths finds friend chains between two people in a core.Graph.
//
// What
//
//   - FriendChain: breadth-first search where each queue element is a whole
//     path from the start. A node is marked visited when first enqueued, so
//     the first path to reach the end is a shortest one. Ties are broken by
//     neighbor order, not lexicographically.
//   - AllSimplePaths: backtracking depth-first enumeration of every simple
//     path between two nodes. A node already on the current path is never
//     re-entered; nodes used by other branches are eligible again. Each path
//     is copied into the result when it arrives at the end, so results never
//     share backing arrays with the working stack.
//
// Complexity
//
//   - FriendChain:    O(V + E) expansions, O(V·L) memory for queued paths.
//   - AllSimplePaths: exponential in graph connectivity. This is an
//     exhaustive search by contract; bound it with WithContext or
//     WithMaxPaths.
//
// Errors
//
//   - ErrGraphNil         nil graph.
//   - ErrNodeNotFound     a FriendChain anchor is not a graph key
//     (joined with core.ErrNodeNotFound).
//   - ErrNoPath           start and end lie in different components. This is a
//     valid outcome, not a fault.
//   - ErrPathLimit        WithMaxPaths cap reached; collected paths are returned.
//   - ErrOptionViolation  negative cap.
package paths
