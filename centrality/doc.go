// Package centrality scores how important each person is in a core.Graph.
//
// Three independent measures are provided; their maps are never merged and
// each has its own normalization.
//
//   - Betweenness: for every ordered pair (s,t), s ≠ t, enumerate every simple
//     path s→t and add 1 to each strictly intermediate node. The score is the
//     raw count. It is not normalized, it counts (s,t) and (t,s) separately,
//     and it counts all simple paths rather than only shortest ones. It is
//     exponential and meant for small graphs.
//   - Eigenvector: start every key at 1.0, then repeat a synchronous update
//     (new score = sum of neighbors' previous scores) followed by L1
//     normalization, for a fixed number of iterations (default 100). A zero
//     normalization sum leaves every score at 0. Early exit on convergence is
//     available only through WithTolerance.
//   - Closeness: per node, BFS distances; reachable counts finite distances
//     including the node itself, and the score is (reachable-1)/total when
//     reachable > 1, else 0. The inclusive count is kept on purpose and
//     differs from the textbook (n-1)/Σd only in who is counted as reachable.
//
// All measures accept WithContext so a caller can abandon a long run.
package centrality
