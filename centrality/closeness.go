package centrality

import (
	"github.com/katalvlaran/socialgraph/bfs"
	"github.com/katalvlaran/socialgraph/core"
)

// Closeness scores each key by (reachable-1)/totalDistance over its BFS tree.
//
// reachable counts every node with a finite distance, the node itself
// included; totalDistance sums those distances. A node reaching nobody else
// scores 0. Scores are not normalized across nodes.
// Complexity: O(V·(V + E)).
func Closeness(g *core.Graph, opts ...Option) (Scores, error) {
	o, err := buildOptions(g, opts)
	if err != nil {
		return nil, err
	}

	nodes := g.Nodes()
	scores := make(Scores, len(nodes))
	var res *bfs.Result
	for _, id := range nodes {
		res, err = bfs.BFS(g, id, bfs.WithContext(o.Ctx))
		if err != nil {
			return nil, err
		}
		reachable := res.Reachable()
		total := res.TotalDistance()
		if reachable > 1 && total > 0 {
			scores[id] = float64(reachable-1) / float64(total)
		} else {
			scores[id] = 0
		}
	}

	return scores, nil
}
