package centrality

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/paths"
)

// Betweenness counts, for every node, how many times it sits strictly inside
// a simple path between an ordered pair of other nodes.
//
// Every key starts at 0. Endpoints of a path are never credited by that path.
// Errors from path enumeration (cancellation, path cap) abort the run.
// Complexity: exponential in the number of simple paths.
func Betweenness(g *core.Graph, opts ...Option) (Scores, error) {
	o, err := buildOptions(g, opts)
	if err != nil {
		return nil, err
	}

	nodes := g.Nodes()
	scores := make(Scores, len(nodes))
	for _, id := range nodes {
		scores[id] = 0
	}

	popts := []paths.Option{paths.WithContext(o.Ctx), paths.WithMaxPaths(o.MaxPaths)}
	var all []paths.Path
	for _, s := range nodes {
		for _, t := range nodes {
			if s == t {
				continue
			}
			all, err = paths.AllSimplePaths(g, s, t, popts...)
			if err != nil {
				return nil, fmt.Errorf("centrality: betweenness %d -> %d: %w", s, t, err)
			}
			if o.OnPaths != nil {
				o.OnPaths(s, t, len(all))
			}
			for _, p := range all {
				for _, mid := range p[1 : len(p)-1] {
					scores[mid]++
				}
			}
		}
	}

	return scores, nil
}
