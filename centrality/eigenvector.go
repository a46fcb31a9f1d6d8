package centrality

import (
	"math"

	"github.com/katalvlaran/socialgraph/core"
)

// Eigenvector runs synchronous power iteration with L1 normalization.
//
// Scores start at 1.0 for every key. Each iteration computes
// next[v] = Σ prev[u] for u in Neighbors(v), reading only prev, then divides
// by Σ next. A zero sum sets every score to 0. Dangling neighbors carry no
// score and contribute nothing.
//
// The loop runs exactly Options.Iterations times unless WithTolerance is set,
// in which case it stops once the largest per-node change is below it.
// Complexity: O(Iterations·(V + E)).
func Eigenvector(g *core.Graph, opts ...Option) (Scores, error) {
	o, err := buildOptions(g, opts)
	if err != nil {
		return nil, err
	}

	nodes := g.Nodes()
	adj := g.Adjacency()
	prev := make(Scores, len(nodes))
	for _, id := range nodes {
		prev[id] = 1.0
	}

	var (
		next  Scores
		sum   float64
		delta float64
	)
	for iter := 0; iter < o.Iterations; iter++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		next = make(Scores, len(nodes))
		sum = 0
		for _, v := range nodes {
			var acc float64
			for _, u := range adj[v] {
				acc += prev[u] // missing u reads 0
			}
			next[v] = acc
			sum += acc
		}

		delta = 0
		for _, v := range nodes {
			if sum == 0 {
				next[v] = 0
			} else {
				next[v] /= sum
			}
			delta = math.Max(delta, math.Abs(next[v]-prev[v]))
		}
		prev = next

		if o.Tolerance > 0 && delta < o.Tolerance {
			break
		}
	}

	return prev, nil
}
