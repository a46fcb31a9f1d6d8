package paths

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/socialgraph/core"
)

// FriendChain returns a shortest chain of friends from start to end,
// both inclusive. start == end yields [start].
//
// Returns ErrNodeNotFound if either endpoint is not a key (no search runs),
// ErrNoPath if end is unreachable, or ctx.Err() on cancellation.
// Complexity: O(V + E) expansions.
func FriendChain(g *core.Graph, start, end core.NodeID, opts ...Option) (Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	for _, id := range []core.NodeID{start, end} {
		if !g.HasNode(id) {
			return nil, fmt.Errorf("%w: %w: %d", ErrNodeNotFound, core.ErrNodeNotFound, id)
		}
	}
	if start == end {
		return Path{start}, nil
	}

	visited := map[core.NodeID]bool{start: true}
	queue := []Path{{start}}
	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		path := queue[0]
		queue = queue[1:]
		last := path[len(path)-1]
		for _, nbr := range g.Neighbors(last) {
			if visited[nbr] {
				continue
			}
			// Grow into a fresh slice: siblings must not share a backing array.
			next := append(slices.Clip(path), nbr)
			if nbr == end {
				return next, nil
			}
			visited[nbr] = true
			queue = append(queue, next)
		}
	}

	return nil, fmt.Errorf("%w: %d -> %d", ErrNoPath, start, end)
}
