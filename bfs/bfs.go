package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[core.NodeID]bool
	res     *Result
}

// BFS runs breadth-first search on g from source.
// Returns ErrGraphNil, ErrSourceNotFound or ErrOptionViolation for invalid
// input, ctx.Err() on cancellation, or a wrapped OnVisit error.
func BFS(g *core.Graph, source core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %w: %d", ErrSourceNotFound, core.ErrNodeNotFound, source)
	}

	nodes := g.Nodes()
	n := len(nodes)
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.NodeID]bool, n),
		res: &Result{
			Source: source,
			Order:  make([]core.NodeID, 0, n),
			Dist:   make(map[core.NodeID]int, n),
		},
	}
	for _, id := range nodes {
		w.res.Dist[id] = Unreachable
	}

	w.enqueue(source, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// enqueue marks id visited at depth d and appends it to the queue.
func (w *walker) enqueue(id core.NodeID, d int) {
	w.visited[id] = true
	w.res.Dist[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.Neighbors(item.id) {
			if !w.visited[nbr] {
				w.enqueue(nbr, next)
			}
		}
	}

	return nil
}
