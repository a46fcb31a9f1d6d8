package paths

import (
	"context"
	"slices"

	"github.com/katalvlaran/socialgraph/core"
)

// simpleWalker holds backtracking state for AllSimplePaths.
// stack is the current path (push on enter, pop on return); onPath mirrors
// its membership for O(1) cycle checks.
type simpleWalker struct {
	graph  *core.Graph
	ctx    context.Context
	end    core.NodeID
	limit  int
	stack  Path
	onPath map[core.NodeID]bool
	out    []Path
}

// AllSimplePaths enumerates every simple path from start to end.
//
// start need not be a key: a dangling start simply has no neighbors.
// start == end yields the single path [start].
// Returns ErrGraphNil, ErrOptionViolation, ctx.Err() on cancellation, or
// ErrPathLimit together with the paths collected before the cap.
func AllSimplePaths(g *core.Graph, start, end core.NodeID, opts ...Option) ([]Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	w := &simpleWalker{
		graph:  g,
		ctx:    o.Ctx,
		end:    end,
		limit:  o.MaxPaths,
		onPath: make(map[core.NodeID]bool),
	}
	if err = w.walk(start); err != nil {
		return w.out, err
	}

	return w.out, nil
}

// walk pushes id, records a copy on arrival, otherwise recurses into every
// neighbor not on the current path, then pops id.
func (w *simpleWalker) walk(id core.NodeID) error {
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
	}

	w.stack = append(w.stack, id)
	w.onPath[id] = true
	defer func() {
		w.stack = w.stack[:len(w.stack)-1]
		delete(w.onPath, id)
	}()

	if id == w.end {
		w.out = append(w.out, slices.Clone(w.stack))
		if w.limit > 0 && len(w.out) >= w.limit {
			return ErrPathLimit
		}
		return nil
	}

	for _, nbr := range w.graph.Neighbors(id) {
		if w.onPath[nbr] {
			continue
		}
		if err := w.walk(nbr); err != nil {
			return err
		}
	}

	return nil
}
