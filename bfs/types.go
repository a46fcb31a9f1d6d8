package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

// Unreachable marks a key the source cannot reach. It is not a distance.
const Unreachable = -1

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceNotFound is returned when the source is not a graph key.
	// It is always joined with core.ErrNodeNotFound.
	ErrSourceNotFound = errors.New("bfs: source not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by BFS.
type Option func(*Options)

// Options holds parameters and callbacks for a BFS run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops discovering nodes beyond this depth.
	MaxDepth int

	// OnVisit runs when a node is dequeued. A returned error aborts BFS.
	OnVisit func(id core.NodeID, depth int) error

	err error
}

// DefaultOptions returns background context, no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(core.NodeID, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits discovery to depth d (d > 0). d == 0 means no limit.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a visit hook.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS run.
//   - Source: the start node.
//   - Order:  nodes in visit sequence.
//   - Dist:   hop count per node, Unreachable for keys never reached.
type Result struct {
	Source core.NodeID
	Order  []core.NodeID
	Dist   map[core.NodeID]int
}

// Distance returns the hop count to id and whether it is finite.
func (r *Result) Distance(id core.NodeID) (int, bool) {
	d, ok := r.Dist[id]
	if !ok || d == Unreachable {
		return 0, false
	}

	return d, true
}

// Reachable counts entries with a finite distance, the source included.
func (r *Result) Reachable() int {
	n := 0
	for _, d := range r.Dist {
		if d != Unreachable {
			n++
		}
	}

	return n
}

// TotalDistance sums every finite distance.
func (r *Result) TotalDistance() int {
	sum := 0
	for _, d := range r.Dist {
		if d != Unreachable {
			sum += d
		}
	}

	return sum
}
