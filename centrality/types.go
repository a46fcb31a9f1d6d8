package centrality

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/socialgraph/core"
)

// DefaultIterations is the fixed power-iteration budget for Eigenvector.
const DefaultIterations = 100

// Sentinel errors for centrality computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")
)

// Scores maps each node to a centrality value.
type Scores map[core.NodeID]float64

// Ranked is one row of a ranking.
type Ranked struct {
	Node  core.NodeID `json:"node" yaml:"node"`
	Score float64     `json:"score" yaml:"score"`
	Rank  int         `json:"rank" yaml:"rank"` // 1-indexed
}

// Ranked orders scores descending, breaking ties by ascending node id.
func (s Scores) Ranked() []Ranked {
	out := make([]Ranked, 0, len(s))
	for id, v := range s {
		out = append(out, Ranked{Node: id, Score: v})
	}
	slices.SortFunc(out, func(a, b Ranked) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Node, b.Node)
	})
	for i := range out {
		out[i].Rank = i + 1
	}

	return out
}

// Sum adds every score.
func (s Scores) Sum() float64 {
	var total float64
	for _, v := range s {
		total += v
	}

	return total
}

// Option configures a centrality run.
type Option func(*Options)

// Options holds parameters shared by every measure.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Iterations is the Eigenvector power-iteration budget.
	Iterations int

	// Tolerance, if > 0, stops Eigenvector once no score moves more than it.
	Tolerance float64

	// MaxPaths caps simple paths per pair in Betweenness. 0 means unlimited;
	// hitting the cap is reported as paths.ErrPathLimit.
	MaxPaths int

	// OnPaths, if set, receives the number of simple paths found per pair.
	OnPaths func(s, t core.NodeID, n int)

	err error
}

// DefaultOptions returns background context, 100 iterations, no tolerance and no path cap.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Iterations: DefaultIterations,
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

// WithIterations sets the Eigenvector iteration budget (n ≥ 1).
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Iterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Iterations = n
	}
}

// WithTolerance enables convergence-based early exit for Eigenvector.
// tol == 0 keeps the fixed budget.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol < 0 || math.IsNaN(tol) {
			o.err = fmt.Errorf("%w: Tolerance cannot be negative (%v)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithMaxPaths caps per-pair path enumeration in Betweenness.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}

// WithOnPaths registers a per-pair path count hook for Betweenness.
func WithOnPaths(fn func(s, t core.NodeID, n int)) Option {
	return func(o *Options) { o.OnPaths = fn }
}

func buildOptions(g *core.Graph, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
