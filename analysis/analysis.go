// Package analysis wires graph algorithms into one run: it times each step,
// records metrics and assembles a report.Report. Algorithm failures are
// returned, never printed.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/socialgraph/centrality"
	"github.com/katalvlaran/socialgraph/config"
	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/metrics"
	"github.com/katalvlaran/socialgraph/paths"
	"github.com/katalvlaran/socialgraph/report"
)

// Measure names one centrality computation.
type Measure string

const (
	Betweenness Measure = "betweenness"
	Eigenvector Measure = "eigenvector"
	Closeness   Measure = "closeness"
)

// AllMeasures lists every measure in report order.
var AllMeasures = []Measure{Betweenness, Eigenvector, Closeness}

// ErrUnknownMeasure is returned for a measure name not in AllMeasures.
var ErrUnknownMeasure = errors.New("analysis: unknown measure")

// ParseMeasure validates a measure name.
func ParseMeasure(s string) (Measure, error) {
	for _, m := range AllMeasures {
		if string(m) == s {
			return m, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMeasure, s)
}

// Analyzer runs measures over a graph.
type Analyzer struct {
	cfg      *config.Config
	rec      *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
	newRunID func() string
}

// New creates an Analyzer. rec and logger may be nil.
func New(cfg *config.Config, rec *metrics.Recorder, logger *slog.Logger) *Analyzer {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	if rec == nil {
		rec = metrics.New()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Analyzer{
		cfg:      cfg,
		rec:      rec,
		logger:   logger,
		now:      time.Now,
		newRunID: uuid.NewString,
	}
}

// Metrics returns the recorder in use.
func (a *Analyzer) Metrics() *metrics.Recorder { return a.rec }

func (a *Analyzer) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.Run.Timeout > 0 {
		return context.WithTimeout(ctx, a.cfg.Run.Timeout)
	}
	return context.WithCancel(ctx)
}

func (a *Analyzer) base(g *core.Graph, src string) *report.Report {
	r := &report.Report{
		RunID:             a.newRunID(),
		Generated:         a.now().UTC(),
		Source:            src,
		Nodes:             g.Len(),
		UniqueConnections: g.CountUniqueConnections(),
	}
	a.rec.SetGraph(r.Nodes, r.UniqueConnections)

	return r
}

// Report computes the requested measures (all when none are given).
func (a *Analyzer) Report(ctx context.Context, g *core.Graph, src string, measures ...Measure) (_ *report.Report, err error) {
	if g == nil {
		return nil, core.ErrGraphNil
	}
	defer func() { a.rec.RunFinished(err) }()
	if len(measures) == 0 {
		measures = AllMeasures
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	r := a.base(g, src)
	log := a.logger.With("run", r.RunID)
	log.Info("analysis started", "nodes", r.Nodes, "connections", r.UniqueConnections)

	opts := []centrality.Option{
		centrality.WithContext(ctx),
		centrality.WithIterations(a.cfg.Eigen.Iterations),
		centrality.WithTolerance(a.cfg.Eigen.Tolerance),
		centrality.WithMaxPaths(a.cfg.Paths.MaxPaths),
		centrality.WithOnPaths(func(_, _ core.NodeID, n int) { a.rec.AddPaths(n) }),
	}
	for _, m := range measures {
		var scores centrality.Scores
		stop := a.rec.Time(string(m))
		started := time.Now()
		switch m {
		case Betweenness:
			scores, err = centrality.Betweenness(g, opts...)
		case Eigenvector:
			scores, err = centrality.Eigenvector(g, opts...)
		case Closeness:
			scores, err = centrality.Closeness(g, opts...)
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownMeasure, m)
		}
		stop()
		if err != nil {
			log.Error("measure failed", "measure", m, "err", err)
			return nil, fmt.Errorf("analysis: %s: %w", m, err)
		}
		log.Debug("measure done", "measure", m, "elapsed", time.Since(started))

		ranked := scores.Ranked()
		switch m {
		case Betweenness:
			r.Betweenness = ranked
		case Eigenvector:
			r.Eigenvector = ranked
		case Closeness:
			r.Closeness = ranked
		}
	}
	r.Truncate(a.cfg.Output.Top)
	log.Info("analysis finished")

	return r, nil
}

// Chain runs a friend-chain query and wraps it in a report.
// A disconnected pair is a successful run with Chain.Found == false;
// a missing endpoint is an error.
func (a *Analyzer) Chain(ctx context.Context, g *core.Graph, src string, from, to core.NodeID) (_ *report.Report, err error) {
	if g == nil {
		return nil, core.ErrGraphNil
	}
	defer func() { a.rec.RunFinished(err) }()

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	r := a.base(g, src)
	stop := a.rec.Time("friend_chain")
	p, err := paths.FriendChain(g, from, to, paths.WithContext(ctx))
	stop()

	r.Chain = &report.Chain{From: from, To: to}
	switch {
	case err == nil:
		r.Chain.Found = true
		r.Chain.Path = p
	case errors.Is(err, paths.ErrNoPath):
		err = nil
	default:
		return nil, err
	}
	a.logger.Info("friend chain", "run", r.RunID, "from", from, "to", to, "found", r.Chain.Found, "hops", r.Chain.Hops())

	return r, nil
}

// Matrix wraps the dense adjacency view of g in a report.
func (a *Analyzer) Matrix(g *core.Graph, src string) (_ *report.Report, err error) {
	if g == nil {
		return nil, core.ErrGraphNil
	}
	defer func() { a.rec.RunFinished(err) }()

	r := a.base(g, src)
	stop := a.rec.Time("adjacency_matrix")
	r.Matrix = report.MatrixOf(g.AdjacencyMatrix())
	stop()
	a.logger.Info("adjacency matrix", "run", r.RunID, "size", len(r.Matrix.Order), "symmetric", r.Matrix.Symmetric)

	return r, nil
}
