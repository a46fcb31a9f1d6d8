package main

import (
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialgraph/analysis"
	"github.com/katalvlaran/socialgraph/builder"
	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/source"
)

func newReportCmd(a *app) *cobra.Command {
	var measures []string
	cmd := &cobra.Command{
		Use:   "report <graph-file>",
		Short: "Rank people by centrality",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := parseMeasures(measures)
			if err != nil {
				return err
			}
			g, err := source.Load(args[0])
			if err != nil {
				return err
			}
			r, err := a.analyzer.Report(a.ctx(cmd), g, args[0], ms...)
			if err != nil {
				return err
			}
			return a.render(r)
		},
	}
	cmd.Flags().StringSliceVarP(&measures, "measure", "m", nil, "measures to compute: betweenness, eigenvector, closeness (default all)")

	return cmd
}

func newChainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chain <graph-file> <from> <to>",
		Short: "Find the shortest friend chain between two people",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseNode(args[1])
			if err != nil {
				return err
			}
			to, err := parseNode(args[2])
			if err != nil {
				return err
			}
			g, err := source.Load(args[0])
			if err != nil {
				return err
			}
			r, err := a.analyzer.Chain(a.ctx(cmd), g, args[0], from, to)
			if err != nil {
				return err
			}
			return a.render(r)
		},
	}
}

func newEdgesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edges <graph-file>",
		Short: "Print the number of unique connections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := source.Load(args[0])
			if err != nil {
				return err
			}
			n := g.CountUniqueConnections()
			a.analyzer.Metrics().SetGraph(g.Len(), n)
			fmt.Fprintln(a.out, n)

			return a.flushMetrics()
		},
	}
}

func newMatrixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix <graph-file>",
		Short: "Print the 0/1 adjacency matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := source.Load(args[0])
			if err != nil {
				return err
			}
			r, err := a.analyzer.Matrix(g, args[0])
			if err != nil {
				return err
			}
			return a.render(r)
		},
	}
}

func newWatchCmd(a *app) *cobra.Command {
	var measures []string
	cmd := &cobra.Command{
		Use:   "watch <graph-file>",
		Short: "Recompute the report every time the graph file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := parseMeasures(measures)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(a.ctx(cmd), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			run := func(g *core.Graph) {
				r, err := a.analyzer.Report(ctx, g, args[0], ms...)
				if err != nil {
					a.logger.Error("report failed", "err", err)
					return
				}
				if err = a.render(r); err != nil {
					a.logger.Error("render failed", "err", err)
				}
			}

			g, err := source.Load(args[0])
			if err != nil {
				return err
			}
			run(g)
			a.logger.Info("watching graph file", "path", args[0])

			return source.Watch(ctx, args[0], a.logger, run)
		},
	}
	cmd.Flags().StringSliceVarP(&measures, "measure", "m", nil, "measures to compute (default all)")

	return cmd
}

func parseMeasures(names []string) ([]analysis.Measure, error) {
	out := make([]analysis.Measure, 0, len(names))
	for _, n := range names {
		m, err := analysis.ParseMeasure(n)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}

func parseNode(s string) (core.NodeID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("node id %q: %w", s, err)
	}

	return id, nil
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		topology string
		n        int
		p        float64
		seed     int64
		format   string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic friendship graph to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			con, err := builder.ByName(topology, n, p, seed)
			if err != nil {
				return err
			}
			g, err := builder.Build(con)
			if err != nil {
				return err
			}
			a.logger.Debug("graph generated", "topology", topology, "nodes", g.Len())

			return source.Encode(a.out, g, source.Format(format))
		},
	}
	f := cmd.Flags()
	f.StringVar(&topology, "topology", "random", "path, cycle, star, complete or random")
	f.IntVarP(&n, "nodes", "n", 10, "number of people")
	f.Float64VarP(&p, "probability", "p", 0.3, "friendship probability for random graphs")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.StringVar(&format, "graph-format", "json", "json or yaml")

	return cmd
}
