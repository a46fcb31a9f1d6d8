// Package report renders analysis results for people: a console table, JSON
// or YAML. Renderers only read the Report; they never touch the graph.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/socialgraph/centrality"
	"github.com/katalvlaran/socialgraph/core"
)

// ErrUnknownFormat is returned for a format name Render does not know.
var ErrUnknownFormat = errors.New("report: unknown format")

// Chain is the outcome of one friend-chain query.
type Chain struct {
	From  core.NodeID   `json:"from" yaml:"from"`
	To    core.NodeID   `json:"to" yaml:"to"`
	Found bool          `json:"found" yaml:"found"`
	Path  []core.NodeID `json:"path,omitempty" yaml:"path,omitempty"`
}

// Hops returns the number of edges in the chain, or -1 when not found.
func (c *Chain) Hops() int {
	if !c.Found {
		return -1
	}
	return len(c.Path) - 1
}

// Matrix is the dense 0/1 adjacency view. Rows[i][j] is 1 when Order[j]
// is a neighbor of Order[i].
type Matrix struct {
	Order     []core.NodeID `json:"order" yaml:"order"`
	Rows      [][]int       `json:"rows" yaml:"rows,flow"`
	Symmetric bool          `json:"symmetric" yaml:"symmetric"`
}

// MatrixOf copies am into a Matrix. Cells are widened to int so JSON does
// not encode rows as base64 byte strings.
func MatrixOf(am *core.AdjacencyMatrix) *Matrix {
	m := &Matrix{
		Order:     am.Order,
		Rows:      make([][]int, am.Size()),
		Symmetric: am.Symmetric(),
	}
	for i, cells := range am.Cells {
		row := make([]int, len(cells))
		for j, c := range cells {
			row[j] = int(c)
		}
		m.Rows[i] = row
	}

	return m
}

// Report is the plain-data result of one run.
type Report struct {
	RunID             string              `json:"run_id" yaml:"run_id"`
	Generated         time.Time           `json:"generated" yaml:"generated"`
	Source            string              `json:"source,omitempty" yaml:"source,omitempty"`
	Nodes             int                 `json:"nodes" yaml:"nodes"`
	UniqueConnections int                 `json:"unique_connections" yaml:"unique_connections"`
	Betweenness       []centrality.Ranked `json:"betweenness,omitempty" yaml:"betweenness,omitempty"`
	Eigenvector       []centrality.Ranked `json:"eigenvector,omitempty" yaml:"eigenvector,omitempty"`
	Closeness         []centrality.Ranked `json:"closeness,omitempty" yaml:"closeness,omitempty"`
	Chain             *Chain              `json:"chain,omitempty" yaml:"chain,omitempty"`
	Matrix            *Matrix             `json:"matrix,omitempty" yaml:"matrix,omitempty"`
}

// Truncate keeps at most top rows of every ranking. top <= 0 keeps all.
func (r *Report) Truncate(top int) {
	if top <= 0 {
		return
	}
	cut := func(rs []centrality.Ranked) []centrality.Ranked {
		if len(rs) > top {
			return rs[:top]
		}
		return rs
	}
	r.Betweenness = cut(r.Betweenness)
	r.Eigenvector = cut(r.Eigenvector)
	r.Closeness = cut(r.Closeness)
}

// Render writes r to w in the named format: text, json or yaml.
func Render(w io.Writer, r *Report, format string) error {
	switch strings.ToLower(format) {
	case "text", "":
		return Text(w, r)
	case "json":
		return JSON(w, r)
	case "yaml":
		return YAML(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// JSON writes r as indented JSON.
func JSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// YAML writes r as a YAML document.
func YAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}

	return enc.Close()
}

// Text writes r as aligned console tables.
func Text(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "run\t%s\n", r.RunID)
	if r.Source != "" {
		fmt.Fprintf(tw, "source\t%s\n", r.Source)
	}
	fmt.Fprintf(tw, "nodes\t%d\n", r.Nodes)
	fmt.Fprintf(tw, "unique connections\t%d\n", r.UniqueConnections)

	if c := r.Chain; c != nil {
		fmt.Fprintln(tw)
		if c.Found {
			fmt.Fprintf(tw, "friend chain %d -> %d\t%s\t(%d hops)\n", c.From, c.To, formatPath(c.Path), c.Hops())
		} else {
			fmt.Fprintf(tw, "friend chain %d -> %d\tno path found\n", c.From, c.To)
		}
	}

	if m := r.Matrix; m != nil {
		fmt.Fprintf(tw, "\nadjacency matrix\t(symmetric: %t)\n", m.Symmetric)
		for _, id := range m.Order {
			fmt.Fprintf(tw, "\t%d", id)
		}
		fmt.Fprintln(tw)
		for i, row := range m.Rows {
			fmt.Fprintf(tw, "%d", m.Order[i])
			for _, c := range row {
				fmt.Fprintf(tw, "\t%d", c)
			}
			fmt.Fprintln(tw)
		}
	}

	for _, sec := range []struct {
		title string
		rows  []centrality.Ranked
	}{
		{"betweenness", r.Betweenness},
		{"eigenvector", r.Eigenvector},
		{"closeness", r.Closeness},
	} {
		if len(sec.rows) == 0 {
			continue
		}
		fmt.Fprintf(tw, "\n%s\nrank\tnode\tscore\n", sec.title)
		for _, row := range sec.rows {
			fmt.Fprintf(tw, "%d\t%d\t%.4f\n", row.Rank, row.Node, row.Score)
		}
	}

	return tw.Flush()
}

func formatPath(p []core.NodeID) string {
	parts := make([]string, len(p))
	for i, id := range p {
		parts[i] = fmt.Sprint(id)
	}

	return strings.Join(parts, " -> ")
}
