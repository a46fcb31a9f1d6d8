package source

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/socialgraph/core"
)

// Encode writes g in a form Decode reads back unchanged.
func Encode(w io.Writer, g *core.Graph, format Format) error {
	if g == nil {
		return core.ErrGraphNil
	}
	adj := g.Adjacency()
	switch format {
	case JSON:
		// encoding/json sorts map keys, so output is stable.
		doc := make(map[string][]core.NodeID, len(adj))
		for id, nbrs := range adj {
			doc[strconv.FormatInt(id, 10)] = nbrs
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(adj); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
