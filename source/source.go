package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/socialgraph/core"
)

// Sentinel errors for graph loading.
var (
	// ErrNotFound indicates the backing file does not exist.
	ErrNotFound = errors.New("source: graph file not found")

	// ErrMalformed indicates the document cannot be parsed as an adjacency map.
	ErrMalformed = errors.New("source: malformed graph document")

	// ErrDuplicateKey indicates a node id appears twice as a key.
	ErrDuplicateKey = errors.New("source: duplicate node key")

	// ErrNullNeighbors indicates a key whose neighbor list is null.
	ErrNullNeighbors = errors.New("source: null neighbor list")

	// ErrUnsupportedFormat indicates an unknown file extension or format name.
	ErrUnsupportedFormat = errors.New("source: unsupported format")
)

// Format names a document encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFor picks a Format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and decodes the graph stored at path.
func Load(path string) (*core.Graph, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("source: read %s: %w", path, err)
	}
	g, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Decode parses a document in the given format.
func Decode(r io.Reader, format Format) (*core.Graph, error) {
	var (
		adj map[core.NodeID][]core.NodeID
		err error
	)
	switch format {
	case JSON:
		adj, err = decodeJSON(r)
	case YAML:
		adj, err = decodeYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	return core.FromAdjacency(adj)
}

func parseKey(s string) (core.NodeID, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: key %q is not a 64-bit integer", ErrMalformed, s)
	}

	return id, nil
}

// decodeJSON walks the top-level object token by token so duplicate keys
// are detected instead of silently overwritten.
func decodeJSON(r io.Reader) (map[core.NodeID][]core.NodeID, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: top level must be an object", ErrMalformed)
	}

	adj := make(map[core.NodeID][]core.NodeID)
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		key, _ := tok.(string)
		id, err := parseKey(key)
		if err != nil {
			return nil, err
		}
		if _, dup := adj[id]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateKey, id)
		}

		var raw *[]*core.NodeID
		if err = dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: neighbors of %d: %v", ErrMalformed, id, err)
		}
		if raw == nil {
			return nil, fmt.Errorf("%w: %d", ErrNullNeighbors, id)
		}
		nbrs := make([]core.NodeID, len(*raw))
		for j, nbr := range *raw {
			if nbr == nil {
				return nil, fmt.Errorf("%w: neighbors of %d: null entry at index %d", ErrMalformed, id, j)
			}
			nbrs[j] = *nbr
		}
		adj[id] = nbrs
	}
	if _, err = dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after object", ErrMalformed)
	}

	return adj, nil
}

// decodeYAML walks the document node tree for the same checks as JSON.
func decodeYAML(r io.Reader) (map[core.NodeID][]core.NodeID, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return map[core.NodeID][]core.NodeID{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrMalformed)
	}

	adj := make(map[core.NodeID][]core.NodeID, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		id, err := parseKey(keyNode.Value)
		if err != nil {
			return nil, err
		}
		if _, dup := adj[id]; dup {
			return nil, fmt.Errorf("%w: %d (line %d)", ErrDuplicateKey, id, keyNode.Line)
		}
		for valNode.Kind == yaml.AliasNode && valNode.Alias != nil {
			valNode = valNode.Alias
		}
		if valNode.Tag == "!!null" {
			return nil, fmt.Errorf("%w: %d (line %d)", ErrNullNeighbors, id, valNode.Line)
		}
		if valNode.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("%w: neighbors of %d must be a sequence (line %d)", ErrMalformed, id, valNode.Line)
		}
		nbrs := make([]core.NodeID, len(valNode.Content))
		for j, item := range valNode.Content {
			for item.Kind == yaml.AliasNode && item.Alias != nil {
				item = item.Alias
			}
			if item.Tag == "!!null" {
				return nil, fmt.Errorf("%w: neighbors of %d: null entry at index %d (line %d)", ErrMalformed, id, j, item.Line)
			}
			if err = item.Decode(&nbrs[j]); err != nil {
				return nil, fmt.Errorf("%w: neighbors of %d: %v", ErrMalformed, id, err)
			}
		}
		adj[id] = nbrs
	}

	return adj, nil
}
