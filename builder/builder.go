// Package builder generates deterministic friendship graphs for fixtures,
// benchmarks and the generate command.
//
// Every topology is built from reciprocal friendships over node ids 0..n-1.
// Constructors validate their parameters and return sentinel errors; they
// never panic.
package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/socialgraph/core"
)

// Sentinel errors for graph construction.
var (
	// ErrTooFewNodes indicates n is below the topology's minimum.
	ErrTooFewNodes = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates p outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNilConstructor indicates a nil Constructor was passed to Build.
	ErrNilConstructor = errors.New("builder: nil constructor")

	// ErrUnknownTopology indicates a name ByName does not recognize.
	ErrUnknownTopology = errors.New("builder: unknown topology")
)

// Constructor adds a topology to g.
type Constructor func(g *core.Graph) error

// Build creates a graph and applies cons in order.
func Build(cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: index %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

func need(method string, n, minN int) error {
	if n < minN {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minN, ErrTooFewNodes)
	}
	return nil
}

// Path links 0–1–…–(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph) error {
		if err := need("Path", n, 1); err != nil {
			return err
		}
		g.AddNode(0)
		for i := 1; i < n; i++ {
			g.AddFriendship(core.NodeID(i-1), core.NodeID(i))
		}
		return nil
	}
}

// Cycle links i to (i+1) mod n.
func Cycle(n int) Constructor {
	return func(g *core.Graph) error {
		if err := need("Cycle", n, 3); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			g.AddFriendship(core.NodeID(i), core.NodeID((i+1)%n))
		}
		return nil
	}
}

// Star links hub 0 to every other node.
func Star(n int) Constructor {
	return func(g *core.Graph) error {
		if err := need("Star", n, 2); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			g.AddFriendship(0, core.NodeID(i))
		}
		return nil
	}
}

// Complete links every pair.
func Complete(n int) Constructor {
	return func(g *core.Graph) error {
		if err := need("Complete", n, 1); err != nil {
			return err
		}
		g.AddNode(0)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.AddFriendship(core.NodeID(i), core.NodeID(j))
			}
		}
		return nil
	}
}

// RandomSparse adds each of the n(n-1)/2 friendships with probability p.
// The same seed always yields the same graph. Every node is a key.
func RandomSparse(n int, p float64, seed int64) Constructor {
	return func(g *core.Graph) error {
		if err := need("RandomSparse", n, 1); err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%v: %w", p, ErrInvalidProbability)
		}
		rng := rand.New(rand.NewSource(seed))
		for i := 0; i < n; i++ {
			g.AddNode(core.NodeID(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < p {
					g.AddFriendship(core.NodeID(i), core.NodeID(j))
				}
			}
		}
		return nil
	}
}

// ByName resolves a topology name used on the command line.
// p and seed only apply to "random".
func ByName(name string, n int, p float64, seed int64) (Constructor, error) {
	switch name {
	case "path":
		return Path(n), nil
	case "cycle":
		return Cycle(n), nil
	case "star":
		return Star(n), nil
	case "complete":
		return Complete(n), nil
	case "random":
		return RandomSparse(n, p, seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, name)
	}
}
