package paths

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

// Sentinel errors for path search.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrNodeNotFound is returned when a chain endpoint is not a graph key.
	ErrNodeNotFound = errors.New("paths: endpoint not found")

	// ErrNoPath reports that end is unreachable from start.
	ErrNoPath = errors.New("paths: no path found")

	// ErrPathLimit reports that enumeration stopped at the MaxPaths cap.
	ErrPathLimit = errors.New("paths: path limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("paths: invalid option supplied")
)

// Path is an ordered sequence of distinct nodes.
type Path = []core.NodeID

// Option configures a search.
type Option func(*Options)

// Options holds search parameters.
type Options struct {
	// Ctx allows an external deadline to abandon the search.
	Ctx context.Context

	// MaxPaths caps AllSimplePaths output. 0 means unlimited.
	MaxPaths int

	err error
}

// DefaultOptions returns background context and no path cap.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPaths caps the number of enumerated paths (n > 0); 0 disables the cap.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
