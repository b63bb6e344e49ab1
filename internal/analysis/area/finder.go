// Package area extracts geographically compact "desired areas" from a
// hotspot cell set by searching for the density-clustering neighbour
// threshold at which exactly one dense region survives, then peeling
// that region off and repeating over the remainder.
package area

import (
	"errors"

	"github.com/telcolab/coverage-backend-go/internal/analysis/cluster"
	"github.com/telcolab/coverage-backend-go/internal/spatial"
)

var (
	// ErrEmptyInput means a search was invoked on an empty cell set.
	ErrEmptyInput = errors.New("area: empty cell set")

	// ErrDegenerateSearch means the neighbour descent never observed a
	// label-count change: the remainder has no clustering structure at
	// the given epsilon. For a peeling loop this is the expected
	// terminal state of a noise-only remainder.
	ErrDegenerateSearch = errors.New("area: no label change observed across neighbour descent")
)

// Finder runs the neighbour search, the refinement and the peeling loop
// over a cell set. It holds no mutable state between runs.
type Finder struct {
	clusterer      cluster.Clusterer
	projector      *spatial.Projector
	observer       ProgressObserver
	returnMatching bool
}

// Option configures a Finder.
type Option func(*Finder)

// WithObserver replaces the default log-based progress sink.
func WithObserver(o ProgressObserver) Option {
	return func(f *Finder) { f.observer = o }
}

// WithReturnMatching makes the refiner return the last clustering that
// actually satisfied the single-region condition instead of the last
// clustering attempted. The default mirrors the historical behaviour,
// which can hand back a clustering where the condition no longer holds.
func WithReturnMatching() Option {
	return func(f *Finder) { f.returnMatching = true }
}

// NewFinder creates a Finder over the given clusterer and projector.
func NewFinder(c cluster.Clusterer, p *spatial.Projector, opts ...Option) *Finder {
	f := &Finder{
		clusterer: c,
		projector: p,
		observer:  NewLogObserver(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}
