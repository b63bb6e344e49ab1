package area

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"

	"github.com/telcolab/coverage-backend-go/internal/spatial"
)

// scriptedClusterer returns labels as a pure function of minSamples and
// records every minSamples value it was called with.
type scriptedClusterer struct {
	labelsFor func(minSamples int) []int
	calls     []int
}

func (s *scriptedClusterer) Cluster(points []orb.Point, eps float64, minSamples int) []int {
	s.calls = append(s.calls, minSamples)
	return s.labelsFor(minSamples)
}

func testPoints(n int) []orb.Point {
	pts := make([]orb.Point, n)
	for i := range pts {
		pts[i] = orb.Point{float64(i), 0}
	}
	return pts
}

func newTestFinder(c *scriptedClusterer, opts ...Option) *Finder {
	opts = append(opts, WithObserver(ObserverFunc(func(ProgressRecord) {})))
	return NewFinder(c, spatial.NewMercatorProjector(), opts...)
}

func TestStartNeighboursStopsAtFirstLabelChange(t *testing.T) {
	// one distinct label until minSamples drops below 6, two after
	sc := &scriptedClusterer{labelsFor: func(m int) []int {
		if m >= 6 {
			return []int{-1, -1, -1}
		}
		return []int{0, 0, -1}
	}}
	f := newTestFinder(sc)

	got, err := f.StartNeighbours(testPoints(10), 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// descent 10,9,8,7,6,5 with step 1; change observed at 5
	if got != 6 {
		t.Errorf("Expected start neighbours 6, got %d", got)
	}
	if sc.calls[0] != 10 {
		t.Errorf("Expected descent to start at 10, got %d", sc.calls[0])
	}
	if last := sc.calls[len(sc.calls)-1]; last != 5 {
		t.Errorf("Expected descent to stop at 5, got %d", last)
	}
}

func TestStartNeighboursDegenerate(t *testing.T) {
	sc := &scriptedClusterer{labelsFor: func(int) []int {
		return []int{-1, -1, -1}
	}}
	f := newTestFinder(sc)

	got, err := f.StartNeighbours(testPoints(10), 1)
	if !errors.Is(err, ErrDegenerateSearch) {
		t.Fatalf("Expected ErrDegenerateSearch, got %v", err)
	}
	// descent bottoms out at 2, boundary is last position plus step
	if got != 3 {
		t.Errorf("Expected boundary 3, got %d", got)
	}
}

func TestStartNeighboursEmptyInput(t *testing.T) {
	f := newTestFinder(&scriptedClusterer{labelsFor: func(int) []int { return nil }})

	if _, err := f.StartNeighbours(nil, 1); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}
}
