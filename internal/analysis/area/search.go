package area

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/telcolab/coverage-backend-go/internal/analysis/cluster"
)

// StartNeighbours finds the neighbour count nearest to the point where
// dense regions start to appear while still producing none, as the upper
// bound for the refinement scan. It descends from len(centroids) in
// steps of round(0.005 * n), minimum 1, and stops at the first change in
// the distinct-label count between consecutive clustering calls.
//
// Returns ErrDegenerateSearch when the full descent never observes a
// change; the boundary value returned alongside it is the last descent
// position plus one step and carries no structural meaning.
func (f *Finder) StartNeighbours(centroids []orb.Point, eps float64) (int, error) {
	n := len(centroids)
	if n == 0 {
		return 0, ErrEmptyInput
	}

	step := int(math.Round(float64(n) * 0.005))
	if step < 1 {
		step = 1
	}

	past := 1
	last := n
	changed := false
	for m := n; m > 1; m -= step {
		last = m
		labels := f.clusterer.Cluster(centroids, eps, m)
		current := cluster.CountDistinct(labels)
		if current != past {
			changed = true
			break
		}
		past = current
	}

	if !changed {
		return last + step, ErrDegenerateSearch
	}
	return last + step, nil
}
