package area

import (
	"github.com/paulmach/orb"

	"github.com/telcolab/coverage-backend-go/internal/analysis/cluster"
)

// Refine finds the maximum neighbour count at which the clusterer yields
// exactly one non-noise region (two distinct labels including noise) and
// returns that clustering's labels, aligned with the centroid order.
//
// Five outer passes scan downward from startNeighbours with decreasing
// step granularity. Within a pass the first qualifying neighbour count
// wins: the lower scan boundary moves up to it and the start widens by
// one step for the finer pass that follows. A pass that bottoms out with
// a single distinct label coarsens the start to the last value scanned.
// Each pass emits one progress record.
//
// By default the labels of the last clustering attempted are returned,
// whether or not that call satisfied the single-region condition; see
// WithReturnMatching.
func (f *Finder) Refine(centroids []orb.Point, startNeighbours int, eps float64) ([]int, error) {
	if len(centroids) == 0 {
		return nil, ErrEmptyInput
	}
	if startNeighbours < 1 {
		startNeighbours = 1
	}

	stop := 1
	steps := 5

	var lastLabels, matched []int
	lastDistinct := 0
	lastN := startNeighbours

	for steps > 0 {
		for m := startNeighbours; m >= stop; m -= steps {
			lastN = m
			lastLabels = f.clusterer.Cluster(centroids, eps, m)
			lastDistinct = cluster.CountDistinct(lastLabels)

			if lastDistinct == 2 {
				matched = lastLabels
				stop = m
				startNeighbours = m + steps
				break
			}
		}

		if lastDistinct == 1 {
			startNeighbours = lastN
		}

		f.observer.ObservePass(ProgressRecord{
			Steps:           steps,
			Neighbours:      lastN,
			StartNeighbours: startNeighbours,
			StopNeighbours:  stop,
			DesiredAreas:    lastDistinct - 1,
		})

		steps--
	}

	if f.returnMatching && matched != nil {
		return matched, nil
	}
	return lastLabels, nil
}
