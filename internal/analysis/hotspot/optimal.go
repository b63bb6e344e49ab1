package hotspot

import (
	"github.com/paulmach/orb"
)

// SweepPoint is one step of the optimal-neighbour sweep.
type SweepPoint struct {
	K                int     `json:"k"`
	ShareSignificant float64 `json:"share_significant"` // percent of cells with p <= alpha
}

// SweepOptimalNeighbours runs the test across a range of neighbour
// counts and reports, per k, the share of cells whose pseudo p-value
// falls at or below alpha. Used to pick a k where enough of the study
// region turns significant. Values of k that exceed the point count are
// skipped.
func (g *GLocal) SweepOptimalNeighbours(points []orb.Point, values []float64, from, to, step int, alpha float64) ([]SweepPoint, error) {
	if len(values) == 0 {
		return nil, ErrNoValues
	}
	if from < 1 {
		from = 1
	}
	if step < 1 {
		step = 1
	}

	var out []SweepPoint
	for k := from; k < to; k += step {
		if k >= len(points) {
			break
		}
		w, err := KNNWeights(points, k)
		if err != nil {
			return nil, err
		}
		res, err := g.Test(values, w)
		if err != nil {
			return nil, err
		}

		under := 0
		for _, p := range res.PSim {
			if p <= alpha {
				under++
			}
		}
		out = append(out, SweepPoint{
			K:                k,
			ShareSignificant: float64(under) / float64(len(values)) * 100,
		})
	}
	return out, nil
}
