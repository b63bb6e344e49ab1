package hotspot

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/telcolab/coverage-backend-go/internal/models"
)

// DefaultPermutations matches the historical test configuration.
const DefaultPermutations = 999

// ErrNoValues means the test was invoked without observations.
var ErrNoValues = errors.New("hotspot: no values to test")

// Result holds per-point test output, index-aligned with the input.
type Result struct {
	G     []float64 // observed G-local statistic
	PSim  []float64 // pseudo p-value from conditional permutations
	ZSim  []float64 // standardized deviate against the permutation distribution
	PNorm []float64 // analytic upper-tail p under a normal approximation
}

// GLocal is a permutation-based Getis-Ord local statistic with
// row-standardized KNN weights. The RNG is seeded explicitly so runs are
// reproducible.
type GLocal struct {
	permutations int
	seed         int64
}

// NewGLocal creates a tester. permutations <= 0 selects the default 999.
func NewGLocal(permutations int, seed int64) *GLocal {
	if permutations <= 0 {
		permutations = DefaultPermutations
	}
	return &GLocal{permutations: permutations, seed: seed}
}

// Test computes the G-local statistic for every value given the weights.
// For each point the observed mean-of-neighbours share is compared with
// the distribution obtained by permuting the other values in place.
func (g *GLocal) Test(values []float64, w *Weights) (*Result, error) {
	n := len(values)
	if n == 0 {
		return nil, ErrNoValues
	}
	if w == nil {
		return nil, errors.New("hotspot: nil weights")
	}
	if len(w.Neighbors) != n {
		return nil, fmt.Errorf("hotspot: weights cover %d points, want %d", len(w.Neighbors), n)
	}

	rng := rand.New(rand.NewSource(g.seed))
	res := &Result{
		G:     make([]float64, n),
		PSim:  make([]float64, n),
		ZSim:  make([]float64, n),
		PNorm: make([]float64, n),
	}

	total := floats.Sum(values)
	sims := make([]float64, g.permutations)
	others := make([]float64, 0, n-1)

	for i := 0; i < n; i++ {
		k := len(w.Neighbors[i])
		denom := total - values[i]
		if k == 0 || denom == 0 {
			res.PSim[i] = 1
			res.PNorm[i] = 1
			continue
		}

		var sum float64
		for _, j := range w.Neighbors[i] {
			sum += values[j]
		}
		obs := sum / float64(k) / denom
		res.G[i] = obs

		others = others[:0]
		for j, v := range values {
			if j != i {
				others = append(others, v)
			}
		}

		larger := 0
		for p := 0; p < g.permutations; p++ {
			rng.Shuffle(len(others), func(a, b int) {
				others[a], others[b] = others[b], others[a]
			})
			var s float64
			for q := 0; q < k; q++ {
				s += others[q]
			}
			sims[p] = s / float64(k) / denom
			if sims[p] >= obs {
				larger++
			}
		}

		if g.permutations-larger < larger {
			larger = g.permutations - larger
		}
		res.PSim[i] = float64(larger+1) / float64(g.permutations+1)

		mean := stat.Mean(sims, nil)
		sd := stat.StdDev(sims, nil)
		if sd > 0 {
			res.ZSim[i] = (obs - mean) / sd
		}
		res.PNorm[i] = 1 - distuv.UnitNormal.CDF(res.ZSim[i])
	}

	return res, nil
}

// Classify maps a (p, z) pair to a spot label at significance alpha.
func Classify(p, z, alpha float64) string {
	if p > alpha {
		return models.SpotNotSignificant
	}
	if z > 0 {
		return models.SpotHotspot
	}
	if z < 0 {
		return models.SpotColdspot
	}
	return models.SpotNotSignificant
}
