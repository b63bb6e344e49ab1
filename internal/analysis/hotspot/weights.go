// Package hotspot implements the local spatial-autocorrelation test used
// to classify cells as hotspot or coldspot: k-nearest-neighbour spatial
// weights plus a permutation-based Getis-Ord G-local statistic.
package hotspot

import (
	"errors"
	"fmt"
	"sort"

	"github.com/paulmach/orb"

	"github.com/telcolab/coverage-backend-go/internal/spatial"
)

// ErrTooFewPoints means the point set cannot support the requested k.
var ErrTooFewPoints = errors.New("hotspot: not enough points for knn weights")

// Weights is a k-nearest-neighbour spatial adjacency structure.
// Neighbors[i] holds the indices of the k points closest to point i,
// nearest first, never including i itself.
type Weights struct {
	K         int
	Neighbors [][]int
}

// KNNWeights builds k-nearest-neighbour weights over geographic points
// (lon/lat order) using great-circle distance.
func KNNWeights(points []orb.Point, k int) (*Weights, error) {
	n := len(points)
	if k < 1 {
		return nil, fmt.Errorf("hotspot: k must be positive, got %d", k)
	}
	if n <= k {
		return nil, fmt.Errorf("%w: %d points, k=%d", ErrTooFewPoints, n, k)
	}

	w := &Weights{K: k, Neighbors: make([][]int, n)}
	idx := make([]int, n)
	dist := make([]float64, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			idx[j] = j
			dist[j] = spatial.HaversineDistance(points[i][1], points[i][0], points[j][1], points[j][0])
		}
		sort.Slice(idx, func(a, b int) bool {
			if dist[idx[a]] == dist[idx[b]] {
				return idx[a] < idx[b]
			}
			return dist[idx[a]] < dist[idx[b]]
		})

		nb := make([]int, 0, k)
		for _, j := range idx {
			if j == i {
				continue
			}
			nb = append(nb, j)
			if len(nb) == k {
				break
			}
		}
		w.Neighbors[i] = nb
	}
	return w, nil
}
