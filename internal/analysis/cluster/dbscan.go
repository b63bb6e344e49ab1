// Package cluster provides the density-based clustering primitive used
// by the desired-area search. Labels follow the usual convention: -1 is
// noise, any other value identifies one connected dense region within a
// single clustering run. Label values are not stable across runs.
package cluster

import (
	"github.com/paulmach/orb"
)

// Noise is the label for points outside every dense region.
const Noise = -1

const unvisited = -2

// Clusterer labels a set of planar points given an epsilon radius and a
// minimum neighbour count. Implementations must be deterministic for
// identical inputs and must degrade to all-noise when the set is too
// small to satisfy minSamples.
type Clusterer interface {
	Cluster(points []orb.Point, eps float64, minSamples int) []int
}

// DBSCAN is a plain density-based clusterer over 2D planar points.
// A point is a core point when it has at least minSamples neighbours
// within eps, not counting itself; an isolated point therefore stays
// noise even at minSamples = 1.
type DBSCAN struct{}

// NewDBSCAN creates a DBSCAN clusterer.
func NewDBSCAN() *DBSCAN {
	return &DBSCAN{}
}

// Cluster returns one label per point, aligned with input order.
func (d *DBSCAN) Cluster(points []orb.Point, eps float64, minSamples int) []int {
	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = unvisited
	}
	if len(points) == 0 {
		return labels
	}
	if minSamples < 1 {
		minSamples = 1
	}

	eps2 := eps * eps
	next := 0

	for i := range points {
		if labels[i] != unvisited {
			continue
		}

		seed := d.neighbours(points, i, eps2)
		if len(seed) < minSamples {
			labels[i] = Noise
			continue
		}

		labels[i] = next
		for len(seed) > 0 {
			j := seed[0]
			seed = seed[1:]

			if labels[j] == Noise {
				// border point reached from a core point
				labels[j] = next
				continue
			}
			if labels[j] != unvisited {
				continue
			}
			labels[j] = next

			reach := d.neighbours(points, j, eps2)
			if len(reach) >= minSamples {
				seed = append(seed, reach...)
			}
		}
		next++
	}

	return labels
}

// neighbours returns the indices within eps of point i, excluding i.
func (d *DBSCAN) neighbours(points []orb.Point, i int, eps2 float64) []int {
	var out []int
	pi := points[i]
	for j, pj := range points {
		if j == i {
			continue
		}
		dx := pj[0] - pi[0]
		dy := pj[1] - pi[1]
		if dx*dx+dy*dy <= eps2 {
			out = append(out, j)
		}
	}
	return out
}

// CountDistinct returns the number of distinct labels, noise included.
func CountDistinct(labels []int) int {
	seen := make(map[int]struct{}, 4)
	for _, l := range labels {
		seen[l] = struct{}{}
	}
	return len(seen)
}
