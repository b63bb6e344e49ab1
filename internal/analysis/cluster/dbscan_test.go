package cluster

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestClusterTwoBlobsAndNoise(t *testing.T) {
	points := []orb.Point{
		{0, 0}, {1, 0}, {0, 1}, // blob A
		{10, 10}, {11, 10}, {10, 11}, // blob B
		{100, 100}, // isolated
	}

	d := NewDBSCAN()
	labels := d.Cluster(points, 1.5, 2)

	if len(labels) != len(points) {
		t.Fatalf("Expected %d labels, got %d", len(points), len(labels))
	}
	if labels[0] == Noise || labels[3] == Noise {
		t.Error("Expected blob points to be clustered")
	}
	if labels[0] != labels[1] || labels[1] != labels[2] {
		t.Errorf("Expected blob A in one cluster, got %v", labels[:3])
	}
	if labels[3] != labels[4] || labels[4] != labels[5] {
		t.Errorf("Expected blob B in one cluster, got %v", labels[3:6])
	}
	if labels[0] == labels[3] {
		t.Error("Expected blobs A and B in different clusters")
	}
	if labels[6] != Noise {
		t.Errorf("Expected isolated point to be noise, got %d", labels[6])
	}
	if got := CountDistinct(labels); got != 3 {
		t.Errorf("Expected 3 distinct labels, got %d", got)
	}
}

func TestClusterIsolatedPointIsNoise(t *testing.T) {
	// neighbour counts exclude the point itself, so a lone point
	// stays noise even at minSamples 1
	labels := NewDBSCAN().Cluster([]orb.Point{{5, 5}}, 10, 1)
	if labels[0] != Noise {
		t.Errorf("Expected noise for a single point, got %d", labels[0])
	}
}

func TestClusterBorderPoints(t *testing.T) {
	// chain: the endpoints have one neighbour each and are only
	// reachable through the core points in the middle
	points := []orb.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}

	labels := NewDBSCAN().Cluster(points, 1.1, 2)

	for i, l := range labels {
		if l != labels[0] {
			t.Fatalf("Expected one cluster, point %d got %d vs %d", i, l, labels[0])
		}
	}
	if labels[0] == Noise {
		t.Error("Expected the chain to form a cluster, got all noise")
	}
}

func TestClusterMinSamplesTooHigh(t *testing.T) {
	points := []orb.Point{{0, 0}, {1, 0}, {0, 1}}

	labels := NewDBSCAN().Cluster(points, 1.5, 10)

	for i, l := range labels {
		if l != Noise {
			t.Errorf("Expected point %d to be noise, got %d", i, l)
		}
	}
}

func TestClusterEmptyInput(t *testing.T) {
	labels := NewDBSCAN().Cluster(nil, 1, 1)
	if len(labels) != 0 {
		t.Errorf("Expected no labels, got %d", len(labels))
	}
}

func TestClusterDeterministic(t *testing.T) {
	points := []orb.Point{
		{0, 0}, {1, 0}, {0, 1}, {5, 5}, {6, 5}, {5, 6}, {50, 50},
	}

	d := NewDBSCAN()
	first := d.Cluster(points, 1.5, 2)
	second := d.Cluster(points, 1.5, 2)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Labels differ at %d: %d vs %d", i, first[i], second[i])
		}
	}
}

func TestCountDistinct(t *testing.T) {
	cases := []struct {
		labels []int
		want   int
	}{
		{nil, 0},
		{[]int{-1, -1, -1}, 1},
		{[]int{0, 0, -1}, 2},
		{[]int{0, 1, -1, 1}, 3},
	}
	for _, c := range cases {
		if got := CountDistinct(c.labels); got != c.want {
			t.Errorf("CountDistinct(%v) = %d, want %d", c.labels, got, c.want)
		}
	}
}
