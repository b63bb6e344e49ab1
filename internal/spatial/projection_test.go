package spatial

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/telcolab/coverage-backend-go/internal/models"
)

func TestMercatorRoundTrip(t *testing.T) {
	p := NewMercatorProjector()

	geo := orb.Point{106.8456, -6.2088}
	back := p.Inverse(p.Forward(geo))

	if math.Abs(back[0]-geo[0]) > 1e-6 || math.Abs(back[1]-geo[1]) > 1e-6 {
		t.Errorf("Round trip drifted: %v -> %v", geo, back)
	}
}

func TestCentroidsOfSquareCell(t *testing.T) {
	p := NewMercatorProjector()

	cell := models.Cell{
		Geohash: "test",
		Geometry: orb.Polygon{orb.Ring{
			{0, 0}, {0.001, 0}, {0.001, 0.001}, {0, 0.001}, {0, 0},
		}},
	}

	pts, err := p.Centroids(models.CellSet{cell})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(pts) != 1 {
		t.Fatalf("Expected 1 centroid, got %d", len(pts))
	}

	want := p.Forward(orb.Point{0.0005, 0.0005})
	if math.Abs(pts[0][0]-want[0]) > 0.5 || math.Abs(pts[0][1]-want[1]) > 0.5 {
		t.Errorf("Expected centroid near %v, got %v", want, pts[0])
	}
}

func TestNewProjectorCustomPair(t *testing.T) {
	// a scaled planar frame stands in for a real projection
	forward := orb.Projection(func(p orb.Point) orb.Point {
		return orb.Point{p[0] * 10, p[1] * 10}
	})
	inverse := orb.Projection(func(p orb.Point) orb.Point {
		return orb.Point{p[0] / 10, p[1] / 10}
	})
	p := NewProjector(forward, inverse)

	if got := p.Forward(orb.Point{2, 3}); got != (orb.Point{20, 30}) {
		t.Errorf("Expected (20, 30), got %v", got)
	}
	if got := p.Inverse(orb.Point{20, 30}); got != (orb.Point{2, 3}) {
		t.Errorf("Expected (2, 3), got %v", got)
	}

	cell := models.Cell{
		Geohash: "test",
		Geometry: orb.Polygon{orb.Ring{
			{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0},
		}},
	}
	pts, err := p.Centroids(models.CellSet{cell})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(pts[0][0]-5) > 1e-9 || math.Abs(pts[0][1]-5) > 1e-9 {
		t.Errorf("Expected centroid (5, 5) in the scaled frame, got %v", pts[0])
	}
}

func TestCentroidsDoesNotMutateGeometry(t *testing.T) {
	p := NewMercatorProjector()

	ring := orb.Ring{{0, 0}, {0.001, 0}, {0.001, 0.001}, {0, 0.001}, {0, 0}}
	cell := models.Cell{Geohash: "test", Geometry: orb.Polygon{ring.Clone()}}

	if _, err := p.Centroids(models.CellSet{cell}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i := range ring {
		if cell.Geometry[0][i] != ring[i] {
			t.Fatalf("Geometry point %d was mutated: %v -> %v", i, ring[i], cell.Geometry[0][i])
		}
	}
}

func TestCentroidsInvalidGeometry(t *testing.T) {
	p := NewMercatorProjector()

	_, err := p.Centroids(models.CellSet{{Geohash: "broken"}})
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Expected ErrInvalidGeometry, got %v", err)
	}
}
