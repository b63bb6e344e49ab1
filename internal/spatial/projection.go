package spatial

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/project"

	"github.com/telcolab/coverage-backend-go/internal/models"
)

// ErrInvalidGeometry means a cell has no usable polygon for centroid projection
var ErrInvalidGeometry = errors.New("cell has no usable geometry")

// Projector converts geographic cell polygons into planar centroids
// suitable for Euclidean distance clustering. The projection pair is
// configurable; the default is WGS84 <-> spherical Mercator.
type Projector struct {
	forward orb.Projection
	inverse orb.Projection
}

// NewProjector creates a projector with an explicit projection pair.
func NewProjector(forward, inverse orb.Projection) *Projector {
	return &Projector{forward: forward, inverse: inverse}
}

// NewMercatorProjector creates the default WGS84 -> spherical Mercator projector.
func NewMercatorProjector() *Projector {
	return NewProjector(project.WGS84.ToMercator, project.Mercator.ToWGS84)
}

// Centroids projects every cell polygon to the planar frame and returns
// the polygon centroids, index-aligned with the input set.
func (p *Projector) Centroids(cells models.CellSet) ([]orb.Point, error) {
	pts := make([]orb.Point, len(cells))
	for i, c := range cells {
		if len(c.Geometry) == 0 || len(c.Geometry[0]) < 3 {
			return nil, fmt.Errorf("%w: geohash %s", ErrInvalidGeometry, c.Geohash)
		}
		// project.Polygon mutates in place, so work on a clone
		projected := project.Polygon(c.Geometry.Clone(), p.forward)
		center, _ := planar.CentroidArea(projected)
		pts[i] = center
	}
	return pts, nil
}

// Forward projects a geographic point into the planar frame.
func (p *Projector) Forward(pt orb.Point) orb.Point {
	return p.forward(pt)
}

// Inverse projects a planar point back to geographic coordinates.
func (p *Projector) Inverse(pt orb.Point) orb.Point {
	return p.inverse(pt)
}
