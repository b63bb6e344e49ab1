// Package viz assembles the visualization outputs: GeoJSON choropleth
// layers for map rendering and PNG charts for distribution summaries.
package viz

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/telcolab/coverage-backend-go/internal/models"
	"github.com/telcolab/coverage-backend-go/internal/stats"
)

// CellCollection builds a choropleth-ready feature collection with one
// polygon feature per cell, keyed by geohash.
func CellCollection(cells models.CellSet) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, c := range cells {
		f := geojson.NewFeature(c.Geometry)
		f.ID = c.Geohash
		f.Properties = geojson.Properties{
			"geohash":           c.Geohash,
			"carrier":           c.Carrier,
			"district":          c.District,
			"rsrp":              c.RSRP,
			"population":        c.Population,
			"signal_strength":   c.SignalStrength,
			"spot":              c.Spot,
			"p_value":           c.PValue,
			"z_value":           c.ZValue,
			"desired_area":      c.DesiredArea,
			"rank_desired_area": c.RankDesiredArea,
		}
		fc.Append(f)
	}
	return fc
}

// DistrictCollection merges cells per district into a multipolygon
// feature carrying the district's mean RSRP.
func DistrictCollection(cells models.CellSet) *geojson.FeatureCollection {
	order := make([]string, 0)
	polygons := make(map[string]orb.MultiPolygon)
	values := make(map[string][]float64)

	for _, c := range cells {
		if _, ok := polygons[c.District]; !ok {
			order = append(order, c.District)
		}
		polygons[c.District] = append(polygons[c.District], c.Geometry)
		values[c.District] = append(values[c.District], c.RSRP)
	}

	fc := geojson.NewFeatureCollection()
	for _, district := range order {
		f := geojson.NewFeature(polygons[district])
		f.ID = district
		f.Properties = geojson.Properties{
			"district": district,
			"rsrp":     stats.Mean(values[district]),
			"cells":    len(values[district]),
		}
		fc.Append(f)
	}
	return fc
}
