package models

import (
	"time"

	"github.com/paulmach/orb"
)

// Signal strength categories derived from mean RSRP
const (
	SignalPoor      = "Poor"      // rsrp < -120 dBm
	SignalFair      = "Fair"      // -120 <= rsrp < -106
	SignalGood      = "Good"      // -106 <= rsrp < -90
	SignalExcellent = "Excellent" // rsrp >= -90
)

// Spot classification labels from the local hotspot test
const (
	SpotHotspot        = "hotspot"
	SpotColdspot       = "coldspot"
	SpotNotSignificant = "not significant"
)

// Cell is one geohash-aggregated coverage record for a single carrier.
// Analysis fields (p/z values, spot, desired area, rank) are derived and
// fully recomputed on each analysis pass.
type Cell struct {
	ID int64 `json:"id" db:"id"`

	// Identity
	Geohash  string `json:"geohash" db:"geohash"`
	Carrier  string `json:"carrier" db:"carrier"`
	District string `json:"district" db:"district"`

	// Geometry: polygon over the geohash bounds, geographic CRS (lon/lat)
	Geometry orb.Polygon `json:"-" db:"-"`

	// Aggregates
	RSRP           float64 `json:"rsrp" db:"rsrp"`             // mean RSRP in dBm
	Population     float64 `json:"population" db:"population"` // mean population
	SignalStrength string  `json:"signal_strength" db:"signal_strength"`

	// Hotspot test results
	PValue float64 `json:"p_value,omitempty" db:"p_value"`
	ZValue float64 `json:"z_value,omitempty" db:"z_value"`
	Spot   string  `json:"spot,omitempty" db:"spot"`

	// Desired-area results
	DesiredArea     bool `json:"desired_area" db:"desired_area"`
	RankDesiredArea int  `json:"rank_desired_area" db:"rank_desired_area"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// SignalStrengthOf maps a mean RSRP value to its category.
func SignalStrengthOf(rsrp float64) string {
	switch {
	case rsrp < -120:
		return SignalPoor
	case rsrp < -106:
		return SignalFair
	case rsrp < -90:
		return SignalGood
	default:
		return SignalExcellent
	}
}

// CellSet is an ordered collection of cells sharing one coordinate
// reference frame. Geohash identity is preserved across transformations.
type CellSet []Cell

// Clone returns a shallow-independent copy of the set so derived fields
// can be rewritten without aliasing the input.
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	copy(out, s)
	return out
}

// Hotspots returns the subset classified as hotspot, in input order.
func (s CellSet) Hotspots() CellSet {
	var out CellSet
	for _, c := range s {
		if c.Spot == SpotHotspot {
			out = append(out, c)
		}
	}
	return out
}

// Geohashes returns the geohash keys in set order.
func (s CellSet) Geohashes() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = c.Geohash
	}
	return out
}

// RSRPValues returns the mean RSRP column in set order.
func (s CellSet) RSRPValues() []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.RSRP
	}
	return out
}
