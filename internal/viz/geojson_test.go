package viz

import (
	"encoding/json"
	"testing"

	"github.com/telcolab/coverage-backend-go/internal/models"
	"github.com/telcolab/coverage-backend-go/internal/spatial"
)

func sampleCells() models.CellSet {
	return models.CellSet{
		{
			Geohash:         "qqguwnd",
			Carrier:         "telkomsel",
			District:        "Setiabudi",
			Geometry:        spatial.GeohashPolygon("qqguwnd"),
			RSRP:            -95,
			SignalStrength:  models.SignalGood,
			Spot:            models.SpotHotspot,
			DesiredArea:     true,
			RankDesiredArea: 1,
		},
		{
			Geohash:        "qqguwne",
			Carrier:        "telkomsel",
			District:       "Setiabudi",
			Geometry:       spatial.GeohashPolygon("qqguwne"),
			RSRP:           -111,
			SignalStrength: models.SignalFair,
			Spot:           models.SpotNotSignificant,
		},
		{
			Geohash:        "qqguwnf",
			Carrier:        "telkomsel",
			District:       "Tebet",
			Geometry:       spatial.GeohashPolygon("qqguwnf"),
			RSRP:           -125,
			SignalStrength: models.SignalPoor,
			Spot:           models.SpotColdspot,
		},
	}
}

func TestCellCollection(t *testing.T) {
	fc := CellCollection(sampleCells())

	if len(fc.Features) != 3 {
		t.Fatalf("Expected 3 features, got %d", len(fc.Features))
	}

	f := fc.Features[0]
	if f.ID != "qqguwnd" {
		t.Errorf("Expected feature ID qqguwnd, got %v", f.ID)
	}
	if f.Properties["spot"] != models.SpotHotspot {
		t.Errorf("Expected hotspot property, got %v", f.Properties["spot"])
	}
	if f.Properties["rank_desired_area"] != 1 {
		t.Errorf("Expected rank 1, got %v", f.Properties["rank_desired_area"])
	}

	data, err := json.Marshal(fc)
	if err != nil {
		t.Fatalf("Failed to marshal collection: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal collection: %v", err)
	}
	if decoded["type"] != "FeatureCollection" {
		t.Errorf("Expected FeatureCollection, got %v", decoded["type"])
	}
}

func TestDistrictCollection(t *testing.T) {
	fc := DistrictCollection(sampleCells())

	if len(fc.Features) != 2 {
		t.Fatalf("Expected 2 district features, got %d", len(fc.Features))
	}

	first := fc.Features[0]
	if first.ID != "Setiabudi" {
		t.Errorf("Expected first district Setiabudi, got %v", first.ID)
	}
	if first.Properties["cells"] != 2 {
		t.Errorf("Expected 2 cells in Setiabudi, got %v", first.Properties["cells"])
	}
	if first.Properties["rsrp"] != -103.0 {
		t.Errorf("Expected mean RSRP -103, got %v", first.Properties["rsrp"])
	}

	second := fc.Features[1]
	if second.ID != "Tebet" {
		t.Errorf("Expected second district Tebet, got %v", second.ID)
	}
	if second.Properties["rsrp"] != -125.0 {
		t.Errorf("Expected mean RSRP -125, got %v", second.Properties["rsrp"])
	}
}
