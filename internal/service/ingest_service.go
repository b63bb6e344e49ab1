package service

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/telcolab/coverage-backend-go/internal/models"
	"github.com/telcolab/coverage-backend-go/internal/repository"
	"github.com/telcolab/coverage-backend-go/internal/spatial"
	"github.com/telcolab/coverage-backend-go/internal/stats"
)

// IngestService handles cleaning and storage of raw measurements and
// their aggregation into per-carrier cells.
type IngestService struct {
	measurements *repository.MeasurementRepository
	cells        *repository.CellRepository
	precision    int
}

// NewIngestService creates a new ingest service
func NewIngestService(measurements *repository.MeasurementRepository, cells *repository.CellRepository, precision int) *IngestService {
	return &IngestService{
		measurements: measurements,
		cells:        cells,
		precision:    precision,
	}
}

// AddMeasurements cleans and stores a batch, returning how many survived
func (s *IngestService) AddMeasurements(ctx context.Context, ms []models.Measurement) (int, error) {
	cleaned := CleanMeasurements(ms, s.precision)
	if err := s.measurements.InsertBatch(ctx, cleaned); err != nil {
		return 0, err
	}
	log.Printf("[IngestService] Stored %d of %d measurements", len(cleaned), len(ms))
	return len(cleaned), nil
}

// CountMeasurements reports the stored sample count for a carrier
func (s *IngestService) CountMeasurements(ctx context.Context, carrier string) (int, error) {
	return s.measurements.Count(ctx, carrier)
}

// CleanMeasurements drops incomplete samples, rounds population counts
// and removes unpopulated locations. The geohash is derived from the
// coordinates when absent, and district labels are title-cased.
func CleanMeasurements(ms []models.Measurement, precision int) []models.Measurement {
	titler := cases.Title(language.Und)

	var out []models.Measurement
	for _, m := range ms {
		// RSRP of 0 dBm marks a missing sample
		if m.Carrier == "" || m.District == "" || m.RSRP == 0 {
			continue
		}
		m.Population = stats.Round(m.Population)
		if m.Population <= 0 {
			continue
		}
		if m.Geohash == "" {
			if m.Latitude == 0 && m.Longitude == 0 {
				continue
			}
			m.Geohash = spatial.EncodeGeohash(m.Latitude, m.Longitude, precision)
		}
		m.District = titler.String(m.District)
		out = append(out, m)
	}
	return out
}

// BuildCells aggregates a carrier's measurements into cells: mean RSRP
// and population per (geohash, district), polygon from the geohash
// bounds, and the derived signal strength category. Existing cells for
// the carrier are replaced.
func (s *IngestService) BuildCells(ctx context.Context, carrier string) (int, error) {
	if carrier == "" {
		return 0, fmt.Errorf("carrier is required")
	}

	rows, err := s.measurements.AggregateByCarrier(ctx, carrier)
	if err != nil {
		return 0, err
	}

	cells := make(models.CellSet, 0, len(rows))
	for _, a := range rows {
		cells = append(cells, models.Cell{
			Geohash:        a.Geohash,
			Carrier:        carrier,
			District:       a.District,
			Geometry:       spatial.GeohashPolygon(a.Geohash),
			RSRP:           a.RSRP,
			Population:     a.Population,
			SignalStrength: models.SignalStrengthOf(a.RSRP),
		})
	}

	if err := s.cells.ReplaceForCarrier(ctx, carrier, cells); err != nil {
		return 0, err
	}
	log.Printf("[IngestService] Built %d cells for carrier %s", len(cells), carrier)
	return len(cells), nil
}
