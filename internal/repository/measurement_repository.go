package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/telcolab/coverage-backend-go/internal/models"
)

// MeasurementRepository handles database operations for raw measurements
type MeasurementRepository struct {
	db *sql.DB
}

// NewMeasurementRepository creates a new measurement repository
func NewMeasurementRepository(db *sql.DB) *MeasurementRepository {
	return &MeasurementRepository{db: db}
}

// InsertBatch stores a batch of cleaned measurements in one transaction
func (r *MeasurementRepository) InsertBatch(ctx context.Context, ms []models.Measurement) error {
	if len(ms) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO measurements (geohash, district, carrier, latitude, longitude, rsrp, population)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, m := range ms {
		_, err := stmt.ExecContext(ctx,
			m.Geohash, m.District, m.Carrier, m.Latitude, m.Longitude, m.RSRP, m.Population,
		)
		if err != nil {
			return fmt.Errorf("failed to insert measurement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// AggregatedRow is one per-(geohash, district) aggregate for a carrier
type AggregatedRow struct {
	Geohash    string
	District   string
	RSRP       float64
	Population float64
	Samples    int
}

// AggregateByCarrier groups a carrier's measurements by geohash and
// district and returns mean RSRP and population, ordered by geohash
func (r *MeasurementRepository) AggregateByCarrier(ctx context.Context, carrier string) ([]AggregatedRow, error) {
	query := `
		SELECT geohash, district, AVG(rsrp), AVG(population), COUNT(*)
		FROM measurements
		WHERE carrier = ?
		GROUP BY geohash, district
		ORDER BY geohash
	`

	rows, err := r.db.QueryContext(ctx, query, carrier)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate measurements: %w", err)
	}
	defer rows.Close()

	var out []AggregatedRow
	for rows.Next() {
		var a AggregatedRow
		if err := rows.Scan(&a.Geohash, &a.District, &a.RSRP, &a.Population, &a.Samples); err != nil {
			return nil, fmt.Errorf("failed to scan aggregate row: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Count returns the number of stored measurements for a carrier
func (r *MeasurementRepository) Count(ctx context.Context, carrier string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM measurements WHERE carrier = ?", carrier).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count measurements: %w", err)
	}
	return n, nil
}
