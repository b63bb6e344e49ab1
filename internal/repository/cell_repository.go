package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/telcolab/coverage-backend-go/internal/models"
	"github.com/telcolab/coverage-backend-go/internal/spatial"
)

// CellRepository handles database operations for aggregated cells
type CellRepository struct {
	db *sql.DB
}

// NewCellRepository creates a new cell repository
func NewCellRepository(db *sql.DB) *CellRepository {
	return &CellRepository{db: db}
}

// ReplaceForCarrier rebuilds a carrier's cells from a fresh aggregation
func (r *CellRepository) ReplaceForCarrier(ctx context.Context, carrier string, cells models.CellSet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM cells WHERE carrier = ?", carrier); err != nil {
		return fmt.Errorf("failed to clear cells: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cells (geohash, carrier, district, rsrp, population, signal_strength)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, c := range cells {
		_, err := stmt.ExecContext(ctx,
			c.Geohash, c.Carrier, c.District, c.RSRP, c.Population, c.SignalStrength,
		)
		if err != nil {
			return fmt.Errorf("failed to insert cell: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetCells retrieves cells with filtering, geometry rebuilt from the geohash
func (r *CellRepository) GetCells(ctx context.Context, filter models.CellFilter) (models.CellSet, error) {
	query := `
		SELECT id, geohash, carrier, district, rsrp, population, signal_strength,
			p_value, z_value, spot, desired_area, rank_desired_area,
			created_at, updated_at
		FROM cells
	`

	var conditions []string
	var args []interface{}

	if filter.Carrier != "" {
		conditions = append(conditions, "carrier = ?")
		args = append(args, filter.Carrier)
	}
	if filter.District != "" {
		conditions = append(conditions, "district = ?")
		args = append(args, filter.District)
	}
	if filter.Spot != "" {
		conditions = append(conditions, "spot = ?")
		args = append(args, filter.Spot)
	}
	if filter.SignalStrength != "" {
		conditions = append(conditions, "signal_strength = ?")
		args = append(args, filter.SignalStrength)
	}
	if filter.MinPopulation > 0 {
		conditions = append(conditions, "population >= ?")
		args = append(args, filter.MinPopulation)
	}
	if filter.DesiredOnly {
		conditions = append(conditions, "desired_area = 1")
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY geohash"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cells: %w", err)
	}
	defer rows.Close()

	var cells models.CellSet
	for rows.Next() {
		var c models.Cell
		var desired int
		if err := rows.Scan(
			&c.ID, &c.Geohash, &c.Carrier, &c.District, &c.RSRP, &c.Population, &c.SignalStrength,
			&c.PValue, &c.ZValue, &c.Spot, &desired, &c.RankDesiredArea,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cell: %w", err)
		}
		c.DesiredArea = desired != 0
		c.Geometry = spatial.GeohashPolygon(c.Geohash)
		cells = append(cells, c)
	}
	return cells, rows.Err()
}

// UpdateSpots stores hotspot test results for a carrier's cells
func (r *CellRepository) UpdateSpots(ctx context.Context, carrier string, cells models.CellSet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		UPDATE cells
		SET p_value = ?, z_value = ?, spot = ?,
			desired_area = 0, rank_desired_area = 0,
			updated_at = CURRENT_TIMESTAMP
		WHERE geohash = ? AND carrier = ?
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, c := range cells {
		if _, err := stmt.ExecContext(ctx, c.PValue, c.ZValue, c.Spot, c.Geohash, carrier); err != nil {
			return fmt.Errorf("failed to update spot for %s: %w", c.Geohash, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateDesiredAreas stores peeling results for a carrier's cells
func (r *CellRepository) UpdateDesiredAreas(ctx context.Context, carrier string, cells models.CellSet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		UPDATE cells
		SET desired_area = ?, rank_desired_area = ?, updated_at = CURRENT_TIMESTAMP
		WHERE geohash = ? AND carrier = ?
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, c := range cells {
		desired := 0
		if c.DesiredArea {
			desired = 1
		}
		if _, err := stmt.ExecContext(ctx, desired, c.RankDesiredArea, c.Geohash, carrier); err != nil {
			return fmt.Errorf("failed to update desired area for %s: %w", c.Geohash, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
