package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/telcolab/coverage-backend-go/internal/models"
	"github.com/telcolab/coverage-backend-go/internal/repository"
	"github.com/telcolab/coverage-backend-go/internal/viz"
)

// VizService renders map layers and charts from stored cells.
type VizService struct {
	cells *repository.CellRepository
}

// NewVizService creates a new visualization service
func NewVizService(cells *repository.CellRepository) *VizService {
	return &VizService{cells: cells}
}

// CellChoropleth returns a GeoJSON feature collection with one polygon
// per cell matching the filter.
func (s *VizService) CellChoropleth(ctx context.Context, filter models.CellFilter) ([]byte, error) {
	cells, err := s.cells.GetCells(ctx, filter)
	if err != nil {
		return nil, err
	}
	return json.Marshal(viz.CellCollection(cells))
}

// DistrictChoropleth returns a GeoJSON feature collection with one
// multipolygon per district, carrying the district's mean RSRP.
func (s *VizService) DistrictChoropleth(ctx context.Context, filter models.CellFilter) ([]byte, error) {
	cells, err := s.cells.GetCells(ctx, filter)
	if err != nil {
		return nil, err
	}
	return json.Marshal(viz.DistrictCollection(cells))
}

// SignalStrengthBar renders the per-category cell count chart as PNG
func (s *VizService) SignalStrengthBar(ctx context.Context, filter models.CellFilter) ([]byte, error) {
	cells, err := s.cells.GetCells(ctx, filter)
	if err != nil {
		return nil, err
	}
	title := "Signal strength distribution"
	if filter.Carrier != "" {
		title = fmt.Sprintf("Signal strength distribution (%s)", filter.Carrier)
	}
	return viz.SignalStrengthBar(cells, title)
}

// RSRPBox renders the RSRP-by-spot box plot as PNG
func (s *VizService) RSRPBox(ctx context.Context, filter models.CellFilter) ([]byte, error) {
	cells, err := s.cells.GetCells(ctx, filter)
	if err != nil {
		return nil, err
	}
	title := "RSRP by spot classification"
	if filter.Carrier != "" {
		title = fmt.Sprintf("RSRP by spot classification (%s)", filter.Carrier)
	}
	return viz.RSRPBox(cells, title)
}
