package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/paulmach/orb"

	"github.com/telcolab/coverage-backend-go/internal/analysis/area"
	"github.com/telcolab/coverage-backend-go/internal/analysis/cluster"
	"github.com/telcolab/coverage-backend-go/internal/analysis/hotspot"
	"github.com/telcolab/coverage-backend-go/internal/config"
	"github.com/telcolab/coverage-backend-go/internal/models"
	"github.com/telcolab/coverage-backend-go/internal/repository"
	"github.com/telcolab/coverage-backend-go/internal/spatial"
)

// AnalysisService orchestrates hotspot classification and desired-area
// peeling over a carrier's cells, tracking each run as an analysis task.
type AnalysisService struct {
	cells     *repository.CellRepository
	tasks     *repository.AnalysisTaskRepository
	cfg       *config.Config
	projector *spatial.Projector
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(cells *repository.CellRepository, tasks *repository.AnalysisTaskRepository, cfg *config.Config) *AnalysisService {
	return &AnalysisService{
		cells:     cells,
		tasks:     tasks,
		cfg:       cfg,
		projector: spatial.NewMercatorProjector(),
	}
}

// GetTask retrieves an analysis task by id
func (s *AnalysisService) GetTask(ctx context.Context, id int64) (*models.AnalysisTask, error) {
	return s.tasks.Get(ctx, id)
}

// RunHotspotAnalysis classifies every cell of the carrier as hotspot,
// coldspot or not significant and persists p/z values and labels.
func (s *AnalysisService) RunHotspotAnalysis(ctx context.Context, req models.AnalysisRequest) (int64, error) {
	taskID, err := s.tasks.Create(ctx, models.TaskTypeHotspot, req.Carrier)
	if err != nil {
		return 0, err
	}
	if err := s.tasks.MarkRunning(ctx, taskID); err != nil {
		return taskID, err
	}

	summary, err := s.runHotspot(ctx, req)
	if err != nil {
		s.tasks.MarkFailed(ctx, taskID, err.Error())
		return taskID, err
	}

	summaryJSON, _ := json.Marshal(summary)
	if err := s.tasks.MarkCompleted(ctx, taskID, string(summaryJSON)); err != nil {
		return taskID, err
	}
	return taskID, nil
}

func (s *AnalysisService) runHotspot(ctx context.Context, req models.AnalysisRequest) (map[string]interface{}, error) {
	cells, err := s.cells.GetCells(ctx, models.CellFilter{Carrier: req.Carrier})
	if err != nil {
		return nil, err
	}
	if len(cells) < 2 {
		return nil, fmt.Errorf("carrier %s has %d cells, need at least 2", req.Carrier, len(cells))
	}

	k := req.Neighbours
	if k <= 0 {
		k = s.cfg.Neighbours
	}
	if k >= len(cells) {
		k = len(cells) - 1
	}

	perms := req.Permutations
	if perms <= 0 {
		perms = s.cfg.Permutations
	}

	log.Printf("[AnalysisService] Hotspot test: carrier=%s cells=%d k=%d permutations=%d",
		req.Carrier, len(cells), k, perms)

	points := cellCenters(cells)
	w, err := hotspot.KNNWeights(points, k)
	if err != nil {
		return nil, err
	}

	tester := hotspot.NewGLocal(perms, s.cfg.Seed)
	res, err := tester.Test(cells.RSRPValues(), w)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for i := range cells {
		cells[i].PValue = res.PSim[i]
		cells[i].ZValue = res.ZSim[i]
		cells[i].Spot = hotspot.Classify(res.PSim[i], res.ZSim[i], s.cfg.Alpha)
		counts[cells[i].Spot]++
	}

	if err := s.cells.UpdateSpots(ctx, req.Carrier, cells); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"cells":           len(cells),
		"neighbours":      k,
		"hotspots":        counts[models.SpotHotspot],
		"coldspots":       counts[models.SpotColdspot],
		"not_significant": counts[models.SpotNotSignificant],
	}, nil
}

// RunDesiredAreas peels desired areas out of the carrier's hotspot cells
// and persists the desired_area flags and ranks. Bounded mode claims at
// most AreaCount regions; exhaustive mode ranks every claimable cell.
func (s *AnalysisService) RunDesiredAreas(ctx context.Context, req models.AnalysisRequest) (int64, error) {
	taskID, err := s.tasks.Create(ctx, models.TaskTypeDesiredAreas, req.Carrier)
	if err != nil {
		return 0, err
	}
	if err := s.tasks.MarkRunning(ctx, taskID); err != nil {
		return taskID, err
	}

	summary, err := s.runDesiredAreas(ctx, req)
	if err != nil {
		s.tasks.MarkFailed(ctx, taskID, err.Error())
		return taskID, err
	}

	summaryJSON, _ := json.Marshal(summary)
	if err := s.tasks.MarkCompleted(ctx, taskID, string(summaryJSON)); err != nil {
		return taskID, err
	}
	return taskID, nil
}

func (s *AnalysisService) runDesiredAreas(ctx context.Context, req models.AnalysisRequest) (map[string]interface{}, error) {
	cells, err := s.cells.GetCells(ctx, models.CellFilter{Carrier: req.Carrier})
	if err != nil {
		return nil, err
	}

	classified := false
	for _, c := range cells {
		if c.Spot != "" {
			classified = true
			break
		}
	}
	if !classified {
		return nil, fmt.Errorf("carrier %s has no spot classification, run the hotspot analysis first", req.Carrier)
	}

	eps := req.RangeOfArea
	if eps <= 0 {
		eps = s.cfg.RangeOfArea
	}

	finder := area.NewFinder(cluster.NewDBSCAN(), s.projector)

	var out models.CellSet
	if req.Exhaustive || req.AreaCount <= 0 {
		log.Printf("[AnalysisService] Desired areas (exhaustive): carrier=%s hotspots=%d eps=%v",
			req.Carrier, len(cells.Hotspots()), eps)
		out, err = finder.FindAllAreas(cells, eps)
	} else {
		log.Printf("[AnalysisService] Desired areas (bounded %d): carrier=%s hotspots=%d eps=%v",
			req.AreaCount, req.Carrier, len(cells.Hotspots()), eps)
		out, err = finder.FindBoundedAreas(cells, req.AreaCount, eps)
	}
	if err != nil {
		return nil, err
	}

	if err := s.cells.UpdateDesiredAreas(ctx, req.Carrier, out); err != nil {
		return nil, err
	}

	claimed := 0
	maxRank := 0
	for _, c := range out {
		if c.DesiredArea {
			claimed++
		}
		if c.RankDesiredArea > maxRank {
			maxRank = c.RankDesiredArea
		}
	}
	return map[string]interface{}{
		"hotspots": len(out),
		"claimed":  claimed,
		"areas":    maxRank,
		"eps":      eps,
	}, nil
}

// OptimalNeighbourSweep reports, per neighbour count, the share of cells
// whose p-value clears the significance level.
func (s *AnalysisService) OptimalNeighbourSweep(ctx context.Context, req models.SweepRequest) ([]hotspot.SweepPoint, error) {
	cells, err := s.cells.GetCells(ctx, models.CellFilter{Carrier: req.Carrier})
	if err != nil {
		return nil, err
	}
	if len(cells) < 2 {
		return nil, fmt.Errorf("carrier %s has %d cells, need at least 2", req.Carrier, len(cells))
	}

	from, to, step := req.From, req.To, req.Step
	if from <= 0 {
		from = 100
	}
	if to <= 0 {
		to = 600
	}
	if step <= 0 {
		step = 20
	}

	tester := hotspot.NewGLocal(s.cfg.Permutations, s.cfg.Seed)
	return tester.SweepOptimalNeighbours(cellCenters(cells), cells.RSRPValues(), from, to, step, s.cfg.Alpha)
}

// cellCenters returns the geographic center of each cell (lon/lat order)
func cellCenters(cells models.CellSet) []orb.Point {
	points := make([]orb.Point, len(cells))
	for i, c := range cells {
		lat, lon := spatial.DecodeGeohash(c.Geohash)
		points[i] = orb.Point{lon, lat}
	}
	return points
}
