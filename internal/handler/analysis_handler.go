package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/telcolab/coverage-backend-go/internal/models"
	"github.com/telcolab/coverage-backend-go/internal/service"
	"github.com/telcolab/coverage-backend-go/pkg/response"
)

// AnalysisHandler handles HTTP requests for analysis runs
type AnalysisHandler struct {
	service *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// RunHotspots classifies a carrier's cells as hot, cold or not significant
// POST /api/v1/analysis/hotspots
func (h *AnalysisHandler) RunHotspots(c *gin.Context) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	taskID, err := h.service.RunHotspotAnalysis(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	task, err := h.service.GetTask(c.Request.Context(), taskID)
	if err != nil || task == nil {
		response.Success(c, gin.H{"task_id": taskID})
		return
	}
	response.Success(c, task)
}

// RunDesiredAreas extracts ranked dense regions from a carrier's hotspots
// POST /api/v1/analysis/desired-areas
func (h *AnalysisHandler) RunDesiredAreas(c *gin.Context) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	taskID, err := h.service.RunDesiredAreas(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	task, err := h.service.GetTask(c.Request.Context(), taskID)
	if err != nil || task == nil {
		response.Success(c, gin.H{"task_id": taskID})
		return
	}
	response.Success(c, task)
}

// GetTask retrieves an analysis task by ID
// GET /api/v1/analysis/tasks/:id
func (h *AnalysisHandler) GetTask(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid task ID")
		return
	}

	task, err := h.service.GetTask(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	if task == nil {
		response.NotFound(c, "Task not found")
		return
	}

	response.Success(c, task)
}

// OptimalNeighbours sweeps neighbour counts and reports significance share
// GET /api/v1/analysis/optimal-neighbours
func (h *AnalysisHandler) OptimalNeighbours(c *gin.Context) {
	var req models.SweepRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "carrier query parameter is required")
		return
	}

	points, err := h.service.OptimalNeighbourSweep(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, gin.H{
		"carrier": req.Carrier,
		"sweep":   points,
	})
}
