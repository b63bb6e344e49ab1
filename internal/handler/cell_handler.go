package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/telcolab/coverage-backend-go/internal/models"
	"github.com/telcolab/coverage-backend-go/internal/repository"
	"github.com/telcolab/coverage-backend-go/internal/service"
	"github.com/telcolab/coverage-backend-go/pkg/response"
)

// CellHandler handles HTTP requests for aggregated cells
type CellHandler struct {
	cells  *repository.CellRepository
	ingest *service.IngestService
}

// NewCellHandler creates a new cell handler
func NewCellHandler(cells *repository.CellRepository, ingest *service.IngestService) *CellHandler {
	return &CellHandler{cells: cells, ingest: ingest}
}

// GetCells lists cells matching the filter
// GET /api/v1/cells
func (h *CellHandler) GetCells(c *gin.Context) {
	var filter models.CellFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid filter parameters")
		return
	}

	cells, err := h.cells.GetCells(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, gin.H{
		"cells": cells,
		"count": len(cells),
	})
}

// BuildCells aggregates a carrier's measurements into cells
// POST /api/v1/cells/build
func (h *CellHandler) BuildCells(c *gin.Context) {
	carrier := c.Query("carrier")
	if carrier == "" {
		response.Error(c, http.StatusBadRequest, "carrier query parameter is required")
		return
	}

	count, err := h.ingest.BuildCells(c.Request.Context(), carrier)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, gin.H{
		"carrier": carrier,
		"cells":   count,
	})
}
