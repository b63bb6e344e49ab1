package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/telcolab/coverage-backend-go/internal/models"
	"github.com/telcolab/coverage-backend-go/internal/service"
	"github.com/telcolab/coverage-backend-go/pkg/response"
)

// MeasurementHandler handles HTTP requests for raw measurements
type MeasurementHandler struct {
	service *service.IngestService
}

// NewMeasurementHandler creates a new measurement handler
func NewMeasurementHandler(service *service.IngestService) *MeasurementHandler {
	return &MeasurementHandler{service: service}
}

// AddMeasurements ingests a batch of raw measurements
// POST /api/v1/measurements
func (h *MeasurementHandler) AddMeasurements(c *gin.Context) {
	var ms []models.Measurement
	if err := c.ShouldBindJSON(&ms); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(ms) == 0 {
		response.Error(c, http.StatusBadRequest, "Empty measurement batch")
		return
	}

	stored, err := h.service.AddMeasurements(c.Request.Context(), ms)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, gin.H{
		"received": len(ms),
		"stored":   stored,
	})
}

// Count reports how many measurements are stored for a carrier
// GET /api/v1/measurements/count
func (h *MeasurementHandler) Count(c *gin.Context) {
	carrier := c.Query("carrier")
	if carrier == "" {
		response.Error(c, http.StatusBadRequest, "carrier query parameter is required")
		return
	}

	count, err := h.service.CountMeasurements(c.Request.Context(), carrier)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, gin.H{
		"carrier":      carrier,
		"measurements": count,
	})
}
