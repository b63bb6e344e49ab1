package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/telcolab/coverage-backend-go/internal/models"
	"github.com/telcolab/coverage-backend-go/internal/service"
	"github.com/telcolab/coverage-backend-go/pkg/response"
)

// VizHandler handles HTTP requests for map layers and charts
type VizHandler struct {
	service *service.VizService
}

// NewVizHandler creates a new visualization handler
func NewVizHandler(service *service.VizService) *VizHandler {
	return &VizHandler{service: service}
}

func bindFilter(c *gin.Context) (models.CellFilter, bool) {
	var filter models.CellFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid filter parameters")
		return filter, false
	}
	return filter, true
}

// CellChoropleth serves the per-cell GeoJSON layer
// GET /api/v1/viz/choropleth
func (h *VizHandler) CellChoropleth(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	data, err := h.service.CellChoropleth(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.Data(http.StatusOK, "application/geo+json", data)
}

// DistrictChoropleth serves the per-district GeoJSON layer
// GET /api/v1/viz/districts
func (h *VizHandler) DistrictChoropleth(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	data, err := h.service.DistrictChoropleth(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.Data(http.StatusOK, "application/geo+json", data)
}

// SignalStrengthBar serves the signal-strength bar chart as PNG
// GET /api/v1/viz/signal-bar
func (h *VizHandler) SignalStrengthBar(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	png, err := h.service.SignalStrengthBar(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// RSRPBox serves the RSRP-by-spot box plot as PNG
// GET /api/v1/viz/rsrp-box
func (h *VizHandler) RSRPBox(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	png, err := h.service.RSRPBox(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
