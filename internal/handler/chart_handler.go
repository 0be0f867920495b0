package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yakyulab/spraychart-backend-go/internal/models"
	"github.com/yakyulab/spraychart-backend-go/internal/service"
	"github.com/yakyulab/spraychart-backend-go/pkg/response"
)

// ChartHandler handles HTTP requests for the hit chart
type ChartHandler struct {
	service *service.ChartService
}

// NewChartHandler creates a new chart handler
func NewChartHandler(service *service.ChartService) *ChartHandler {
	return &ChartHandler{service: service}
}

// bindFilter reads and checks the chart filter shared by the point and
// summary routes. A false return means the response has been written.
func (h *ChartHandler) bindFilter(c *gin.Context) (models.ChartFilter, bool) {
	var filter models.ChartFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return filter, false
	}

	var err error
	if filter.Balls, err = countParam(c, "balls"); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return filter, false
	}
	if filter.Strikes, err = countParam(c, "strikes"); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return filter, false
	}

	filter.Normalize()
	if err := filter.Validate(); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid pitch filter", err)
		return filter, false
	}
	return filter, true
}

// countParam reads an optional ball or strike count from the query.
// Absence and the "all" keyword both disable the predicate, matching the
// string filters.
func countParam(c *gin.Context, name string) (*int, error) {
	v := c.Query(name)
	if v == "" || v == "all" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s count %q", name, v)
	}
	return &n, nil
}

// GetPoints handles GET /api/v1/chart/points
func (h *ChartHandler) GetPoints(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	points, err := h.service.Points(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load chart points", err)
		return
	}

	response.Success(c, points)
}

// GetSummary handles GET /api/v1/chart/summary
func (h *ChartHandler) GetSummary(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	summary, err := h.service.Summary(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to summarize chart", err)
		return
	}

	response.Success(c, summary)
}

// GetLayout handles GET /api/v1/chart/layout
func (h *ChartHandler) GetLayout(c *gin.Context) {
	layout, err := h.service.Layout()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load chart layout", err)
		return
	}

	response.Success(c, layout)
}
