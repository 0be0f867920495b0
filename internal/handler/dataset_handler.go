package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yakyulab/spraychart-backend-go/internal/service"
	"github.com/yakyulab/spraychart-backend-go/pkg/response"
)

// DatasetHandler handles HTTP requests for dataset management
type DatasetHandler struct {
	service *service.ChartService
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(service *service.ChartService) *DatasetHandler {
	return &DatasetHandler{service: service}
}

// GetMeta handles GET /api/v1/dataset/meta
func (h *DatasetHandler) GetMeta(c *gin.Context) {
	meta, err := h.service.Meta()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load dataset metadata", err)
		return
	}

	response.Success(c, meta)
}

// Reload handles POST /api/v1/dataset/reload
func (h *DatasetHandler) Reload(c *gin.Context) {
	report, err := h.service.Reload()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to reload dataset", err)
		return
	}

	response.Success(c, report)
}
