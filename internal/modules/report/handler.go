package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ppetrack/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports/monthly/:month", h.Monthly)
	rg.GET("/reports/quarterly/:quarter", h.Quarterly)
}

func (h *Handler) Monthly(c *gin.Context) {
	sum, err := h.service.MonthlySummary(c.Request.Context(), c.Param("month"))
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Month label must be YYYY-MM")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build monthly summary")
		}
		return
	}
	response.Success(c, http.StatusOK, sum)
}

func (h *Handler) Quarterly(c *gin.Context) {
	grid, err := h.service.QuarterlyCompleteness(c.Request.Context(), c.Param("quarter"))
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Quarter label must be YYYY-Qn")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build quarterly grid")
		}
		return
	}
	response.Success(c, http.StatusOK, grid)
}
