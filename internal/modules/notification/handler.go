package notification

import (
	"net/http"
	"strconv"

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
	rg.GET("/notifications", h.List)
	rg.POST("/notifications/:id/read", h.MarkRead)
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	list, err := h.service.ListRecent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load notifications")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid notification id")
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to mark notification read")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "is_read": true})
}
