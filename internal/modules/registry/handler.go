package registry

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
	rg.POST("/import", h.Import)
	rg.GET("/people", h.ListPeople)
	rg.GET("/people/:id/equipment", h.PersonEquipment)
}

func (h *Handler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing import file")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cannot read import file")
		return
	}
	defer f.Close()

	sum, err := h.service.ImportCSV(c.Request.Context(), f)
	if err != nil {
		switch err {
		case ErrBadHeader:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Import file is missing required columns")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Import failed")
		}
		return
	}

	response.Success(c, http.StatusOK, sum)
}

func (h *Handler) ListPeople(c *gin.Context) {
	roster, err := h.service.Roster(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load roster")
		return
	}
	response.Success(c, http.StatusOK, roster)
}

func (h *Handler) PersonEquipment(c *gin.Context) {
	items, err := h.service.PersonEquipment(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch err {
		case ErrPersonNotFound:
			response.Error(c, http.StatusNotFound, "PERSON_NOT_FOUND", "Unknown person")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load equipment")
		}
		return
	}
	response.Success(c, http.StatusOK, items)
}
