package upload

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
	rg.POST("/uploads", h.Upload)
}

func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing file")
		return
	}
	barcode := c.PostForm("barcode")

	u, err := h.service.Save(c.Request.Context(), barcode, fileHeader)
	if err != nil {
		switch err {
		case ErrEmptyFile, ErrInvalidMimeType:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case ErrFileTooLarge:
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to store file")
		}
		return
	}

	response.Success(c, http.StatusCreated, u)
}
