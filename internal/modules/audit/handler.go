package audit

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ppetrack/internal/pkg/response"
	"ppetrack/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/audits", h.SignOff)
	rg.GET("/audits/:quarter", h.GetSignoff)
	rg.GET("/audits/:quarter/status", h.QuarterStatus)
}

func (h *Handler) SignOff(c *gin.Context) {
	var req SignOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid sign-off", details)
		return
	}

	signoff, err := h.service.SignOff(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Quarter label must be YYYY-Qn and signer is required")
		case ErrAlreadySignedOff:
			response.Error(c, http.StatusConflict, "ALREADY_SIGNED_OFF", "This quarter has already been signed off")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record sign-off")
		}
		return
	}

	response.Success(c, http.StatusCreated, signoff)
}

func (h *Handler) GetSignoff(c *gin.Context) {
	signoff, err := h.service.GetSignoff(c.Request.Context(), c.Param("quarter"))
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Quarter label must be YYYY-Qn")
		case ErrSignoffNotFound:
			response.Error(c, http.StatusNotFound, "SIGNOFF_NOT_FOUND", "No sign-off recorded for this quarter")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load sign-off")
		}
		return
	}
	response.Success(c, http.StatusOK, signoff)
}

func (h *Handler) QuarterStatus(c *gin.Context) {
	status, err := h.service.QuarterStatus(c.Request.Context(), c.Param("quarter"))
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Quarter label must be YYYY-Qn")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load quarter status")
		}
		return
	}
	response.Success(c, http.StatusOK, status)
}
