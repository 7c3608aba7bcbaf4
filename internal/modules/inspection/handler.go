package inspection

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
	rg.POST("/inspections", h.Submit)
	rg.GET("/inspections/:personId/:month", h.GetCycle)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid submission", details)
		return
	}

	cycle, err := h.service.SubmitCycle(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid month label or result set")
		case ErrPersonNotFound:
			response.Error(c, http.StatusNotFound, "PERSON_NOT_FOUND", "Unknown person")
		case ErrDuplicateCycle:
			// expected business condition: the month is already done
			response.Error(c, http.StatusConflict, "DUPLICATE_CYCLE", "Inspection already completed for this month")
		case ErrUnknownItem:
			response.Error(c, http.StatusUnprocessableEntity, "UNKNOWN_ITEM", "A submitted barcode is not owned by this person")
		case ErrIncomplete:
			response.Error(c, http.StatusUnprocessableEntity, "INCOMPLETE_SUBMISSION", "Results must cover every owned item")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record inspection")
		}
		return
	}

	response.Success(c, http.StatusCreated, cycle)
}

func (h *Handler) GetCycle(c *gin.Context) {
	cycle, err := h.service.GetCycle(c.Request.Context(), c.Param("personId"), c.Param("month"))
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid month label")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load inspection")
		}
		return
	}
	if cycle == nil {
		response.Error(c, http.StatusNotFound, "CYCLE_NOT_FOUND", "No inspection recorded for this month")
		return
	}

	response.Success(c, http.StatusOK, cycle)
}
