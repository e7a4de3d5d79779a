package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/homeroomhq/homeroom-backend/internal/middleware"
	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/homeroomhq/homeroom-backend/internal/response"
	"github.com/homeroomhq/homeroom-backend/internal/service"
	"github.com/homeroomhq/homeroom-backend/internal/validator"
	"github.com/jackc/pgx/v5"
)

// ComplianceHandler handles compliance tracking endpoints.
type ComplianceHandler struct {
	complianceService *service.ComplianceService
}

// NewComplianceHandler creates a new ComplianceHandler.
func NewComplianceHandler(complianceService *service.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{complianceService: complianceService}
}

// Get godoc
// GET /api/v1/compliance?schoolYearId=
// Recounts completed days and reclassifies before responding, so the
// returned standing never trails the recount queue.
func (h *ComplianceHandler) Get(c *gin.Context) {
	claims := middleware.GetClaims(c)

	schoolYearID, err := strconv.Atoi(c.Query("schoolYearId"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	record, err := h.complianceService.GetForYear(c.Request.Context(), claims.FamilyID, schoolYearID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"compliance": record})
}

// Update godoc
// PUT /api/v1/compliance/:id
// Toggles the notice-of-intent and testing paperwork flags.
func (h *ComplianceHandler) Update(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateComplianceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	record, err := h.complianceService.UpdateFlags(c.Request.Context(), claims.FamilyID, id, &req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"compliance": record})
}
