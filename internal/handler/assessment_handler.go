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
)

// AssessmentHandler handles standardized assessment endpoints.
type AssessmentHandler struct {
	assessmentService *service.AssessmentService
}

// NewAssessmentHandler creates a new AssessmentHandler.
func NewAssessmentHandler(assessmentService *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService}
}

// GetAll godoc
// GET /api/v1/assessments?studentId=
func (h *AssessmentHandler) GetAll(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var studentID *int
	if raw := c.Query("studentId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		studentID = &id
	}

	assessments, err := h.assessmentService.List(c.Request.Context(), claims.FamilyID, studentID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if assessments == nil {
		assessments = []model.Assessment{}
	}
	response.Success(c, http.StatusOK, gin.H{"assessments": assessments})
}

// Create godoc
// POST /api/v1/assessments
func (h *AssessmentHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.CreateAssessmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	assessment, err := h.assessmentService.Create(c.Request.Context(), claims.FamilyID, &req)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotInFamily) {
			response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"assessment": assessment})
}

// Update godoc
// PUT /api/v1/assessments/:id
func (h *AssessmentHandler) Update(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateAssessmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	assessment, err := h.assessmentService.Update(c.Request.Context(), claims.FamilyID, id, &req)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"assessment": assessment})
}

// Delete godoc
// DELETE /api/v1/assessments/:id
func (h *AssessmentHandler) Delete(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	deleted, err := h.assessmentService.Delete(c.Request.Context(), claims.FamilyID, id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if !deleted {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "assessment deleted successfully"})
}
