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

// LessonHandler handles lesson plan endpoints.
type LessonHandler struct {
	subjectService *service.SubjectService
}

// NewLessonHandler creates a new LessonHandler.
func NewLessonHandler(subjectService *service.SubjectService) *LessonHandler {
	return &LessonHandler{subjectService: subjectService}
}

// GetAll godoc
// GET /api/v1/lessons?subjectId=
func (h *LessonHandler) GetAll(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var subjectID *int
	if raw := c.Query("subjectId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		subjectID = &id
	}

	lessons, err := h.subjectService.ListLessons(c.Request.Context(), claims.FamilyID, subjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if lessons == nil {
		lessons = []model.Lesson{}
	}
	response.Success(c, http.StatusOK, gin.H{"lessons": lessons})
}

// Create godoc
// POST /api/v1/lessons
func (h *LessonHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.CreateLessonRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	lesson, err := h.subjectService.CreateLesson(c.Request.Context(), claims.FamilyID, &req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"lesson": lesson})
}

// Update godoc
// PUT /api/v1/lessons/:id
func (h *LessonHandler) Update(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateLessonRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	lesson, err := h.subjectService.UpdateLesson(c.Request.Context(), claims.FamilyID, id, &req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lesson": lesson})
}

// Delete godoc
// DELETE /api/v1/lessons/:id
func (h *LessonHandler) Delete(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	deleted, err := h.subjectService.DeleteLesson(c.Request.Context(), claims.FamilyID, id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if !deleted {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "lesson deleted successfully"})
}
