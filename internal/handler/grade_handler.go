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

// GradeHandler handles gradebook endpoints.
type GradeHandler struct {
	gradeService *service.GradeService
}

// NewGradeHandler creates a new GradeHandler.
func NewGradeHandler(gradeService *service.GradeService) *GradeHandler {
	return &GradeHandler{gradeService: gradeService}
}

// GetAll godoc
// GET /api/v1/grades?studentId=
func (h *GradeHandler) GetAll(c *gin.Context) {
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

	grades, err := h.gradeService.List(c.Request.Context(), claims.FamilyID, studentID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if grades == nil {
		grades = []model.Grade{}
	}
	response.Success(c, http.StatusOK, gin.H{"grades": grades})
}

// GetByID godoc
// GET /api/v1/grades/:id
func (h *GradeHandler) GetByID(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	grade, err := h.gradeService.GetByID(c.Request.Context(), claims.FamilyID, id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"grade": grade})
}

// Create godoc
// POST /api/v1/grades
// Materializes the named subject and a graded assignment along with the
// grade itself.
func (h *GradeHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.CreateGradeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	grade, err := h.gradeService.Create(c.Request.Context(), claims.FamilyID, &req)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotInFamily) {
			response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"grade": grade})
}

// Update godoc
// PUT /api/v1/grades/:id
func (h *GradeHandler) Update(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateGradeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	grade, err := h.gradeService.Update(c.Request.Context(), claims.FamilyID, id, &req)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"grade": grade})
}

// Delete godoc
// DELETE /api/v1/grades/:id
// Removes the grade and its assignment together.
func (h *GradeHandler) Delete(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	deleted, err := h.gradeService.Delete(c.Request.Context(), claims.FamilyID, id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if !deleted {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "grade deleted successfully"})
}
