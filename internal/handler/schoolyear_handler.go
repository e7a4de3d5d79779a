package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/homeroomhq/homeroom-backend/internal/middleware"
	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/homeroomhq/homeroom-backend/internal/repository"
	"github.com/homeroomhq/homeroom-backend/internal/response"
	"github.com/homeroomhq/homeroom-backend/internal/service"
	"github.com/homeroomhq/homeroom-backend/internal/validator"
)

// SchoolYearHandler handles school year endpoints.
type SchoolYearHandler struct {
	yearService *service.SchoolYearService
}

// NewSchoolYearHandler creates a new SchoolYearHandler.
func NewSchoolYearHandler(yearService *service.SchoolYearService) *SchoolYearHandler {
	return &SchoolYearHandler{yearService: yearService}
}

// GetAll godoc
// GET /api/v1/school-years
func (h *SchoolYearHandler) GetAll(c *gin.Context) {
	claims := middleware.GetClaims(c)

	years, err := h.yearService.List(c.Request.Context(), claims.FamilyID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if years == nil {
		years = []model.SchoolYear{}
	}
	response.Success(c, http.StatusOK, gin.H{"school_years": years})
}

// GetCurrent godoc
// GET /api/v1/school-years/current
// Resolves the active year, falling back to the most recent one and
// finally creating a default year for the current academic span.
func (h *SchoolYearHandler) GetCurrent(c *gin.Context) {
	claims := middleware.GetClaims(c)

	year, err := h.yearService.Current(c.Request.Context(), claims.FamilyID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"school_year": year})
}

// Create godoc
// POST /api/v1/school-years
func (h *SchoolYearHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.CreateSchoolYearRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	year, err := buildSchoolYear(claims.FamilyID, 0, req.YearLabel, req.StartDate, req.EndDate, req.DaysRequired)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	if err := h.yearService.Create(c.Request.Context(), year); err != nil {
		if errors.Is(err, repository.ErrDuplicateSchoolYear) {
			response.Fail(c, http.StatusConflict, response.ErrSchoolYearExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"school_year": year})
}

// Update godoc
// PUT /api/v1/school-years/:id
func (h *SchoolYearHandler) Update(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateSchoolYearRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	year, err := buildSchoolYear(claims.FamilyID, id, req.YearLabel, req.StartDate, req.EndDate, req.DaysRequired)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	if err := h.yearService.Update(c.Request.Context(), year); err != nil {
		if errors.Is(err, repository.ErrDuplicateSchoolYear) {
			response.Fail(c, http.StatusConflict, response.ErrSchoolYearExists)
			return
		}
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"school_year": year})
}

// Delete godoc
// DELETE /api/v1/school-years/:id
func (h *SchoolYearHandler) Delete(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	deleted, err := h.yearService.Delete(c.Request.Context(), claims.FamilyID, id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if !deleted {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "school year deleted successfully"})
}

func buildSchoolYear(familyID, id int, label, startDate, endDate string, daysRequired int) (*model.SchoolYear, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, err
	}
	return &model.SchoolYear{
		ID:           id,
		FamilyID:     familyID,
		YearLabel:    label,
		StartDate:    start,
		EndDate:      end,
		DaysRequired: daysRequired,
	}, nil
}
