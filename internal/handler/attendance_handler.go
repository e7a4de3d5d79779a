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
	"github.com/jackc/pgx/v5"
)

// AttendanceHandler handles attendance logging endpoints.
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// GetAll godoc
// GET /api/v1/attendance?studentId=&date=&schoolYearId=
func (h *AttendanceHandler) GetAll(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var filter repository.AttendanceFilter
	if raw := c.Query("studentId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		filter.StudentID = &id
	}
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
			return
		}
		filter.Date = &date
	}
	if raw := c.Query("schoolYearId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		filter.SchoolYearID = &id
	}

	records, err := h.attendanceService.List(c.Request.Context(), claims.FamilyID, filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if records == nil {
		records = []model.AttendanceRecord{}
	}
	response.Success(c, http.StatusOK, gin.H{"records": records})
}

// Create godoc
// POST /api/v1/attendance
// A duplicate (student, date) pair gets a conflict; the original record is
// never overwritten.
func (h *AttendanceHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.CreateAttendanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	record, err := h.attendanceService.Create(c.Request.Context(), claims.FamilyID, &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateAttendance):
			response.Fail(c, http.StatusConflict, response.ErrAttendanceMarked)
		case errors.Is(err, service.ErrStudentNotInFamily):
			response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"record": record})
}

// Update godoc
// PUT /api/v1/attendance
// Addresses the record by its (student, date) natural key.
func (h *AttendanceHandler) Update(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.UpdateAttendanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	record, err := h.attendanceService.Update(c.Request.Context(), claims.FamilyID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotInFamily):
			response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"record": record})
}

// Delete godoc
// DELETE /api/v1/attendance?studentId=&date=
func (h *AttendanceHandler) Delete(c *gin.Context) {
	claims := middleware.GetClaims(c)

	studentID, err := strconv.Atoi(c.Query("studentId"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	deleted, err := h.attendanceService.Delete(c.Request.Context(), claims.FamilyID, studentID, date)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotInFamily) {
			response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if !deleted {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "attendance record deleted successfully"})
}
