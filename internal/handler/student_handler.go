package handler

import (
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

// StudentHandler handles roster endpoints.
type StudentHandler struct {
	studentService    *service.StudentService
	attendanceService *service.AttendanceService
	gradeService      *service.GradeService
	assessmentService *service.AssessmentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(
	studentService *service.StudentService,
	attendanceService *service.AttendanceService,
	gradeService *service.GradeService,
	assessmentService *service.AssessmentService,
) *StudentHandler {
	return &StudentHandler{
		studentService:    studentService,
		attendanceService: attendanceService,
		gradeService:      gradeService,
		assessmentService: assessmentService,
	}
}

// GetAll godoc
// GET /api/v1/students
func (h *StudentHandler) GetAll(c *gin.Context) {
	claims := middleware.GetClaims(c)

	students, err := h.studentService.List(c.Request.Context(), claims.FamilyID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if students == nil {
		students = []model.Student{}
	}
	response.Success(c, http.StatusOK, gin.H{"students": students})
}

// GetByID godoc
// GET /api/v1/students/:id
func (h *StudentHandler) GetByID(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	student, err := h.studentService.GetByID(c.Request.Context(), claims.FamilyID, id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// Create godoc
// POST /api/v1/students
func (h *StudentHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student, err := buildStudent(claims.FamilyID, 0, req.FirstName, req.LastName, req.BirthDate, req.GradeLevel, req.EnrollmentDate)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	if err := h.studentService.Create(c.Request.Context(), student); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"student": student})
}

// Update godoc
// PUT /api/v1/students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student, err := buildStudent(claims.FamilyID, id, req.FirstName, req.LastName, req.BirthDate, req.GradeLevel, req.EnrollmentDate)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	if err := h.studentService.Update(c.Request.Context(), student); err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// Delete godoc
// DELETE /api/v1/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	deleted, err := h.studentService.Delete(c.Request.Context(), claims.FamilyID, id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if !deleted {
		response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "student deleted successfully"})
}

// GetStats godoc
// GET /api/v1/students/:id/stats
func (h *StudentHandler) GetStats(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	stats, err := h.studentService.Stats(c.Request.Context(), claims.FamilyID, id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

// GetAttendance godoc
// GET /api/v1/students/:id/attendance
func (h *StudentHandler) GetAttendance(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	records, err := h.attendanceService.List(c.Request.Context(), claims.FamilyID, repository.AttendanceFilter{StudentID: &id})
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if records == nil {
		records = []model.AttendanceRecord{}
	}
	response.Success(c, http.StatusOK, gin.H{"records": records})
}

// GetGrades godoc
// GET /api/v1/students/:id/grades
func (h *StudentHandler) GetGrades(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	grades, err := h.gradeService.List(c.Request.Context(), claims.FamilyID, &id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if grades == nil {
		grades = []model.Grade{}
	}
	response.Success(c, http.StatusOK, gin.H{"grades": grades})
}

// GetAssessments godoc
// GET /api/v1/students/:id/assessments
func (h *StudentHandler) GetAssessments(c *gin.Context) {
	claims := middleware.GetClaims(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	assessments, err := h.assessmentService.List(c.Request.Context(), claims.FamilyID, &id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if assessments == nil {
		assessments = []model.Assessment{}
	}
	response.Success(c, http.StatusOK, gin.H{"assessments": assessments})
}

func buildStudent(familyID, id int, firstName, lastName, birthDate, gradeLevel, enrollmentDate string) (*model.Student, error) {
	birth, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return nil, err
	}
	enrollment := time.Now().UTC().Truncate(24 * time.Hour)
	if enrollmentDate != "" {
		enrollment, err = time.Parse("2006-01-02", enrollmentDate)
		if err != nil {
			return nil, err
		}
	}
	return &model.Student{
		ID:             id,
		FamilyID:       familyID,
		FirstName:      firstName,
		LastName:       lastName,
		BirthDate:      birth,
		GradeLevel:     gradeLevel,
		EnrollmentDate: enrollment,
	}, nil
}
