package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/homeroomhq/homeroom-backend/internal/middleware"
	"github.com/homeroomhq/homeroom-backend/internal/response"
	"github.com/homeroomhq/homeroom-backend/internal/service"
)

// ReportHandler handles dashboard and calendar report endpoints.
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Dashboard godoc
// GET /api/v1/reports/dashboard
func (h *ReportHandler) Dashboard(c *gin.Context) {
	claims := middleware.GetClaims(c)

	report, err := h.reportService.Dashboard(c.Request.Context(), claims.FamilyID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"dashboard": report})
}

// Calendar godoc
// GET /api/v1/reports/calendar?year=&month=
// Defaults to the current month when the query params are absent.
func (h *ReportHandler) Calendar(c *gin.Context) {
	claims := middleware.GetClaims(c)

	now := time.Now().UTC()
	year := now.Year()
	month := now.Month()

	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1900 || y > 2200 {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
			return
		}
		year = y
	}
	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
			return
		}
		month = time.Month(m)
	}

	days, err := h.reportService.Calendar(c.Request.Context(), claims.FamilyID, year, month)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"year":  year,
		"month": int(month),
		"days":  days,
	})
}
