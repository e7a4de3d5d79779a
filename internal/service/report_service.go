package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/homeroomhq/homeroom-backend/internal/calendar"
	"github.com/homeroomhq/homeroom-backend/internal/compliance"
	"github.com/homeroomhq/homeroom-backend/internal/config"
	"github.com/homeroomhq/homeroom-backend/internal/grading"
	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/homeroomhq/homeroom-backend/internal/repository"
	"github.com/homeroomhq/homeroom-backend/internal/stats"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const dashboardCacheTTL = 30 * time.Second

// ReportService assembles the dashboard and calendar views. The dashboard
// is cached in Redis briefly; writes invalidate it through EventService.
type ReportService struct {
	rdb            *redis.Client
	studentRepo    *repository.StudentRepository
	attendanceRepo *repository.AttendanceRepository
	gradeRepo      *repository.GradeRepository
	assignmentRepo *repository.AssignmentRepository
	yearService    *SchoolYearService
	log            zerolog.Logger
}

// NewReportService creates a new ReportService.
func NewReportService(
	rdb *redis.Client,
	studentRepo *repository.StudentRepository,
	attendanceRepo *repository.AttendanceRepository,
	gradeRepo *repository.GradeRepository,
	assignmentRepo *repository.AssignmentRepository,
	yearService *SchoolYearService,
	log zerolog.Logger,
) *ReportService {
	return &ReportService{
		rdb:            rdb,
		studentRepo:    studentRepo,
		attendanceRepo: attendanceRepo,
		gradeRepo:      gradeRepo,
		assignmentRepo: assignmentRepo,
		yearService:    yearService,
		log:            log.With().Str("component", "report_service").Logger(),
	}
}

// Dashboard returns the family overview, served from cache when fresh.
// Cache failures fall through to a live computation.
func (s *ReportService) Dashboard(ctx context.Context, familyID int) (*model.DashboardReport, error) {
	key := config.CacheKey.DashboardKey(familyID)
	if cached, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
		report := &model.DashboardReport{}
		if err := json.Unmarshal(cached, report); err == nil {
			return report, nil
		}
	}

	report, err := s.buildDashboard(ctx, familyID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(report); err == nil {
		if err := s.rdb.Set(ctx, key, payload, dashboardCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Int("family_id", familyID).Msg("Cache dashboard failed")
		}
	}
	return report, nil
}

func (s *ReportService) buildDashboard(ctx context.Context, familyID int) (*model.DashboardReport, error) {
	year, err := s.yearService.Current(ctx, familyID)
	if err != nil {
		return nil, err
	}

	students, err := s.studentRepo.List(ctx, familyID)
	if err != nil {
		return nil, err
	}

	report := &model.DashboardReport{
		TotalStudents: len(students),
		SchoolYearID:  year.ID,
		YearLabel:     year.YearLabel,
		DaysRequired:  year.DaysRequired,
		Students:      make([]model.StudentSummary, 0, len(students)),
	}

	var gradeSum float64
	var gradeCount int
	for _, st := range students {
		records, err := s.attendanceRepo.ListByStudentAndYear(ctx, st.ID, year.ID)
		if err != nil {
			return nil, err
		}
		grades, err := s.gradeRepo.ListByStudent(ctx, st.ID)
		if err != nil {
			return nil, err
		}
		assignments, err := s.assignmentRepo.ListByStudent(ctx, st.ID)
		if err != nil {
			return nil, err
		}

		for _, r := range records {
			if r.Status != model.AttendanceAbsent {
				report.TotalHours += r.Hours
			}
		}
		for _, g := range grades {
			if g.Percentage != nil {
				gradeSum += *g.Percentage
				gradeCount++
			}
		}

		agg := stats.Compute(records, grades, assignments)
		report.Students = append(report.Students, model.StudentSummary{
			Student: st,
			Stats: model.StudentStats{
				TotalAttendanceDays:  agg.TotalAttendanceDays,
				AttendancePercentage: grading.Round1(agg.AttendancePercentage),
				CurrentStreak:        agg.CurrentStreak,
				AverageGrade:         grading.Round1(agg.AverageGrade),
				CompletedAssignments: agg.CompletedAssignments,
				TotalAssignments:     agg.TotalAssignments,
			},
		})
	}

	completed, err := s.attendanceRepo.CountCompletedDays(ctx, familyID, year.ID)
	if err != nil {
		return nil, err
	}
	report.DaysCompleted = completed
	report.CompliancePercentage = compliance.Percent(completed, year.DaysRequired)
	report.ComplianceStatus = string(compliance.Classify(completed, year.DaysRequired))

	if gradeCount > 0 {
		report.AverageGrade = grading.Round1(gradeSum / float64(gradeCount))
	}
	return report, nil
}

// Calendar returns the month grid covering (year, month), including the
// leading and trailing days that pad the view to six weeks.
func (s *ReportService) Calendar(ctx context.Context, familyID, year int, month time.Month) ([]calendar.Day, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := start.AddDate(0, 0, calendar.GridSize-1)

	records, err := s.attendanceRepo.ListRange(ctx, familyID, start, end)
	if err != nil {
		return nil, err
	}
	return calendar.MonthGrid(year, month, records, time.Now().UTC()), nil
}
