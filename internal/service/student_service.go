package service

import (
	"context"
	"errors"

	"github.com/homeroomhq/homeroom-backend/internal/grading"
	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/homeroomhq/homeroom-backend/internal/repository"
	"github.com/homeroomhq/homeroom-backend/internal/stats"
	"github.com/jackc/pgx/v5"
)

// StudentService handles roster management and per-student statistics.
type StudentService struct {
	studentRepo    *repository.StudentRepository
	attendanceRepo *repository.AttendanceRepository
	gradeRepo      *repository.GradeRepository
	assignmentRepo *repository.AssignmentRepository
	yearService    *SchoolYearService
	events         *EventService
}

// NewStudentService creates a new StudentService.
func NewStudentService(
	studentRepo *repository.StudentRepository,
	attendanceRepo *repository.AttendanceRepository,
	gradeRepo *repository.GradeRepository,
	assignmentRepo *repository.AssignmentRepository,
	yearService *SchoolYearService,
	events *EventService,
) *StudentService {
	return &StudentService{
		studentRepo:    studentRepo,
		attendanceRepo: attendanceRepo,
		gradeRepo:      gradeRepo,
		assignmentRepo: assignmentRepo,
		yearService:    yearService,
		events:         events,
	}
}

func (s *StudentService) List(ctx context.Context, familyID int) ([]model.Student, error) {
	return s.studentRepo.List(ctx, familyID)
}

func (s *StudentService) GetByID(ctx context.Context, familyID, id int) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, familyID, id)
}

func (s *StudentService) Create(ctx context.Context, st *model.Student) error {
	if err := s.studentRepo.Create(ctx, st); err != nil {
		return err
	}
	s.events.Publish(ctx, model.ChangeEvent{Entity: "student", Action: "created", FamilyID: st.FamilyID, EntityID: st.ID})
	s.events.InvalidateDashboard(ctx, st.FamilyID)
	return nil
}

func (s *StudentService) Update(ctx context.Context, st *model.Student) error {
	if _, err := s.studentRepo.GetByID(ctx, st.FamilyID, st.ID); err != nil {
		return err
	}
	if err := s.studentRepo.Update(ctx, st); err != nil {
		return err
	}
	s.events.Publish(ctx, model.ChangeEvent{Entity: "student", Action: "updated", FamilyID: st.FamilyID, EntityID: st.ID})
	return nil
}

func (s *StudentService) Delete(ctx context.Context, familyID, id int) (bool, error) {
	deleted, err := s.studentRepo.Delete(ctx, familyID, id)
	if err != nil || !deleted {
		return deleted, err
	}
	s.events.Publish(ctx, model.ChangeEvent{Entity: "student", Action: "deleted", FamilyID: familyID, EntityID: id})
	s.events.InvalidateDashboard(ctx, familyID)
	return true, nil
}

// Stats computes a student's aggregates for the current school year.
// With no school year on file the zero-valued aggregates are returned,
// matching the empty-roster behavior of the dashboard.
func (s *StudentService) Stats(ctx context.Context, familyID, studentID int) (*model.StudentStats, error) {
	if _, err := s.studentRepo.GetByID(ctx, familyID, studentID); err != nil {
		return nil, err
	}

	year, err := s.yearService.yearRepo.GetMostRecent(ctx, familyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &model.StudentStats{}, nil
		}
		return nil, err
	}

	records, err := s.attendanceRepo.ListByStudentAndYear(ctx, studentID, year.ID)
	if err != nil {
		return nil, err
	}
	grades, err := s.gradeRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	assignments, err := s.assignmentRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	agg := stats.Compute(records, grades, assignments)
	return &model.StudentStats{
		TotalAttendanceDays:  agg.TotalAttendanceDays,
		AttendancePercentage: grading.Round1(agg.AttendancePercentage),
		CurrentStreak:        agg.CurrentStreak,
		AverageGrade:         grading.Round1(agg.AverageGrade),
		CompletedAssignments: agg.CompletedAssignments,
		TotalAssignments:     agg.TotalAssignments,
	}, nil
}
