package service

import (
	"context"

	"github.com/homeroomhq/homeroom-backend/internal/compliance"
	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/homeroomhq/homeroom-backend/internal/repository"
	"github.com/jackc/pgx/v5"
)

// ComplianceService reports a family's standing against the yearly day
// requirement. Reads recount live so the response never trails the queue.
type ComplianceService struct {
	complianceRepo *repository.ComplianceRepository
	attendanceRepo *repository.AttendanceRepository
	yearRepo       *repository.SchoolYearRepository
}

// NewComplianceService creates a new ComplianceService.
func NewComplianceService(complianceRepo *repository.ComplianceRepository, attendanceRepo *repository.AttendanceRepository, yearRepo *repository.SchoolYearRepository) *ComplianceService {
	return &ComplianceService{
		complianceRepo: complianceRepo,
		attendanceRepo: attendanceRepo,
		yearRepo:       yearRepo,
	}
}

// GetForYear returns the compliance record for a school year, recounting
// the completed days and reclassifying before returning. The record is
// created on first read; the paperwork flags survive the upsert.
func (s *ComplianceService) GetForYear(ctx context.Context, familyID, schoolYearID int) (*model.ComplianceRecord, error) {
	year, err := s.yearRepo.GetByID(ctx, familyID, schoolYearID)
	if err != nil {
		return nil, err
	}

	completed, err := s.attendanceRepo.CountCompletedDays(ctx, familyID, schoolYearID)
	if err != nil {
		return nil, err
	}

	record := &model.ComplianceRecord{
		FamilyID:      familyID,
		SchoolYearID:  schoolYearID,
		DaysCompleted: completed,
		DaysRequired:  year.DaysRequired,
		Status:        string(compliance.Classify(completed, year.DaysRequired)),
	}
	if err := s.complianceRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateFlags toggles the notice-of-intent and testing flags. Returns nil
// with pgx.ErrNoRows semantics via the repository when the record is not
// in the family.
func (s *ComplianceService) UpdateFlags(ctx context.Context, familyID, id int, req *model.UpdateComplianceRequest) (*model.ComplianceRecord, error) {
	updated, err := s.complianceRepo.UpdateFlags(ctx, familyID, id, req.NoticeOfIntentFiled, req.TestingCompleted)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, pgx.ErrNoRows
	}
	return s.complianceRepo.GetByID(ctx, familyID, id)
}

// TestingRequired reports whether a grade level falls in a testing year.
func (s *ComplianceService) TestingRequired(gradeLevel string) bool {
	return compliance.TestingRequired(gradeLevel)
}
