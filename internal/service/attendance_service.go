package service

import (
	"context"
	"errors"
	"time"

	"github.com/homeroomhq/homeroom-backend/internal/config"
	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/homeroomhq/homeroom-backend/internal/repository"
	"github.com/jackc/pgx/v5"
)

// ErrStudentNotInFamily is returned when a request names a student outside
// the authenticated guardian's family.
var ErrStudentNotInFamily = errors.New("student does not belong to this family")

// AttendanceService handles daily attendance logging.
type AttendanceService struct {
	cfg            *config.Config
	attendanceRepo *repository.AttendanceRepository
	studentRepo    *repository.StudentRepository
	events         *EventService
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(cfg *config.Config, attendanceRepo *repository.AttendanceRepository, studentRepo *repository.StudentRepository, events *EventService) *AttendanceService {
	return &AttendanceService{
		cfg:            cfg,
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		events:         events,
	}
}

func (s *AttendanceService) List(ctx context.Context, familyID int, filter repository.AttendanceFilter) ([]model.AttendanceRecord, error) {
	return s.attendanceRepo.List(ctx, familyID, filter)
}

// Create logs one student's day. The status defaults to PRESENT and the
// hours to the configured daily amount; ABSENT days always carry zero
// hours regardless of the request. An already-marked (student, date) pair
// is rejected with ErrDuplicateAttendance — the first record wins.
func (s *AttendanceService) Create(ctx context.Context, familyID int, req *model.CreateAttendanceRequest) (*model.AttendanceRecord, error) {
	if err := s.checkStudent(ctx, familyID, req.StudentID); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}

	status := model.AttendanceStatus(req.Status)
	if status == "" {
		status = model.AttendancePresent
	}
	hours := req.Hours
	if hours == 0 && status != model.AttendanceAbsent {
		hours = s.cfg.HoursPerDay
	}
	if status == model.AttendanceAbsent {
		hours = 0
	}

	rec := &model.AttendanceRecord{
		StudentID:    req.StudentID,
		SchoolYearID: req.SchoolYearID,
		Date:         date,
		Status:       status,
		Hours:        hours,
		Notes:        req.Notes,
	}
	if err := s.attendanceRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	s.afterWrite(ctx, familyID, rec, "created")
	return rec, nil
}

// Update modifies a record addressed by its (student, date) natural key.
func (s *AttendanceService) Update(ctx context.Context, familyID int, req *model.UpdateAttendanceRequest) (*model.AttendanceRecord, error) {
	if err := s.checkStudent(ctx, familyID, req.StudentID); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}

	existing, err := s.attendanceRepo.GetByStudentAndDate(ctx, req.StudentID, date)
	if err != nil {
		return nil, err
	}

	status, hours, notes := mergeUpdate(existing, req)

	updated, err := s.attendanceRepo.UpdateByStudentAndDate(ctx, req.StudentID, date, status, hours, notes)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, pgx.ErrNoRows
	}

	rec, err := s.attendanceRepo.GetByStudentAndDate(ctx, req.StudentID, date)
	if err != nil {
		return nil, err
	}
	s.afterWrite(ctx, familyID, rec, "updated")
	return rec, nil
}

// mergeUpdate folds a partial update onto the stored record. Nil request
// fields keep the stored value; present fields overwrite, including zero
// hours and empty notes. ABSENT always forces hours to 0.
func mergeUpdate(existing *model.AttendanceRecord, req *model.UpdateAttendanceRequest) (model.AttendanceStatus, float64, string) {
	status := existing.Status
	if req.Status != nil {
		status = model.AttendanceStatus(*req.Status)
	}
	hours := existing.Hours
	if req.Hours != nil {
		hours = *req.Hours
	}
	if status == model.AttendanceAbsent {
		hours = 0
	}
	notes := existing.Notes
	if req.Notes != nil {
		notes = *req.Notes
	}
	return status, hours, notes
}

// Delete removes a record by its natural key. Returns false when no record
// exists for the pair.
func (s *AttendanceService) Delete(ctx context.Context, familyID, studentID int, date time.Time) (bool, error) {
	if err := s.checkStudent(ctx, familyID, studentID); err != nil {
		return false, err
	}

	rec, err := s.attendanceRepo.GetByStudentAndDate(ctx, studentID, date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	deleted, err := s.attendanceRepo.DeleteByStudentAndDate(ctx, studentID, date)
	if err != nil || !deleted {
		return deleted, err
	}
	s.afterWrite(ctx, familyID, rec, "deleted")
	return true, nil
}

func (s *AttendanceService) checkStudent(ctx context.Context, familyID, studentID int) error {
	if _, err := s.studentRepo.GetByID(ctx, familyID, studentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrStudentNotInFamily
		}
		return err
	}
	return nil
}

func (s *AttendanceService) afterWrite(ctx context.Context, familyID int, rec *model.AttendanceRecord, action string) {
	s.events.Publish(ctx, model.ChangeEvent{
		Entity:    "attendance",
		Action:    action,
		FamilyID:  familyID,
		EntityID:  rec.ID,
		StudentID: rec.StudentID,
		Date:      rec.Date.Format("2006-01-02"),
	})
	s.events.EnqueueComplianceSync(ctx, familyID, rec.SchoolYearID)
	s.events.InvalidateDashboard(ctx, familyID)
}
