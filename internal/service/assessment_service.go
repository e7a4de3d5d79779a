package service

import (
	"context"
	"errors"
	"time"

	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/homeroomhq/homeroom-backend/internal/repository"
	"github.com/jackc/pgx/v5"
)

// AssessmentService handles standardized assessment records.
type AssessmentService struct {
	assessmentRepo *repository.AssessmentRepository
	studentRepo    *repository.StudentRepository
	events         *EventService
}

// NewAssessmentService creates a new AssessmentService.
func NewAssessmentService(assessmentRepo *repository.AssessmentRepository, studentRepo *repository.StudentRepository, events *EventService) *AssessmentService {
	return &AssessmentService{
		assessmentRepo: assessmentRepo,
		studentRepo:    studentRepo,
		events:         events,
	}
}

func (s *AssessmentService) List(ctx context.Context, familyID int, studentID *int) ([]model.Assessment, error) {
	return s.assessmentRepo.List(ctx, familyID, studentID)
}

func (s *AssessmentService) GetByID(ctx context.Context, familyID, id int) (*model.Assessment, error) {
	return s.assessmentRepo.GetByID(ctx, familyID, id)
}

func (s *AssessmentService) Create(ctx context.Context, familyID int, req *model.CreateAssessmentRequest) (*model.Assessment, error) {
	if _, err := s.studentRepo.GetByID(ctx, familyID, req.StudentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotInFamily
		}
		return nil, err
	}

	testDate, err := time.Parse("2006-01-02", req.TestDate)
	if err != nil {
		return nil, err
	}

	a := &model.Assessment{
		StudentID:   req.StudentID,
		Title:       req.Title,
		Type:        req.Type,
		TestDate:    testDate,
		Score:       req.Score,
		MaxScore:    req.MaxScore,
		Percentile:  req.Percentile,
		TestingYear: req.TestingYear,
		Notes:       req.Notes,
	}
	if err := s.assessmentRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	s.events.Publish(ctx, model.ChangeEvent{Entity: "assessment", Action: "created", FamilyID: familyID, EntityID: a.ID, StudentID: a.StudentID})
	return s.assessmentRepo.GetByID(ctx, familyID, a.ID)
}

func (s *AssessmentService) Update(ctx context.Context, familyID, id int, req *model.UpdateAssessmentRequest) (*model.Assessment, error) {
	a, err := s.assessmentRepo.GetByID(ctx, familyID, id)
	if err != nil {
		return nil, err
	}

	testDate, err := time.Parse("2006-01-02", req.TestDate)
	if err != nil {
		return nil, err
	}

	a.Title = req.Title
	a.Type = req.Type
	a.TestDate = testDate
	a.Score = req.Score
	a.MaxScore = req.MaxScore
	a.Percentile = req.Percentile
	a.TestingYear = req.TestingYear
	a.Notes = req.Notes

	if err := s.assessmentRepo.Update(ctx, a); err != nil {
		return nil, err
	}
	s.events.Publish(ctx, model.ChangeEvent{Entity: "assessment", Action: "updated", FamilyID: familyID, EntityID: a.ID, StudentID: a.StudentID})
	return a, nil
}

// Delete removes an assessment. Returns false when it is not in the family.
func (s *AssessmentService) Delete(ctx context.Context, familyID, id int) (bool, error) {
	a, err := s.assessmentRepo.GetByID(ctx, familyID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	deleted, err := s.assessmentRepo.Delete(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}
	s.events.Publish(ctx, model.ChangeEvent{Entity: "assessment", Action: "deleted", FamilyID: familyID, EntityID: id, StudentID: a.StudentID})
	return true, nil
}
