package service

import (
	"context"
	"errors"

	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/homeroomhq/homeroom-backend/internal/repository"
	"github.com/jackc/pgx/v5"
)

// SubjectService handles curriculum subjects and their lesson plans.
type SubjectService struct {
	subjectRepo *repository.SubjectRepository
	lessonRepo  *repository.LessonRepository
	yearRepo    *repository.SchoolYearRepository
	events      *EventService
}

// NewSubjectService creates a new SubjectService.
func NewSubjectService(subjectRepo *repository.SubjectRepository, lessonRepo *repository.LessonRepository, yearRepo *repository.SchoolYearRepository, events *EventService) *SubjectService {
	return &SubjectService{
		subjectRepo: subjectRepo,
		lessonRepo:  lessonRepo,
		yearRepo:    yearRepo,
		events:      events,
	}
}

func (s *SubjectService) List(ctx context.Context, familyID int, schoolYearID *int) ([]model.Subject, error) {
	return s.subjectRepo.List(ctx, familyID, schoolYearID)
}

// GetByID retrieves a subject including its lessons in curriculum order.
func (s *SubjectService) GetByID(ctx context.Context, familyID, id int) (*model.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, familyID, id)
	if err != nil {
		return nil, err
	}
	lessons, err := s.lessonRepo.ListBySubject(ctx, subject.ID)
	if err != nil {
		return nil, err
	}
	subject.Lessons = lessons
	return subject, nil
}

func (s *SubjectService) Create(ctx context.Context, familyID int, req *model.CreateSubjectRequest) (*model.Subject, error) {
	if _, err := s.yearRepo.GetByID(ctx, familyID, req.SchoolYearID); err != nil {
		return nil, err
	}
	subject := &model.Subject{
		SchoolYearID: req.SchoolYearID,
		Name:         req.Name,
		GradeLevel:   req.GradeLevel,
		Curriculum:   req.Curriculum,
	}
	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, err
	}
	s.events.Publish(ctx, model.ChangeEvent{Entity: "subject", Action: "created", FamilyID: familyID, EntityID: subject.ID})
	return subject, nil
}

func (s *SubjectService) Update(ctx context.Context, familyID, id int, req *model.UpdateSubjectRequest) (*model.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, familyID, id)
	if err != nil {
		return nil, err
	}
	subject.Name = req.Name
	subject.GradeLevel = req.GradeLevel
	subject.Curriculum = req.Curriculum
	if err := s.subjectRepo.Update(ctx, subject); err != nil {
		return nil, err
	}
	s.events.Publish(ctx, model.ChangeEvent{Entity: "subject", Action: "updated", FamilyID: familyID, EntityID: subject.ID})
	return subject, nil
}

// Delete removes a subject and, via the schema's cascades, its lessons and
// assignments. Returns false when the subject is not in the family.
func (s *SubjectService) Delete(ctx context.Context, familyID, id int) (bool, error) {
	if _, err := s.subjectRepo.GetByID(ctx, familyID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	if err := s.subjectRepo.Delete(ctx, id); err != nil {
		return false, err
	}
	s.events.Publish(ctx, model.ChangeEvent{Entity: "subject", Action: "deleted", FamilyID: familyID, EntityID: id})
	return true, nil
}

// ListLessons retrieves the family's lessons, optionally narrowed to one
// subject the family owns.
func (s *SubjectService) ListLessons(ctx context.Context, familyID int, subjectID *int) ([]model.Lesson, error) {
	if subjectID != nil {
		if _, err := s.subjectRepo.GetByID(ctx, familyID, *subjectID); err != nil {
			return nil, err
		}
	}
	return s.lessonRepo.List(ctx, familyID, subjectID)
}

// CreateLesson adds a lesson to a subject owned by the family.
func (s *SubjectService) CreateLesson(ctx context.Context, familyID int, req *model.CreateLessonRequest) (*model.Lesson, error) {
	if _, err := s.subjectRepo.GetByID(ctx, familyID, req.SubjectID); err != nil {
		return nil, err
	}
	lesson := &model.Lesson{
		SubjectID:      req.SubjectID,
		LessonNumber:   req.LessonNumber,
		Title:          req.Title,
		EstimatedHours: req.EstimatedHours,
		Description:    req.Description,
	}
	if err := s.lessonRepo.Create(ctx, lesson); err != nil {
		return nil, err
	}
	s.events.Publish(ctx, model.ChangeEvent{Entity: "lesson", Action: "created", FamilyID: familyID, EntityID: lesson.ID})
	return lesson, nil
}

// UpdateLesson modifies a lesson after confirming its subject is in the family.
func (s *SubjectService) UpdateLesson(ctx context.Context, familyID, id int, req *model.UpdateLessonRequest) (*model.Lesson, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.subjectRepo.GetByID(ctx, familyID, lesson.SubjectID); err != nil {
		return nil, err
	}
	lesson.LessonNumber = req.LessonNumber
	lesson.Title = req.Title
	lesson.EstimatedHours = req.EstimatedHours
	lesson.Description = req.Description
	if err := s.lessonRepo.Update(ctx, lesson); err != nil {
		return nil, err
	}
	s.events.Publish(ctx, model.ChangeEvent{Entity: "lesson", Action: "updated", FamilyID: familyID, EntityID: lesson.ID})
	return lesson, nil
}

// DeleteLesson removes a lesson. Returns false when the lesson does not
// exist or its subject is outside the family.
func (s *SubjectService) DeleteLesson(ctx context.Context, familyID, id int) (bool, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	if _, err := s.subjectRepo.GetByID(ctx, familyID, lesson.SubjectID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	deleted, err := s.lessonRepo.Delete(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}
	s.events.Publish(ctx, model.ChangeEvent{Entity: "lesson", Action: "deleted", FamilyID: familyID, EntityID: id})
	return true, nil
}
