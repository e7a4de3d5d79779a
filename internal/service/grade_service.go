package service

import (
	"context"
	"errors"
	"time"

	"github.com/homeroomhq/homeroom-backend/internal/grading"
	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/homeroomhq/homeroom-backend/internal/repository"
	"github.com/jackc/pgx/v5"
)

// GradeService handles gradebook entries. Creating a grade also materializes
// the subject and assignment it hangs off; deleting a grade removes its
// assignment too.
type GradeService struct {
	gradeRepo      *repository.GradeRepository
	assignmentRepo *repository.AssignmentRepository
	subjectRepo    *repository.SubjectRepository
	studentRepo    *repository.StudentRepository
	yearService    *SchoolYearService
	events         *EventService
}

// NewGradeService creates a new GradeService.
func NewGradeService(
	gradeRepo *repository.GradeRepository,
	assignmentRepo *repository.AssignmentRepository,
	subjectRepo *repository.SubjectRepository,
	studentRepo *repository.StudentRepository,
	yearService *SchoolYearService,
	events *EventService,
) *GradeService {
	return &GradeService{
		gradeRepo:      gradeRepo,
		assignmentRepo: assignmentRepo,
		subjectRepo:    subjectRepo,
		studentRepo:    studentRepo,
		yearService:    yearService,
		events:         events,
	}
}

func (s *GradeService) List(ctx context.Context, familyID int, studentID *int) ([]model.Grade, error) {
	return s.gradeRepo.List(ctx, familyID, studentID)
}

func (s *GradeService) GetByID(ctx context.Context, familyID, id int) (*model.Grade, error) {
	return s.gradeRepo.GetByID(ctx, familyID, id)
}

// Create records a graded piece of work. The named subject is looked up in
// the current school year and created when missing, then a GRADED
// assignment is created to carry the grade. A percentage omitted by the
// client is derived from points over max points; a letter grade omitted by
// the client is derived from the percentage.
func (s *GradeService) Create(ctx context.Context, familyID int, req *model.CreateGradeRequest) (*model.Grade, error) {
	student, err := s.studentRepo.GetByID(ctx, familyID, req.StudentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotInFamily
		}
		return nil, err
	}

	year, err := s.yearService.Current(ctx, familyID)
	if err != nil {
		return nil, err
	}

	subject, err := s.subjectRepo.GetByName(ctx, year.ID, req.Subject)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		subject = &model.Subject{
			SchoolYearID: year.ID,
			Name:         req.Subject,
			GradeLevel:   student.GradeLevel,
		}
		if err := s.subjectRepo.Create(ctx, subject); err != nil {
			return nil, err
		}
	}

	assignment := &model.Assignment{
		SubjectID: subject.ID,
		StudentID: req.StudentID,
		Title:     req.AssignmentTitle,
		Type:      model.AssignmentType(req.AssignmentType),
		Status:    model.AssignmentGraded,
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	percentage := req.Percentage
	if percentage == nil && req.Points != nil && req.MaxPoints != nil && *req.MaxPoints > 0 {
		p := *req.Points / *req.MaxPoints * 100
		percentage = &p
	}
	letter := req.LetterGrade
	if letter == "" && percentage != nil {
		letter = grading.Letter(*percentage)
	}

	gradedDate := time.Now()
	if req.GradedDate != "" {
		gradedDate, err = time.Parse("2006-01-02", req.GradedDate)
		if err != nil {
			return nil, err
		}
	}

	grade := &model.Grade{
		AssignmentID: assignment.ID,
		StudentID:    req.StudentID,
		Score:        percentage,
		Percentage:   percentage,
		LetterGrade:  letter,
		Points:       req.Points,
		MaxPoints:    req.MaxPoints,
		Notes:        req.Notes,
		GradedDate:   &gradedDate,
	}
	if err := s.gradeRepo.Create(ctx, grade); err != nil {
		return nil, err
	}

	s.events.Publish(ctx, model.ChangeEvent{Entity: "grade", Action: "created", FamilyID: familyID, EntityID: grade.ID, StudentID: grade.StudentID})
	s.events.InvalidateDashboard(ctx, familyID)
	return s.gradeRepo.GetByID(ctx, familyID, grade.ID)
}

// Update modifies an existing grade. Empty request fields leave the stored
// values untouched; a new percentage without a letter grade re-derives the
// letter.
func (s *GradeService) Update(ctx context.Context, familyID, id int, req *model.UpdateGradeRequest) (*model.Grade, error) {
	grade, err := s.gradeRepo.GetByID(ctx, familyID, id)
	if err != nil {
		return nil, err
	}

	if req.Score != nil {
		grade.Score = req.Score
	}
	if req.Percentage != nil {
		grade.Percentage = req.Percentage
		if req.LetterGrade == "" {
			grade.LetterGrade = grading.Letter(*req.Percentage)
		}
	}
	if req.LetterGrade != "" {
		grade.LetterGrade = req.LetterGrade
	}
	if req.Points != nil {
		grade.Points = req.Points
	}
	if req.MaxPoints != nil {
		grade.MaxPoints = req.MaxPoints
	}
	if req.Notes != "" {
		grade.Notes = req.Notes
	}
	if req.GradedDate != "" {
		gradedDate, err := time.Parse("2006-01-02", req.GradedDate)
		if err != nil {
			return nil, err
		}
		grade.GradedDate = &gradedDate
	}

	if err := s.gradeRepo.Update(ctx, grade); err != nil {
		return nil, err
	}
	s.events.Publish(ctx, model.ChangeEvent{Entity: "grade", Action: "updated", FamilyID: familyID, EntityID: grade.ID, StudentID: grade.StudentID})
	s.events.InvalidateDashboard(ctx, familyID)
	return s.gradeRepo.GetByID(ctx, familyID, id)
}

// Delete removes a grade and its assignment. Returns false when the grade
// is not in the family.
func (s *GradeService) Delete(ctx context.Context, familyID, id int) (bool, error) {
	grade, err := s.gradeRepo.GetByID(ctx, familyID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	if err := s.gradeRepo.Delete(ctx, id); err != nil {
		return false, err
	}
	if err := s.assignmentRepo.Delete(ctx, grade.AssignmentID); err != nil {
		return false, err
	}
	s.events.Publish(ctx, model.ChangeEvent{Entity: "grade", Action: "deleted", FamilyID: familyID, EntityID: id, StudentID: grade.StudentID})
	s.events.InvalidateDashboard(ctx, familyID)
	return true, nil
}
