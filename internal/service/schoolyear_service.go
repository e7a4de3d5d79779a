package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/homeroomhq/homeroom-backend/internal/config"
	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/homeroomhq/homeroom-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// SchoolYearService handles school year lifecycle and resolution.
type SchoolYearService struct {
	cfg      *config.Config
	yearRepo *repository.SchoolYearRepository
	log      zerolog.Logger
}

// NewSchoolYearService creates a new SchoolYearService.
func NewSchoolYearService(cfg *config.Config, yearRepo *repository.SchoolYearRepository, log zerolog.Logger) *SchoolYearService {
	return &SchoolYearService{
		cfg:      cfg,
		yearRepo: yearRepo,
		log:      log.With().Str("component", "school_year_service").Logger(),
	}
}

func (s *SchoolYearService) List(ctx context.Context, familyID int) ([]model.SchoolYear, error) {
	return s.yearRepo.List(ctx, familyID)
}

func (s *SchoolYearService) GetByID(ctx context.Context, familyID, id int) (*model.SchoolYear, error) {
	return s.yearRepo.GetByID(ctx, familyID, id)
}

func (s *SchoolYearService) Create(ctx context.Context, y *model.SchoolYear) error {
	if y.DaysRequired == 0 {
		y.DaysRequired = s.cfg.RequiredDays
	}
	return s.yearRepo.Create(ctx, y)
}

func (s *SchoolYearService) Update(ctx context.Context, y *model.SchoolYear) error {
	return s.yearRepo.Update(ctx, y)
}

func (s *SchoolYearService) Delete(ctx context.Context, familyID, id int) (bool, error) {
	return s.yearRepo.Delete(ctx, familyID, id)
}

// Current resolves the family's active school year: the one containing
// today, else the most recent, else a lazily created default year.
func (s *SchoolYearService) Current(ctx context.Context, familyID int) (*model.SchoolYear, error) {
	now := time.Now()

	year, err := s.yearRepo.GetContaining(ctx, familyID, now)
	if err == nil {
		return year, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	year, err = s.yearRepo.GetMostRecent(ctx, familyID)
	if err == nil {
		return year, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	label, start, end := AcademicYearSpan(now)
	year = &model.SchoolYear{
		FamilyID:     familyID,
		YearLabel:    label,
		StartDate:    start,
		EndDate:      end,
		DaysRequired: s.cfg.RequiredDays,
	}
	if err := s.yearRepo.Create(ctx, year); err != nil {
		return nil, err
	}

	s.log.Info().
		Int("family_id", familyID).
		Str("year_label", label).
		Msg("Created default school year")

	return year, nil
}

// AcademicYearSpan returns the label and Aug 15 – May 31 bounds of the
// academic year containing now. July and later belong to the new year.
func AcademicYearSpan(now time.Time) (string, time.Time, time.Time) {
	startYear := now.Year()
	if now.Month() < time.July {
		startYear--
	}
	label := fmt.Sprintf("%d-%d", startYear, startYear+1)
	start := time.Date(startYear, time.August, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(startYear+1, time.May, 31, 0, 0, 0, 0, time.UTC)
	return label, start, end
}
