package main

import (
	"context"
	"fmt"
	"time"

	"github.com/homeroomhq/homeroom-backend/internal/config"
	"github.com/homeroomhq/homeroom-backend/internal/database"
	"github.com/homeroomhq/homeroom-backend/internal/logger"
	"github.com/homeroomhq/homeroom-backend/internal/model"
	"github.com/homeroomhq/homeroom-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo family with two students, a school year, five subjects, and
// ten weekdays of attendance so a fresh install has something to look at.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	familyRepo := repository.NewFamilyRepository(pool)
	guardianRepo := repository.NewGuardianRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	yearRepo := repository.NewSchoolYearRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)

	fmt.Println("=== Seeding Demo Family ===")

	family := &model.Family{Name: "Johnson Homeschool", State: "TN"}
	if err := familyRepo.Create(ctx, family); err != nil {
		log.Fatal().Err(err).Msg("Failed to create family")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("homeroom-demo"), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}
	guardian := &model.Guardian{
		FamilyID:     family.ID,
		Name:         "Sarah Johnson",
		Email:        "sarah@example.com",
		PasswordHash: string(hash),
	}
	if err := guardianRepo.Create(ctx, guardian); err != nil {
		log.Fatal().Err(err).Msg("Failed to create guardian")
	}

	now := time.Now().UTC()
	startYear := now.Year()
	if now.Month() < time.July {
		startYear--
	}
	year := &model.SchoolYear{
		FamilyID:     family.ID,
		YearLabel:    fmt.Sprintf("%d-%d", startYear, startYear+1),
		StartDate:    time.Date(startYear, time.August, 15, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(startYear+1, time.May, 31, 0, 0, 0, 0, time.UTC),
		DaysRequired: cfg.RequiredDays,
	}
	if err := yearRepo.Create(ctx, year); err != nil {
		log.Fatal().Err(err).Msg("Failed to create school year")
	}

	students := []*model.Student{
		{
			FamilyID:       family.ID,
			FirstName:      "Emma",
			LastName:       "Johnson",
			BirthDate:      time.Date(2016, time.May, 15, 0, 0, 0, 0, time.UTC),
			GradeLevel:     "3",
			EnrollmentDate: year.StartDate,
		},
		{
			FamilyID:       family.ID,
			FirstName:      "Liam",
			LastName:       "Johnson",
			BirthDate:      time.Date(2018, time.September, 22, 0, 0, 0, 0, time.UTC),
			GradeLevel:     "1",
			EnrollmentDate: year.StartDate,
		},
	}
	for _, st := range students {
		if err := studentRepo.Create(ctx, st); err != nil {
			log.Fatal().Err(err).Msg("Failed to create student")
		}
	}

	for _, name := range []string{"Math", "Reading", "Science", "History", "Art"} {
		subject := &model.Subject{
			SchoolYearID: year.ID,
			Name:         name,
			Curriculum:   name + " curriculum following TGTB standards",
		}
		if err := subjectRepo.Create(ctx, subject); err != nil {
			log.Fatal().Err(err).Msg("Failed to create subject")
		}
	}

	// Last 10 weekdays of attendance, newest first.
	hours := []float64{4, 3}
	seeded := 0
	for i := 0; seeded < 10; i++ {
		date := now.AddDate(0, 0, -i).Truncate(24 * time.Hour)
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			continue
		}
		for n, st := range students {
			rec := &model.AttendanceRecord{
				StudentID:    st.ID,
				SchoolYearID: year.ID,
				Date:         date,
				Status:       model.AttendancePresent,
				Hours:        hours[n],
				Notes:        fmt.Sprintf("Day %d - steady progress", seeded+1),
			}
			if err := attendanceRepo.Create(ctx, rec); err != nil {
				log.Fatal().Err(err).Msg("Failed to create attendance record")
			}
		}
		seeded++
	}

	fmt.Println("Seeded family 'Johnson Homeschool' (login sarah@example.com / homeroom-demo)")
	fmt.Println("Students: Emma (grade 3), Liam (grade 1); 5 subjects; 10 weekdays of attendance")
}
