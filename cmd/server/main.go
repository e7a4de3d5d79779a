package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/homeroomhq/homeroom-backend/internal/config"
	"github.com/homeroomhq/homeroom-backend/internal/database"
	"github.com/homeroomhq/homeroom-backend/internal/handler"
	"github.com/homeroomhq/homeroom-backend/internal/logger"
	"github.com/homeroomhq/homeroom-backend/internal/repository"
	"github.com/homeroomhq/homeroom-backend/internal/router"
	"github.com/homeroomhq/homeroom-backend/internal/service"
	"github.com/homeroomhq/homeroom-backend/internal/validator"
	"github.com/homeroomhq/homeroom-backend/internal/worker"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Homeroom Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	familyRepo := repository.NewFamilyRepository(pool)
	guardianRepo := repository.NewGuardianRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	yearRepo := repository.NewSchoolYearRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	lessonRepo := repository.NewLessonRepository(pool)
	assignmentRepo := repository.NewAssignmentRepository(pool)
	gradeRepo := repository.NewGradeRepository(pool)
	assessmentRepo := repository.NewAssessmentRepository(pool)
	complianceRepo := repository.NewComplianceRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, guardianRepo, familyRepo)
	eventService := service.NewEventService(rdb, log)
	yearService := service.NewSchoolYearService(cfg, yearRepo, log)
	studentService := service.NewStudentService(studentRepo, attendanceRepo, gradeRepo, assignmentRepo, yearService, eventService)
	attendanceService := service.NewAttendanceService(cfg, attendanceRepo, studentRepo, eventService)
	subjectService := service.NewSubjectService(subjectRepo, lessonRepo, yearRepo, eventService)
	gradeService := service.NewGradeService(gradeRepo, assignmentRepo, subjectRepo, studentRepo, yearService, eventService)
	assessmentService := service.NewAssessmentService(assessmentRepo, studentRepo, eventService)
	complianceService := service.NewComplianceService(complianceRepo, attendanceRepo, yearRepo)
	reportService := service.NewReportService(rdb, studentRepo, attendanceRepo, gradeRepo, assignmentRepo, yearService, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Student:    handler.NewStudentHandler(studentService, attendanceService, gradeService, assessmentService),
		Attendance: handler.NewAttendanceHandler(attendanceService),
		SchoolYear: handler.NewSchoolYearHandler(yearService),
		Subject:    handler.NewSubjectHandler(subjectService),
		Lesson:     handler.NewLessonHandler(subjectService),
		Grade:      handler.NewGradeHandler(gradeService),
		Assessment: handler.NewAssessmentHandler(assessmentService),
		Compliance: handler.NewComplianceHandler(complianceService),
		Report:     handler.NewReportHandler(reportService),
		WS:         handler.NewWSHandler(rdb, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	complianceWorker := worker.NewComplianceWorker(attendanceRepo, yearRepo, complianceRepo, rdb, log)
	go complianceWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the worker and wait for the queue to drain.
	workerCancel()
	time.Sleep(2 * time.Second) // Allow the worker to drain.

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
