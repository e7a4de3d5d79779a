package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/homeroomhq/homeroom-backend/internal/config"
	"github.com/homeroomhq/homeroom-backend/internal/handler"
	"github.com/homeroomhq/homeroom-backend/internal/middleware"
	"github.com/homeroomhq/homeroom-backend/internal/response"
	"github.com/homeroomhq/homeroom-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Student    *handler.StudentHandler
	Attendance *handler.AttendanceHandler
	SchoolYear *handler.SchoolYearHandler
	Subject    *handler.SubjectHandler
	Lesson     *handler.LessonHandler
	Grade      *handler.GradeHandler
	Assessment *handler.AssessmentHandler
	Compliance *handler.ComplianceHandler
	Report     *handler.ReportHandler
	WS         *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for the login route (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/login", authLimiter.Middleware(), handlers.Auth.Login)
		auth.GET("/me", middleware.RequireGuardianJWT(authService), handlers.Auth.Me)
	}

	// ─── 2. Family API (Guardian JWT) ──────────────────────────────────
	api := router.Group("/api/v1")
	api.Use(middleware.RequireGuardianJWT(authService))
	{
		api.GET("/students", handlers.Student.GetAll)
		api.POST("/students", handlers.Student.Create)
		api.GET("/students/:id", handlers.Student.GetByID)
		api.PUT("/students/:id", handlers.Student.Update)
		api.DELETE("/students/:id", handlers.Student.Delete)
		api.GET("/students/:id/stats", handlers.Student.GetStats)
		api.GET("/students/:id/attendance", handlers.Student.GetAttendance)
		api.GET("/students/:id/grades", handlers.Student.GetGrades)
		api.GET("/students/:id/assessments", handlers.Student.GetAssessments)

		api.GET("/attendance", handlers.Attendance.GetAll)
		api.POST("/attendance", handlers.Attendance.Create)
		api.PUT("/attendance", handlers.Attendance.Update)
		api.DELETE("/attendance", handlers.Attendance.Delete)

		api.GET("/school-years", handlers.SchoolYear.GetAll)
		api.GET("/school-years/current", handlers.SchoolYear.GetCurrent)
		api.POST("/school-years", handlers.SchoolYear.Create)
		api.PUT("/school-years/:id", handlers.SchoolYear.Update)
		api.DELETE("/school-years/:id", handlers.SchoolYear.Delete)

		api.GET("/subjects", handlers.Subject.GetAll)
		api.POST("/subjects", handlers.Subject.Create)
		api.GET("/subjects/:id", handlers.Subject.GetByID)
		api.PUT("/subjects/:id", handlers.Subject.Update)
		api.DELETE("/subjects/:id", handlers.Subject.Delete)

		api.GET("/lessons", handlers.Lesson.GetAll)
		api.POST("/lessons", handlers.Lesson.Create)
		api.PUT("/lessons/:id", handlers.Lesson.Update)
		api.DELETE("/lessons/:id", handlers.Lesson.Delete)

		api.GET("/grades", handlers.Grade.GetAll)
		api.POST("/grades", handlers.Grade.Create)
		api.GET("/grades/:id", handlers.Grade.GetByID)
		api.PUT("/grades/:id", handlers.Grade.Update)
		api.DELETE("/grades/:id", handlers.Grade.Delete)

		api.GET("/assessments", handlers.Assessment.GetAll)
		api.POST("/assessments", handlers.Assessment.Create)
		api.PUT("/assessments/:id", handlers.Assessment.Update)
		api.DELETE("/assessments/:id", handlers.Assessment.Delete)

		api.GET("/compliance", handlers.Compliance.Get)
		api.PUT("/compliance/:id", handlers.Compliance.Update)

		api.GET("/reports/dashboard", handlers.Report.Dashboard)
		api.GET("/reports/calendar", middleware.CacheControl(60), handlers.Report.Calendar)
	}

	// ─── 3. WebSocket Group (Guardian WS Auth) ─────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireGuardianWSAuth(authService))
	{
		ws.GET("/events", handlers.WS.EventStream)
	}

	return router
}
