package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gcbs/appointment-system/internal/api/handler"
	"github.com/gcbs/appointment-system/internal/api/middleware"
	"github.com/gcbs/appointment-system/internal/core/domain"
	"github.com/gcbs/appointment-system/internal/core/service"
	mongodb "github.com/gcbs/appointment-system/internal/infrastructure/db/mongo"
	redisdb "github.com/gcbs/appointment-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// recorder receives lifecycle events for the audit trail; pass nil to disable.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, recorder service.Recorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("appointments"))

	// --- Dependencies ---
	profileRepo := mongodb.NewProfileRepository(db)
	availabilityRepo := mongodb.NewAvailabilityRepository(db)
	appointmentRepo := mongodb.NewAppointmentRepository(db)
	slotGuard := redisdb.NewSlotGuard(rdb)

	authService := service.NewAuthService(profileRepo, jwtSecret, 24*time.Hour)
	scheduleService := service.NewScheduleService(availabilityRepo, appointmentRepo, log)
	bookingService := service.NewBookingService(appointmentRepo, availabilityRepo, profileRepo, slotGuard, recorder, log)

	authHandler := handler.NewAuthHandler(authService)
	availabilityHandler := handler.NewAvailabilityHandler(scheduleService)
	appointmentHandler := handler.NewAppointmentHandler(bookingService)

	authMiddleware := middleware.Auth(jwtSecret)
	studentOnly := middleware.RBAC(domain.RoleStudent)
	lecturerOnly := middleware.RBAC(domain.RoleLecturer)
	anyRole := middleware.RBAC(domain.RoleStudent, domain.RoleLecturer)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authMiddleware)

	v1.GET("/profile", authHandler.Profile, anyRole)
	v1.PUT("/profile", authHandler.UpdateProfile, anyRole)

	v1.PUT("/availability/:date", availabilityHandler.Set, lecturerOnly)
	v1.GET("/availability/:date", availabilityHandler.Get, lecturerOnly)

	// Slot reads are open to any authenticated caller; a lecturer may
	// preview their own student-facing slot list.
	v1.GET("/lecturers", authHandler.Lecturers, anyRole)
	v1.GET("/lecturers/:id/slots", availabilityHandler.Slots, anyRole)

	v1.POST("/appointments", appointmentHandler.Create, studentOnly)
	v1.GET("/appointments", appointmentHandler.List, anyRole)
	v1.POST("/appointments/:id/accept", appointmentHandler.Accept, lecturerOnly)
	v1.POST("/appointments/:id/decline", appointmentHandler.Decline, lecturerOnly)
	v1.POST("/appointments/:id/cancel", appointmentHandler.Cancel, studentOnly)
	v1.DELETE("/appointments/:id", appointmentHandler.Delete, studentOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
