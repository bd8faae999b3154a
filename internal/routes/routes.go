package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Omralejandro22/luxury-nails-backend/internal/audit"
	"github.com/Omralejandro22/luxury-nails-backend/internal/cache"
	"github.com/Omralejandro22/luxury-nails-backend/internal/config"
	"github.com/Omralejandro22/luxury-nails-backend/internal/handlers"
	infraRepo "github.com/Omralejandro22/luxury-nails-backend/internal/infra/repository"
	"github.com/Omralejandro22/luxury-nails-backend/internal/middleware"
	"github.com/Omralejandro22/luxury-nails-backend/internal/models"
	"github.com/Omralejandro22/luxury-nails-backend/internal/monitoring"
	ucBooking "github.com/Omralejandro22/luxury-nails-backend/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var availabilityCache ucBooking.AvailabilityCache
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedisAvailability(cfg.RedisAddr)
		if err != nil {
			log.Printf("availability cache disabled: %v", err)
		} else {
			availabilityCache = redisCache
		}
	}

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	bookUC := ucBooking.NewBookAppointment(bookingRepo, auditDispatcher, availabilityCache)
	walkInUC := ucBooking.NewBookWalkIn(bookingRepo, auditDispatcher, availabilityCache)
	editUC := ucBooking.NewEditAppointment(bookingRepo, auditDispatcher, availabilityCache)
	setStatusUC := ucBooking.NewSetStatus(bookingRepo, auditDispatcher, availabilityCache)
	cancelUC := ucBooking.NewCancelAppointment(bookingRepo, auditDispatcher, availabilityCache)
	listUC := ucBooking.NewListAppointments(bookingRepo)
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo, availabilityCache)
	occupancyUC := ucBooking.NewGetMonthOccupancy(bookingRepo)
	addReviewUC := ucBooking.NewAddReview(bookingRepo, auditDispatcher)
	listReviewsUC := ucBooking.NewListReviews(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	serviceHandler := handlers.NewServiceHandler(db)
	reviewHandler := handlers.NewReviewHandler(addReviewUC, listReviewsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		walkInUC,
		editUC,
		setStatusUC,
		cancelUC,
		listUC,
		availabilityUC,
		occupancyUC,
	)

	// ======================================================
	// METRICS
	// ======================================================
	r.GET("/metrics", gin.WrapH(monitoring.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)
		api.GET("/appointments/availability", appointmentHandler.Availability)
		api.GET("/appointments/occupancy", appointmentHandler.Occupancy)

		// ------------------------------
		// CLIENT
		// ------------------------------
		client := api.Group("/")
		client.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleClient))
		{
			client.POST("/appointments", appointmentHandler.Create)
			client.GET("/appointments/me", appointmentHandler.ListMine)
			client.PUT("/appointments/:id/cancel", appointmentHandler.Cancel)
			client.POST("/appointments/:id/review", reviewHandler.Add)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleAdmin))
		{
			admin.POST("/services", serviceHandler.Create)
			admin.PUT("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.GET("/staff", authHandler.ListStaff)

			admin.GET("/appointments", appointmentHandler.ListAll)
			admin.POST("/appointments/walkin", appointmentHandler.CreateWalkIn)
			admin.PUT("/appointments/:id", appointmentHandler.Update)
			admin.PUT("/appointments/:id/status", appointmentHandler.UpdateStatus)

			admin.GET("/reviews", reviewHandler.ListAll)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
