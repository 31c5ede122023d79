package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/table-reservation/internal/audit"
	"github.com/BruksfildServices01/table-reservation/internal/config"
	"github.com/BruksfildServices01/table-reservation/internal/handlers"
	"github.com/BruksfildServices01/table-reservation/internal/infra/archive"
	infraRepo "github.com/BruksfildServices01/table-reservation/internal/infra/repository"
	"github.com/BruksfildServices01/table-reservation/internal/infra/slotlock"
	"github.com/BruksfildServices01/table-reservation/internal/middleware"
	"github.com/BruksfildServices01/table-reservation/internal/models"
	ucReservation "github.com/BruksfildServices01/table-reservation/internal/usecase/reservation"
	ucTable "github.com/BruksfildServices01/table-reservation/internal/usecase/table"
)

// Infra carries the process wide collaborators built in main.
// Archiver is nil when exports are disabled.
type Infra struct {
	Audit    *audit.Dispatcher
	Locker   slotlock.Locker
	Archiver archive.Archiver
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, infra Infra) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigin))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)
	tableRepo := infraRepo.NewTableGormRepository(db)

	bookingLimiter := middleware.NewRateLimiter(cfg.BookingRatePerSec, cfg.BookingRateBurst)

	// ======================================================
	// USE CASES
	// ======================================================
	resolver := ucReservation.NewResolver(reservationRepo)

	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		resolver,
		infra.Locker,
		infra.Audit,
	)
	cancelReservationUC := ucReservation.NewCancelOwnReservation(reservationRepo, infra.Audit)
	listMyReservationsUC := ucReservation.NewListMyReservations(reservationRepo)

	listReservationsUC := ucReservation.NewListReservations(reservationRepo)
	adminCancelUC := ucReservation.NewAdminCancelReservation(reservationRepo, infra.Audit)
	adminDeleteUC := ucReservation.NewAdminDeleteReservation(reservationRepo, infra.Audit)
	exportUC := ucReservation.NewExportReservations(reservationRepo, infra.Archiver, infra.Audit)

	createTableUC := ucTable.NewCreateTable(tableRepo, infra.Audit)
	deleteTableUC := ucTable.NewDeleteTable(tableRepo, infra.Audit)
	listTablesUC := ucTable.NewListTables(tableRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, infra.Audit)
	meHandler := handlers.NewMeHandler(db)

	reservationHandler := handlers.NewReservationHandler(
		resolver,
		createReservationUC,
		cancelReservationUC,
		listMyReservationsUC,
		cfg.TimeSlots,
	)

	adminReservationHandler := handlers.NewAdminReservationHandler(
		listReservationsUC,
		adminCancelUC,
		adminDeleteUC,
		exportUC,
	)

	tableHandler := handlers.NewTableHandler(createTableUC, deleteTableUC, listTablesUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.AuthMiddleware(cfg), meHandler.GetMe)
		}

		// ------------------------------
		// RESERVATIONS (customer)
		// ------------------------------
		reservations := api.Group("/reservations")
		reservations.Use(middleware.AuthMiddleware(cfg))
		{
			reservations.GET("/available", reservationHandler.Available)
			reservations.GET("/tables-status", reservationHandler.TablesStatus)
			reservations.GET("/time-slots", reservationHandler.TimeSlots)
			reservations.GET("/me", reservationHandler.ListMine)
			reservations.POST("", bookingLimiter.Middleware(), reservationHandler.Create)
			reservations.DELETE("/:id", reservationHandler.Cancel)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/reservations", adminReservationHandler.List)
			admin.GET("/reservations/by-date", adminReservationHandler.ListByDate)
			admin.POST("/reservations/export", adminReservationHandler.Export)
			admin.PATCH("/reservations/:id/cancel", adminReservationHandler.Cancel)
			admin.DELETE("/reservations/:id", adminReservationHandler.Delete)

			admin.GET("/tables/all", tableHandler.List)
			admin.POST("/tables", tableHandler.Create)
			admin.DELETE("/tables/:id", tableHandler.Delete)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
