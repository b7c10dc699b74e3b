package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NavalhaDigital/booking-api/internal/audit"
	"github.com/NavalhaDigital/booking-api/internal/config"
	"github.com/NavalhaDigital/booking-api/internal/handlers"
	infraRepo "github.com/NavalhaDigital/booking-api/internal/infra/repository"
	"github.com/NavalhaDigital/booking-api/internal/middleware"
	ucBooking "github.com/NavalhaDigital/booking-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	writeLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
	)

	queryBookingsUC := ucBooking.NewQueryBookings(
		bookingRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	professionalHandler := handlers.NewProfessionalHandler(db, auditDispatcher)
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		queryBookingsUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	bookingWebHandler := handlers.NewBookingWebHandler(db)
	adminWebHandler := handlers.NewAdminWebHandler(db)

	// ======================================================
	// 🚫 405 (Allow por rota)
	// ======================================================
	r.HandleMethodNotAllowed = true
	r.NoMethod(handlers.MethodNotAllowed)

	// ======================================================
	// 🌐 API PÚBLICA (contrato do app de agendamento)
	// ======================================================
	r.GET("/services", serviceHandler.List)

	r.GET("/professionals", professionalHandler.List)
	r.POST("/professionals", writeLimiter.Middleware(), professionalHandler.Create)

	r.GET("/bookings", bookingHandler.List)
	r.POST("/bookings", writeLimiter.Middleware(), bookingHandler.Create)

	// Mutação de catálogo é do painel: exige login.
	secured := middleware.AuthMiddleware(cfg)
	r.POST("/services", secured, serviceHandler.Create)
	r.PATCH("/services/:id", secured, serviceHandler.Update)

	// ======================================================
	// 🌍 ROTAS WEB (HTML)
	// ======================================================
	r.GET("/web/booking", bookingWebHandler.ShowBookingPage)

	webAdmin := r.Group("/web/admin")
	{
		webAdmin.GET("/login", adminWebHandler.LoginPage)
		webAdmin.GET("/dashboard", adminWebHandler.Dashboard)
		webAdmin.GET("/appointments", adminWebHandler.Appointments)
		webAdmin.GET("/services", adminWebHandler.Services)
		webAdmin.GET("/professionals", adminWebHandler.Professionals)
		webAdmin.GET("/schedule", adminWebHandler.Schedule)
	}

	// ======================================================
	// 🔐 API ADMIN (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		admin := api.Group("/admin")
		admin.Use(secured)
		{
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
