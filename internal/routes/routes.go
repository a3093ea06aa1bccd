package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/events"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucAdmin "github.com/BruksfildServices01/barber-booking/internal/usecase/admin"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// Deps are the process-wide singletons the routes are built from.
type Deps struct {
	Store    domain.Store
	Bus      events.Bus
	Issuer   *auth.Issuer
	Audit    *audit.Dispatcher
	Metrics  *metrics.Metrics
	Log      *slog.Logger
	Location *time.Location
	Now      func() time.Time

	// Requests per second per client on booking and login. Zero disables.
	RateLimit float64
}

func (d Deps) BookingDeps() ucBooking.Deps {
	return ucBooking.Deps{
		Store:    d.Store,
		Audit:    d.Audit,
		Bus:      d.Bus,
		Metrics:  d.Metrics,
		Log:      d.Log,
		Location: d.Location,
		Now:      d.Now,
	}
}

func (d Deps) AdminDeps() ucAdmin.Deps {
	return ucAdmin.Deps{
		Store:    d.Store,
		Issuer:   d.Issuer,
		Audit:    d.Audit,
		Bus:      d.Bus,
		Log:      d.Log,
		Location: d.Location,
		Now:      d.Now,
	}
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.Observe(d.Metrics, d.Log))
	r.Use(middleware.CORSMiddleware())

	limiter := middleware.NewRateLimiter(d.RateLimit, 3)

	// ======================================================
	// USE CASES
	// ======================================================
	bd := d.BookingDeps()
	commitUC := ucBooking.NewCommitBooking(bd)
	cancelUC := ucBooking.NewCancelBooking(bd)
	rescheduleUC := ucBooking.NewRescheduleBooking(bd)
	slotsUC := ucBooking.NewGetSlots(bd)
	historyUC := ucBooking.NewCustomerHistory(bd)
	listUC := ucBooking.NewListBookings(bd)
	customersUC := ucBooking.NewCustomers(bd)

	ad := d.AdminDeps()
	settingsUC := ucAdmin.NewSettings(ad)
	scheduleUC := ucAdmin.NewSchedule(ad)
	blockedUC := ucAdmin.NewBlockedDates(ad)
	catalogUC := ucAdmin.NewCatalog(ad)
	auditUC := ucAdmin.NewAuditLogs(ad)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(catalogUC, scheduleUC, settingsUC, slotsUC)
	bookingHandler := handlers.NewBookingHandler(commitUC, cancelUC, historyUC, customersUC)
	liveHandler := handlers.NewLiveHandler(slotsUC, d.Bus, d.Metrics, d.Log)

	authHandler := handlers.NewAuthHandler(settingsUC)
	scheduleHandler := handlers.NewScheduleHandler(scheduleUC)
	blockedHandler := handlers.NewBlockedDatesHandler(blockedUC)
	adminBookingHandler := handlers.NewAdminBookingHandler(listUC, rescheduleUC, cancelUC)
	catalogHandler := handlers.NewCatalogHandler(catalogUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditUC, d.Location)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	r.GET("/ws/slots", liveHandler.Slots)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/barbers", publicHandler.Barbers)
		api.GET("/services", publicHandler.Services)
		api.GET("/schedule", publicHandler.Schedule)
		api.GET("/status", publicHandler.Status)
		api.GET("/slots", publicHandler.Slots)

		api.POST("/bookings", limiter.Limit(), bookingHandler.Create)
		api.DELETE("/bookings/:id", bookingHandler.Cancel)

		api.GET("/me", bookingHandler.Me)
		api.GET("/customers/:phone", bookingHandler.Customer)
		api.GET("/customers/:phone/bookings", bookingHandler.History)
		api.PUT("/customers/:phone/notifications", bookingHandler.SetNotifications)

		// ------------------------------
		// ADMIN
		// ------------------------------
		api.POST("/admin/login", limiter.Limit(), authHandler.Login)

		secured := api.Group("/admin")
		secured.Use(middleware.AdminAuth(d.Issuer))
		{
			secured.GET("/settings", authHandler.Settings)
			secured.PUT("/settings/vacation", authHandler.SetVacation)
			secured.PUT("/settings/passphrase", authHandler.ChangePassphrase)

			secured.PUT("/schedule", scheduleHandler.Replace)
			secured.POST("/schedule/days/:weekday/toggle", scheduleHandler.ToggleDay)
			secured.PUT("/schedule/days/:weekday/hours", scheduleHandler.SetHours)
			secured.POST("/schedule/days/:weekday/breaks", scheduleHandler.AddBreak)
			secured.DELETE("/schedule/days/:weekday/breaks/:index", scheduleHandler.RemoveBreak)
			secured.PUT("/schedule/slot-duration", scheduleHandler.SetSlotDuration)
			secured.PUT("/schedule/buffer-time", scheduleHandler.SetBufferTime)

			secured.GET("/blocked-dates", blockedHandler.List)
			secured.POST("/blocked-dates", blockedHandler.Block)
			secured.DELETE("/blocked-dates/:id", blockedHandler.Unblock)

			secured.GET("/bookings", adminBookingHandler.List)
			secured.PATCH("/bookings/:id", adminBookingHandler.Reschedule)
			secured.DELETE("/bookings/:id", adminBookingHandler.Delete)

			secured.POST("/barbers", catalogHandler.CreateBarber)
			secured.PUT("/barbers/:id", catalogHandler.UpdateBarber)
			secured.DELETE("/barbers/:id", catalogHandler.DeleteBarber)

			secured.POST("/services", catalogHandler.CreateService)
			secured.PUT("/services/:id", catalogHandler.UpdateService)
			secured.DELETE("/services/:id", catalogHandler.DeleteService)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
