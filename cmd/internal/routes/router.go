package routes

import (
	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Appointments *DefaultAppointmentRoute
	Records      *DefaultRecordRoute
	Dashboard    *DefaultDashboardRoute
	Users        *DefaultUserRoute
}

// Register mounts every endpoint on e.
func Register(e *echo.Echo, h *Handlers) {
	e.GET("/health", h.Dashboard.Health)

	// Appointments
	e.GET("/api/appointments", h.Appointments.GetAppointments)
	e.POST("/api/appointments", h.Appointments.CreateAppointment)
	e.GET("/api/appointments/upcoming", h.Appointments.GetUpcoming)
	e.POST("/api/appointments/cancel/:id", h.Appointments.CancelAppointment)
	e.POST("/api/appointments/reschedule/:id", h.Appointments.RescheduleAppointment)
	e.POST("/api/appointments/:id/remind", h.Appointments.RemindAppointment)
	e.POST("/api/appointments/:id/complete", h.Appointments.CompleteAppointment)

	// Records
	e.GET("/api/records", h.Records.GetRecords)
	e.GET("/api/records/:id", h.Records.GetRecord)
	e.POST("/api/records", h.Records.CreateRecord)

	// Dashboard
	e.GET("/api/notifications", h.Dashboard.GetNotifications)
	e.GET("/api/alerts", h.Dashboard.GetAlerts)

	// Auth
	e.POST("/api/auth/login", h.Users.CreateLogin)
	e.GET("/api/auth/me", h.Users.GetMe)
}
