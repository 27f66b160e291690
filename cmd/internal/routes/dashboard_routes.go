package routes

import (
	"clinicdesk/cmd/internal/service"
	"clinicdesk/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
	"net/http"
)

type NotificationService interface {
	GetNotifications() ([]*service.NotificationResponse, apierror.ErrorResponse)
}

type AlertService interface {
	GetAlerts() ([]string, apierror.ErrorResponse)
}

// DefaultDashboardRoute serves the read-only views the dashboard polls.
type DefaultDashboardRoute struct {
	NotificationService NotificationService
	AlertService        AlertService
}

func NewDashboardDefault(notifService NotificationService, alertService AlertService) *DefaultDashboardRoute {
	return &DefaultDashboardRoute{NotificationService: notifService, AlertService: alertService}
}

func (d *DefaultDashboardRoute) GetNotifications(c echo.Context) error {
	list, apierr := d.NotificationService.GetNotifications()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, list)
}

func (d *DefaultDashboardRoute) GetAlerts(c echo.Context) error {
	alerts, apierr := d.AlertService.GetAlerts()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, alerts)
}

func (d *DefaultDashboardRoute) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
