package routes

import (
	"clinicdesk/cmd/internal/service"
	"clinicdesk/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
	"net/http"
	"strconv"
)

type AppointmentService interface {
	GetAppointments() ([]*service.AppointmentResponse, apierror.ErrorResponse)
	GetUpcoming() ([]*service.AppointmentResponse, apierror.ErrorResponse)
	CreateAppointment(req *service.AppointmentRequest) (*service.AppointmentResponse, apierror.ErrorResponse)
	CancelAppointment(id int) apierror.ErrorResponse
	CompleteAppointment(id int) apierror.ErrorResponse
	RescheduleAppointment(id int, req *service.RescheduleRequest) apierror.ErrorResponse
	RemindAppointment(id int) apierror.ErrorResponse
}

type DefaultAppointmentRoute struct {
	AppointmentService AppointmentService
}

func NewAppointmentDefault(apptService AppointmentService) *DefaultAppointmentRoute {
	return &DefaultAppointmentRoute{AppointmentService: apptService}
}

func (a *DefaultAppointmentRoute) GetAppointments(c echo.Context) error {
	appts, apierr := a.AppointmentService.GetAppointments()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, appts)
}

func (a *DefaultAppointmentRoute) GetUpcoming(c echo.Context) error {
	appts, apierr := a.AppointmentService.GetUpcoming()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, appts)
}

func (a *DefaultAppointmentRoute) CreateAppointment(c echo.Context) error {
	var req service.AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, apierror.MalformedBodyError)
	}

	appt, apierr := a.AppointmentService.CreateAppointment(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, appt)
}

func (a *DefaultAppointmentRoute) CancelAppointment(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if serr := a.AppointmentService.CancelAppointment(id); serr != nil {
		return c.JSON(serr.Code(), serr)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

func (a *DefaultAppointmentRoute) CompleteAppointment(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if serr := a.AppointmentService.CompleteAppointment(id); serr != nil {
		return c.JSON(serr.Code(), serr)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

func (a *DefaultAppointmentRoute) RescheduleAppointment(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	// An absent body is treated like a body without newTime.
	var req service.RescheduleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, apierror.MalformedBodyError)
	}

	if serr := a.AppointmentService.RescheduleAppointment(id, &req); serr != nil {
		return c.JSON(serr.Code(), serr)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

func (a *DefaultAppointmentRoute) RemindAppointment(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if serr := a.AppointmentService.RemindAppointment(id); serr != nil {
		return c.JSON(serr.Code(), serr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func parseID(c echo.Context) (int, apierror.ErrorResponse) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apierror.NewInvalidParamTypeError("id", "int")
	}
	return id, nil
}
