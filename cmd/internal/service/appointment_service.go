package service

import (
	"clinicdesk/cmd/internal/domain/entity"
	"clinicdesk/cmd/internal/utils"
	"clinicdesk/cmd/internal/utils/apierror"
	"clinicdesk/cmd/internal/utils/clock"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"sync"
	"time"
)

type AppointmentRepository interface {
	FindAll() ([]*entity.Appointment, error)
	FindByID(id int) (*entity.Appointment, error)
	NextID() (int, error)
	Save(appointment *entity.Appointment) error
}

// Notifier appends an entry to the notification log.
type Notifier interface {
	Notify(kind entity.NotificationType, message string) error
}

type AppointmentRequest struct {
	Patient    string `json:"patient" validate:"required"`
	Doctor     string `json:"doctor" validate:"required"`
	Department string `json:"department" validate:"required"`
	Time       string `json:"time" validate:"required" sanitize:"-"`
	Duration   int    `json:"duration"`
	Notes      string `json:"notes"`
	Status     string `json:"status" validate:"omitempty,oneof=booked canceled completed"`
}

type RescheduleRequest struct {
	NewTime string `json:"newTime" sanitize:"-"`
}

type AppointmentResponse struct {
	ID           int    `json:"id"`
	Patient      string `json:"patient"`
	Doctor       string `json:"doctor"`
	Department   string `json:"department"`
	Time         string `json:"time"`
	Duration     int    `json:"duration"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
	ReminderSent bool   `json:"reminderSent"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// DefaultAppointmentService is the appointment lifecycle engine. Every
// check-then-mutate sequence, including the reminder sweep, runs under mu so
// request handlers and the background worker never interleave.
type DefaultAppointmentService struct {
	AppointmentRepo AppointmentRepository
	Notifier        Notifier
	Validate        *validator.Validate
	Clock           clock.Clock

	mu sync.Mutex
}

func NewAppointmentService(apptRepo AppointmentRepository, notifier Notifier, validate *validator.Validate, clk clock.Clock) *DefaultAppointmentService {
	return &DefaultAppointmentService{AppointmentRepo: apptRepo, Notifier: notifier, Validate: validate, Clock: clk}
}

func (a *DefaultAppointmentService) GetAppointments() ([]*AppointmentResponse, apierror.ErrorResponse) {
	appts, err := a.AppointmentRepo.FindAll()
	if err != nil {
		log.Errorf("failed to find appointments: %v", err)
		return nil, apierror.InternalServerError
	}

	response := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		response[i] = toAppointmentResponse(appt)
	}
	return response, nil
}

// GetUpcoming lists non-canceled appointments starting within the next 24 hours.
func (a *DefaultAppointmentService) GetUpcoming() ([]*AppointmentResponse, apierror.ErrorResponse) {
	appts, err := a.AppointmentRepo.FindAll()
	if err != nil {
		log.Errorf("failed to find appointments: %v", err)
		return nil, apierror.InternalServerError
	}

	now := a.Clock.Now()
	response := make([]*AppointmentResponse, 0)
	for _, appt := range appts {
		if appt.Status == entity.StatusCanceled {
			continue
		}
		if isWithinNextDay(appt.Time, now) {
			response = append(response, toAppointmentResponse(appt))
		}
	}
	return response, nil
}

// CreateAppointment books a new appointment. No conflict check is made here;
// only Reschedule guards against double booking.
func (a *DefaultAppointmentService) CreateAppointment(req *AppointmentRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := a.AppointmentRepo.NextID()
	if err != nil {
		log.Errorf("failed to compute next appointment id: %v", err)
		return nil, apierror.InternalServerError
	}

	status := entity.StatusBooked
	if req.Status != "" {
		status = entity.AppointmentStatus(req.Status)
	}

	appointment := &entity.Appointment{
		ID:         id,
		Patient:    req.Patient,
		Doctor:     req.Doctor,
		Department: req.Department,
		Time:       req.Time,
		Duration:   req.Duration,
		Status:     status,
		Notes:      req.Notes,
		CreatedAt:  a.Clock.Now().UnixMilli(),
	}

	if err := a.AppointmentRepo.Save(appointment); err != nil {
		log.Errorf("failed to save appointment: %v", err)
		return nil, apierror.InternalServerError
	}

	a.notify(entity.NotificationSystem, fmt.Sprintf("New appointment created for %s", appointment.Patient))
	return toAppointmentResponse(appointment), nil
}

// CancelAppointment is idempotent: canceling a canceled appointment succeeds.
func (a *DefaultAppointmentService) CancelAppointment(id int) apierror.ErrorResponse {
	return a.setStatus(id, entity.StatusCanceled, fmt.Sprintf("Appointment #%d was canceled", id))
}

func (a *DefaultAppointmentService) CompleteAppointment(id int) apierror.ErrorResponse {
	return a.setStatus(id, entity.StatusCompleted, fmt.Sprintf("Appointment #%d completed", id))
}

// RescheduleAppointment moves an appointment to req.NewTime unless another
// non-canceled appointment holds exactly that time string. A successful move
// always leaves the appointment booked, even if it was canceled or completed.
func (a *DefaultAppointmentService) RescheduleAppointment(id int, req *RescheduleRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if req.NewTime == "" {
		return apierror.NewMissingParamError("newTime")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	appt, apierr := a.findAppointment(id)
	if apierr != nil {
		return apierr
	}

	appts, err := a.AppointmentRepo.FindAll()
	if err != nil {
		log.Errorf("failed to load appointments for conflict check: %v", err)
		return apierror.InternalServerError
	}

	if HasConflict(appts, req.NewTime, id) {
		return apierror.ConflictError
	}

	if appt.Status != entity.StatusBooked {
		log.Infof("appointment %d revived from %s by reschedule", id, appt.Status)
	}
	appt.Time = req.NewTime
	appt.Status = entity.StatusBooked

	if err := a.AppointmentRepo.Save(appt); err != nil {
		log.Errorf("failed to reschedule appointment %d: %v", id, err)
		return apierror.InternalServerError
	}

	a.notify(entity.NotificationSystem, fmt.Sprintf("Appointment #%d rescheduled", id))
	return nil
}

// RemindAppointment sends a manual reminder. It never touches ReminderSent,
// which belongs to the automatic sweep, and may be repeated freely.
func (a *DefaultAppointmentService) RemindAppointment(id int) apierror.ErrorResponse {
	appt, apierr := a.findAppointment(id)
	if apierr != nil {
		return apierr
	}

	a.notify(entity.NotificationReminder, fmt.Sprintf("Reminder sent for appointment for %s", appt.Patient))
	return nil
}

func (a *DefaultAppointmentService) setStatus(id int, status entity.AppointmentStatus, message string) apierror.ErrorResponse {
	a.mu.Lock()
	defer a.mu.Unlock()

	appt, apierr := a.findAppointment(id)
	if apierr != nil {
		return apierr
	}

	appt.Status = status
	if err := a.AppointmentRepo.Save(appt); err != nil {
		log.Errorf("failed to set appointment %d to %s: %v", id, status, err)
		return apierror.InternalServerError
	}

	a.notify(entity.NotificationSystem, message)
	return nil
}

func (a *DefaultAppointmentService) findAppointment(id int) (*entity.Appointment, apierror.ErrorResponse) {
	appt, err := a.AppointmentRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch appointment by id %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if appt == nil {
		return nil, apierror.NotFoundError
	}
	return appt, nil
}

// notify never fails the caller: the mutation it reports is already stored.
func (a *DefaultAppointmentService) notify(kind entity.NotificationType, message string) {
	if err := a.Notifier.Notify(kind, message); err != nil {
		log.Errorf("failed to record notification %q: %v", message, err)
	}
}

func isWithinNextDay(raw string, now time.Time) bool {
	t, err := utils.ParseClinicTime(raw, now.Location())
	if err != nil {
		return false
	}
	diff := t.Sub(now)
	return diff > 0 && diff <= upcomingWindow
}

func toAppointmentResponse(appt *entity.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:           appt.ID,
		Patient:      appt.Patient,
		Doctor:       appt.Doctor,
		Department:   appt.Department,
		Time:         appt.Time,
		Duration:     appt.Duration,
		Status:       string(appt.Status),
		Notes:        appt.Notes,
		ReminderSent: appt.ReminderSent,
	}
	if appt.CreatedAt != 0 {
		resp.CreatedAt = utils.FormatEpoch(appt.CreatedAt)
	}
	return resp
}
