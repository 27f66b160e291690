package service

import (
	"clinicdesk/cmd/internal/domain/entity"
	"clinicdesk/cmd/internal/utils"
	"clinicdesk/cmd/internal/utils/apierror"
	"clinicdesk/cmd/internal/utils/clock"
	"fmt"
	"github.com/labstack/gommon/log"
	"github.com/samber/lo"
	"time"
)

const (
	overBookingThreshold = 3
	followUpAfter        = 365 * 24 * time.Hour
	upcomingWindow       = 24 * time.Hour

	NoAlertsMessage = "No current alerts."
)

type AppointmentLister interface {
	FindAll() ([]*entity.Appointment, error)
}

type RecordLister interface {
	FindAll() ([]*entity.PatientRecord, error)
}

type DefaultAlertService struct {
	AppointmentRepo AppointmentLister
	RecordRepo      RecordLister
	Clock           clock.Clock
}

func NewAlertService(apptRepo AppointmentLister, recordRepo RecordLister, clk clock.Clock) *DefaultAlertService {
	return &DefaultAlertService{AppointmentRepo: apptRepo, RecordRepo: recordRepo, Clock: clk}
}

func (s *DefaultAlertService) GetAlerts() ([]string, apierror.ErrorResponse) {
	appts, err := s.AppointmentRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch appointments for alerts: %v", err)
		return nil, apierror.InternalServerError
	}

	records, err := s.RecordRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch records for alerts: %v", err)
		return nil, apierror.InternalServerError
	}
	return BuildAlerts(appts, records, s.Clock.Now()), nil
}

// BuildAlerts derives the dashboard alert lines. The order is fixed: booking
// counts per patient, canceled, completed, overdue, over-booking warnings,
// upcoming, follow-ups. Times that fail to parse never match a time rule.
func BuildAlerts(appts []*entity.Appointment, records []*entity.PatientRecord, now time.Time) []string {
	alerts := make([]string, 0)
	loc := now.Location()

	booked := lo.Filter(appts, func(a *entity.Appointment, _ int) bool {
		return a.Status == entity.StatusBooked
	})
	patients := lo.Uniq(lo.Map(booked, func(a *entity.Appointment, _ int) string { return a.Patient }))
	bookings := lo.CountValuesBy(booked, func(a *entity.Appointment) string { return a.Patient })

	for _, name := range patients {
		alerts = append(alerts, fmt.Sprintf("%s booked %d time(s)", name, bookings[name]))
	}

	if n := countStatus(appts, entity.StatusCanceled); n > 0 {
		alerts = append(alerts, fmt.Sprintf("%d appointment(s) were canceled.", n))
	}
	if n := countStatus(appts, entity.StatusCompleted); n > 0 {
		alerts = append(alerts, fmt.Sprintf("%d appointment(s) were completed.", n))
	}

	overdue := lo.CountBy(booked, func(a *entity.Appointment) bool {
		t, err := utils.ParseClinicTime(a.Time, loc)
		return err == nil && t.Before(now)
	})
	if overdue > 0 {
		alerts = append(alerts, fmt.Sprintf("%d overdue appointment(s).", overdue))
	}

	for _, name := range patients {
		if bookings[name] >= overBookingThreshold {
			alerts = append(alerts, fmt.Sprintf("%s booked too many times (%d)!", name, bookings[name]))
		}
	}

	upcoming := lo.CountBy(appts, func(a *entity.Appointment) bool {
		return isWithinNextDay(a.Time, now)
	})
	if upcoming > 0 {
		alerts = append(alerts, fmt.Sprintf("%d appointment(s) are coming within %d hours.", upcoming, int(upcomingWindow.Hours())))
	}

	stale := lo.CountBy(records, func(r *entity.PatientRecord) bool {
		visit, err := utils.ParseDate(r.LastVisit, loc)
		return err == nil && now.Sub(visit) > followUpAfter
	})
	if stale > 0 {
		alerts = append(alerts, fmt.Sprintf("%d patient(s) need follow-up", stale))
	}

	if len(alerts) == 0 {
		alerts = append(alerts, NoAlertsMessage)
	}
	return alerts
}

func countStatus(appts []*entity.Appointment, status entity.AppointmentStatus) int {
	return lo.CountBy(appts, func(a *entity.Appointment) bool { return a.Status == status })
}
