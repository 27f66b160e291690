package service

import (
	"clinicdesk/cmd/internal/domain/entity"
	"clinicdesk/cmd/internal/utils"
	"fmt"
	"github.com/labstack/gommon/log"
	"time"
)

// SweepReminders sends one automatic reminder for every appointment whose
// reference time is at least threshold in the past, then marks it so it is
// never reminded again. A failure on one appointment is logged and the sweep
// moves on to the next. It returns how many reminders went out.
func (a *DefaultAppointmentService) SweepReminders(threshold time.Duration) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	appts, err := a.AppointmentRepo.FindAll()
	if err != nil {
		return 0, fmt.Errorf("load appointments: %w", err)
	}

	now := a.Clock.Now()
	sent := 0
	for _, appt := range appts {
		if appt.ReminderSent {
			continue
		}

		ref, err := reminderReference(appt, now.Location())
		if err != nil {
			log.Warnf("skipping reminder for appointment %d: %v", appt.ID, err)
			continue
		}
		if now.Sub(ref) < threshold {
			continue
		}

		// The flag is stored before the reminder goes out so a failed save
		// can never lead to a second reminder.
		appt.ReminderSent = true
		if err := a.AppointmentRepo.Save(appt); err != nil {
			log.Errorf("failed to mark appointment %d reminded: %v", appt.ID, err)
			continue
		}

		if err := a.Notifier.Notify(entity.NotificationReminder, fmt.Sprintf("Auto reminder: %s's appointment", appt.Patient)); err != nil {
			log.Errorf("failed to send auto reminder for appointment %d: %v", appt.ID, err)
			appt.ReminderSent = false
			if err := a.AppointmentRepo.Save(appt); err != nil {
				log.Errorf("failed to unmark appointment %d after reminder failure: %v", appt.ID, err)
			}
			continue
		}
		log.Infof("auto reminder sent for %s (appointment %d)", appt.Patient, appt.ID)
		sent++
	}
	return sent, nil
}

// reminderReference is the creation time when it was recorded, otherwise the
// scheduled time itself.
func reminderReference(appt *entity.Appointment, loc *time.Location) (time.Time, error) {
	if appt.CreatedAt != 0 {
		return time.UnixMilli(appt.CreatedAt).In(loc), nil
	}
	return utils.ParseClinicTime(appt.Time, loc)
}
