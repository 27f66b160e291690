package memory

import (
	"clinicdesk/cmd/internal/domain/entity"
	"sync"
)

// AppointmentRepository keeps appointments in insertion order. Records are
// copied on the way in and out, so callers must Save to persist a change.
type AppointmentRepository struct {
	mu    sync.RWMutex
	appts []*entity.Appointment
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

func (a *AppointmentRepository) FindAll() ([]*entity.Appointment, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]*entity.Appointment, len(a.appts))
	for i, appt := range a.appts {
		out[i] = appt.Clone()
	}
	return out, nil
}

func (a *AppointmentRepository) FindByID(id int) (*entity.Appointment, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if i := a.indexOf(id); i >= 0 {
		return a.appts[i].Clone(), nil
	}
	return nil, nil
}

// NextID is max(existing ids)+1, or 1 when empty.
func (a *AppointmentRepository) NextID() (int, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	next := 1
	for _, appt := range a.appts {
		if appt.ID >= next {
			next = appt.ID + 1
		}
	}
	return next, nil
}

func (a *AppointmentRepository) Save(appointment *entity.Appointment) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if i := a.indexOf(appointment.ID); i >= 0 {
		a.appts[i] = appointment.Clone()
		return nil
	}
	a.appts = append(a.appts, appointment.Clone())
	return nil
}

func (a *AppointmentRepository) indexOf(id int) int {
	for i, appt := range a.appts {
		if appt.ID == id {
			return i
		}
	}
	return -1
}
