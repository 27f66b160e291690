package entity

type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "booked"
	StatusCanceled  AppointmentStatus = "canceled"
	StatusCompleted AppointmentStatus = "completed"
)

type Appointment struct {
	ID           int               `gorm:"primaryKey;autoIncrement:false"`
	Patient      string            `gorm:"not null;index"`
	Doctor       string            `gorm:"not null"`
	Department   string            `gorm:"not null"`
	Time         string            `gorm:"not null;index"` // "YYYY-MM-DD HH:mm", compared as an opaque string
	Duration     int               `gorm:"not null"`
	Status       AppointmentStatus `gorm:"not null"`
	Notes        string
	ReminderSent bool  `gorm:"not null"`
	CreatedAt    int64 `gorm:"not null;autoCreateTime:false"` // epoch millis, zero for seeded rows
}

// Clone returns a detached copy so callers never share a stored record.
func (a *Appointment) Clone() *Appointment {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}
