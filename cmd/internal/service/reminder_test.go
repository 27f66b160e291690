package service

import (
	"clinicdesk/cmd/internal/domain/entity"
	"clinicdesk/cmd/internal/domain/memory"
	"errors"
	"strings"
	"testing"
	"time"
)

func countAutoReminders(msgs []string, patient string) int {
	n := 0
	for _, m := range msgs {
		if m == "Auto reminder: "+patient+"'s appointment" {
			n++
		}
	}
	return n
}

func TestSweepReminders_AtMostOnce(t *testing.T) {
	f := newAppointmentFixture(t)
	if _, apierr := f.service.CreateAppointment(validRequest()); apierr != nil {
		t.Fatalf("CreateAppointment failed: %v", apierr)
	}

	sent, err := f.service.SweepReminders(time.Minute)
	if err != nil || sent != 0 {
		t.Fatalf("sweep before threshold = %d, %v; want 0, nil", sent, err)
	}

	f.clock.WarpForward(61 * time.Second)
	for i := 0; i < 2; i++ {
		if _, err := f.service.SweepReminders(time.Minute); err != nil {
			t.Fatalf("sweep #%d failed: %v", i+1, err)
		}
		f.clock.WarpForward(10 * time.Second)
	}

	if n := countAutoReminders(f.messages(t), "Alice"); n != 1 {
		t.Errorf("got %d auto reminders, want exactly 1", n)
	}
	if !f.get(t, 1).ReminderSent {
		t.Error("ReminderSent not set after sweep")
	}
}

func TestSweepReminders_FallsBackToScheduledTime(t *testing.T) {
	f := newAppointmentFixture(t,
		booked(1, "Alice", "2025-11-01 08:58"), // scheduled 2 minutes before now
		booked(2, "Bob", "2025-11-01 09:00"),   // scheduled right now
		booked(3, "Mike", "2025-11-01 08:59"),  // exactly one minute ago
		booked(4, "Lisa", "2025-11-02 10:00"),
	)

	sent, err := f.service.SweepReminders(time.Minute)
	if err != nil {
		t.Fatalf("SweepReminders failed: %v", err)
	}
	if sent != 2 {
		t.Errorf("sent = %d, want 2", sent)
	}

	msgs := f.messages(t)
	if countAutoReminders(msgs, "Alice") != 1 || countAutoReminders(msgs, "Mike") != 1 {
		t.Errorf("notifications = %q", msgs)
	}
	if countAutoReminders(msgs, "Lisa") != 0 {
		t.Error("future appointment must not be reminded")
	}
}

func TestSweepReminders_SkipsUnparseableTime(t *testing.T) {
	f := newAppointmentFixture(t,
		booked(1, "Alice", "someday"),
		booked(2, "Bob", "2025-10-01 10:00"),
	)

	sent, err := f.service.SweepReminders(time.Minute)
	if err != nil {
		t.Fatalf("SweepReminders failed: %v", err)
	}
	if sent != 1 {
		t.Errorf("sent = %d, want 1", sent)
	}
	if f.get(t, 1).ReminderSent {
		t.Error("appointment with unparseable time should stay unreminded")
	}
	if !f.get(t, 2).ReminderSent {
		t.Error("remaining appointments must still be processed")
	}
}

type flakyNotifier struct {
	failFor string
	sent    []string
}

func (n *flakyNotifier) Notify(_ entity.NotificationType, message string) error {
	if strings.Contains(message, n.failFor) {
		return errors.New("log unavailable")
	}
	n.sent = append(n.sent, message)
	return nil
}

func TestSweepReminders_NotifierFailureIsRetried(t *testing.T) {
	f := newAppointmentFixture(t,
		booked(1, "Alice", "2025-10-01 10:00"),
		booked(2, "Bob", "2025-10-01 11:00"),
	)
	notifier := &flakyNotifier{failFor: "Alice"}
	f.service.Notifier = notifier

	sent, err := f.service.SweepReminders(time.Minute)
	if err != nil {
		t.Fatalf("SweepReminders failed: %v", err)
	}
	if sent != 1 || f.get(t, 1).ReminderSent || !f.get(t, 2).ReminderSent {
		t.Fatalf("sent=%d alice=%v bob=%v", sent, f.get(t, 1).ReminderSent, f.get(t, 2).ReminderSent)
	}

	notifier.failFor = "nobody"
	sent, _ = f.service.SweepReminders(time.Minute)
	if sent != 1 || !f.get(t, 1).ReminderSent {
		t.Errorf("failed reminder should be retried on the next sweep, sent=%d", sent)
	}
}

// markFailingRepo refuses to store the reminded flag for one appointment.
type markFailingRepo struct {
	*memory.AppointmentRepository
	failID int
}

func (r *markFailingRepo) Save(appt *entity.Appointment) error {
	if appt.ID == r.failID && appt.ReminderSent {
		return errors.New("disk full")
	}
	return r.AppointmentRepository.Save(appt)
}

func TestSweepReminders_SaveFailureSendsNothing(t *testing.T) {
	f := newAppointmentFixture(t,
		booked(1, "Alice", "2025-10-01 10:00"),
		booked(2, "Bob", "2025-10-01 11:00"),
	)
	f.service.AppointmentRepo = &markFailingRepo{AppointmentRepository: f.appts, failID: 1}

	for i := 0; i < 2; i++ {
		if _, err := f.service.SweepReminders(time.Minute); err != nil {
			t.Fatalf("sweep #%d failed: %v", i+1, err)
		}
	}

	msgs := f.messages(t)
	if n := countAutoReminders(msgs, "Alice"); n != 0 {
		t.Errorf("Alice got %d auto reminders without a stored flag, want 0", n)
	}
	if n := countAutoReminders(msgs, "Bob"); n != 1 {
		t.Errorf("Bob got %d auto reminders, want 1", n)
	}
}
