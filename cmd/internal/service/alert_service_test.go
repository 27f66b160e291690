package service

import (
	"clinicdesk/cmd/internal/domain/entity"
	"clinicdesk/cmd/internal/domain/memory"
	"clinicdesk/cmd/internal/utils/clock"
	"reflect"
	"strings"
	"testing"
	"time"
)

func withStatus(a *entity.Appointment, status entity.AppointmentStatus) *entity.Appointment {
	a.Status = status
	return a
}

func TestBuildAlerts_NoAlerts(t *testing.T) {
	got := BuildAlerts(nil, nil, testNow)
	if !reflect.DeepEqual(got, []string{NoAlertsMessage}) {
		t.Errorf("BuildAlerts() = %q", got)
	}
}

func TestBuildAlerts_SingleOverdue(t *testing.T) {
	appts := []*entity.Appointment{booked(1, "Alice", testNow.Add(-time.Hour).Format("2006-01-02 15:04"))}

	got := BuildAlerts(appts, nil, testNow)

	overdue := 0
	for _, line := range got {
		if strings.Contains(line, "overdue") {
			overdue++
			if line != "1 overdue appointment(s)." {
				t.Errorf("overdue line = %q", line)
			}
		}
	}
	if overdue != 1 {
		t.Errorf("got %d overdue lines in %q, want 1", overdue, got)
	}
}

func TestBuildAlerts_Order(t *testing.T) {
	appts := []*entity.Appointment{
		booked(1, "John", "2025-11-01 08:00"),  // overdue
		booked(2, "Alice", "2025-11-01 10:00"), // upcoming
		booked(3, "John", "2025-11-05 10:00"),
		booked(4, "John", "2025-11-06 10:00"),
		withStatus(booked(5, "Bob", "2025-11-01 12:00"), entity.StatusCanceled), // canceled but upcoming
		withStatus(booked(6, "Olivia", "2025-10-28 10:30"), entity.StatusCompleted),
		withStatus(booked(7, "Daniel", "2025-11-01 20:00"), entity.StatusCompleted), // completed but upcoming
	}
	records := []*entity.PatientRecord{
		{ID: "p001", Name: "Alice", LastVisit: "2025-10-01"},
		{ID: "p002", Name: "Bob", LastVisit: "2024-10-01"},
		{ID: "p003", Name: "Mike", LastVisit: "not a date"},
	}

	want := []string{
		"John booked 3 time(s)",
		"Alice booked 1 time(s)",
		"1 appointment(s) were canceled.",
		"2 appointment(s) were completed.",
		"1 overdue appointment(s).",
		"John booked too many times (3)!",
		"3 appointment(s) are coming within 24 hours.",
		"1 patient(s) need follow-up",
	}

	got := BuildAlerts(appts, records, testNow)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildAlerts() =\n%q\nwant\n%q", got, want)
	}
}

func TestBuildAlerts_UpcomingWindowEdges(t *testing.T) {
	appts := []*entity.Appointment{
		withStatus(booked(1, "Alice", "2025-11-01 09:00"), entity.StatusCompleted), // exactly now
		withStatus(booked(2, "Bob", "2025-11-02 09:00"), entity.StatusCompleted),   // exactly +24h
		withStatus(booked(3, "Mike", "2025-11-02 09:01"), entity.StatusCompleted),  // just past the window
	}

	got := BuildAlerts(appts, nil, testNow)
	want := []string{
		"3 appointment(s) were completed.",
		"1 appointment(s) are coming within 24 hours.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildAlerts() = %q, want %q", got, want)
	}
}

func TestAlertService_GetAlerts(t *testing.T) {
	appts := memory.NewAppointmentRepository()
	records := memory.NewRecordRepository()
	_ = appts.Save(booked(1, "Alice", "2025-10-31 10:00"))
	_ = records.Save(&entity.PatientRecord{ID: "p001", Name: "Alice", LastVisit: "2025-10-31"})

	svc := NewAlertService(appts, records, clock.NewManaged(testNow))
	got, apierr := svc.GetAlerts()
	if apierr != nil {
		t.Fatalf("GetAlerts failed: %v", apierr)
	}

	want := []string{"Alice booked 1 time(s)", "1 overdue appointment(s)."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetAlerts() = %q, want %q", got, want)
	}
}

func TestBuildAlerts_UpcomingCountsEveryStatus(t *testing.T) {
	now := time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC)
	appts := []*entity.Appointment{
		withStatus(booked(1, "Alice", "2025-11-01 10:00"), entity.StatusCanceled),
	}

	got := BuildAlerts(appts, nil, now)

	want := []string{
		"1 appointment(s) were canceled.",
		"1 appointment(s) are coming within 24 hours.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildAlerts() = %q, want %q", got, want)
	}
}
