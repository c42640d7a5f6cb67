package clinic

import (
	"errors"
	"testing"

	"clinic-manager/internal/models"
)

func TestScheduleCreatesPendingAppointment(t *testing.T) {
	svc := newTestService(t)

	a, err := svc.Schedule(ScheduleRequest{PatientID: 1, Date: "2025-01-15", Time: "10:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID == 0 {
		t.Error("expected a generated appointment id")
	}
	if a.Confirmed {
		t.Error("new appointments must start unconfirmed")
	}
	if a.Date != "2025-01-15" || a.Time != "10:00" {
		t.Errorf("slot stored as %s %s", a.Date, a.Time)
	}
}

func TestScheduleUnknownPatient(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Schedule(ScheduleRequest{PatientID: 99, Date: "2025-01-15", Time: "10:00"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestScheduleValidation(t *testing.T) {
	tests := []struct {
		name string
		date string
		time string
	}{
		{"malformed date", "15.01.2025", "10:00"},
		{"impossible date", "2025-02-30", "10:00"},
		{"wrong year", "2024-01-15", "10:00"},
		{"malformed time", "2025-01-15", "ten"},
		{"before opening", "2025-01-15", "07:59"},
		{"after closing", "2025-01-15", "20:01"},
	}

	svc := newTestService(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Schedule(ScheduleRequest{PatientID: 1, Date: tc.date, Time: tc.time})
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestScheduleWindowBoundaries(t *testing.T) {
	svc := newTestService(t)

	for _, clock := range []string{"08:00", "20:00"} {
		if _, err := svc.Schedule(ScheduleRequest{PatientID: 1, Date: "2025-03-01", Time: clock}); err != nil {
			t.Errorf("time %s should be inside the operating window: %v", clock, err)
		}
	}
}

func TestScheduleSlotTakenAcrossPatients(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Schedule(ScheduleRequest{PatientID: 1, Date: "2025-01-15", Time: "10:00"}); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	_, err := svc.Schedule(ScheduleRequest{PatientID: 2, Date: "2025-01-15", Time: "10:00"})
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	var count int64
	if err := svc.db.Model(&models.Appointment{}).Count(&count).Error; err != nil {
		t.Fatalf("counting appointments: %v", err)
	}
	if count != 1 {
		t.Errorf("rejected booking must not insert a row, have %d rows", count)
	}
}

func TestConfirmIsIdempotent(t *testing.T) {
	svc := newTestService(t)

	a, err := svc.Schedule(ScheduleRequest{PatientID: 1, Date: "2025-01-15", Time: "10:00"})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	first, err := svc.Confirm(a.ID)
	if err != nil {
		t.Fatalf("first confirm failed: %v", err)
	}
	if !first.Confirmed {
		t.Fatal("appointment not confirmed")
	}

	second, err := svc.Confirm(a.ID)
	if err != nil {
		t.Fatalf("confirming an already confirmed appointment must succeed: %v", err)
	}
	if !second.Confirmed {
		t.Error("second confirm changed state")
	}
}

func TestConfirmUnknownAppointment(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Confirm(12345); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteAppointment(t *testing.T) {
	svc := newTestService(t)

	a, err := svc.Schedule(ScheduleRequest{PatientID: 1, Date: "2025-01-15", Time: "10:00"})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if err := svc.DeleteAppointment(a.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.DeleteAppointment(a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	// The freed slot is bookable again.
	if _, err := svc.Schedule(ScheduleRequest{PatientID: 2, Date: "2025-01-15", Time: "10:00"}); err != nil {
		t.Errorf("slot should be free after delete: %v", err)
	}
}

func TestAppointmentsForRespectsAccessRule(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Schedule(ScheduleRequest{PatientID: 4, Date: "2025-01-18", Time: "09:00"}); err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	if _, err := svc.AppointmentsFor(doctorSession(111), 4); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("doctor 111 must not see doctor 222's patient, got %v", err)
	}
	if _, err := svc.AppointmentsFor(patientSession(1), 4); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("patient 1 must not see patient 4's appointments, got %v", err)
	}

	appointments, err := svc.AppointmentsFor(doctorSession(222), 4)
	if err != nil {
		t.Fatalf("owning doctor denied: %v", err)
	}
	if len(appointments) != 1 {
		t.Errorf("expected 1 appointment, got %d", len(appointments))
	}
}
