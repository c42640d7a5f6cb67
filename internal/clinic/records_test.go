package clinic

import (
	"errors"
	"testing"

	"clinic-manager/internal/models"
)

func strPtr(s string) *string { return &s }

func TestDoctorIsolation(t *testing.T) {
	svc := newTestService(t)
	other := doctorSession(111) // patient 4 belongs to doctor 222

	if _, err := svc.MedicalCard(other, 4); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("MedicalCard: expected ErrNotAuthorized, got %v", err)
	}
	if _, err := svc.UpdateMedicalCard(other, 4, CardUpdate{TreatmentPlan: strPtr("rest")}); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("UpdateMedicalCard: expected ErrNotAuthorized, got %v", err)
	}
	if _, err := svc.PrescribeMedication(other, 4, MedicationRequest{Name: "Aspirin"}); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("PrescribeMedication: expected ErrNotAuthorized, got %v", err)
	}
	if _, err := svc.UpdateMedication(other, 11, MedicationRequest{Name: "Aspirin"}); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("UpdateMedication: expected ErrNotAuthorized, got %v", err)
	}
	if err := svc.DeleteMedication(other, 11); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("DeleteMedication: expected ErrNotAuthorized, got %v", err)
	}
	if _, err := svc.MedicationsFor(other, 4); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("MedicationsFor: expected ErrNotAuthorized, got %v", err)
	}

	// An unassigned patient belongs to no doctor at all.
	if _, err := svc.MedicalCard(other, 5); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("unassigned patient: expected ErrNotAuthorized, got %v", err)
	}
}

func TestMedicalCardView(t *testing.T) {
	svc := newTestService(t)

	view, err := svc.MedicalCard(doctorSession(111), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Card == nil || view.Card.HealthComplaints != "headache" {
		t.Errorf("card not loaded: %+v", view.Card)
	}
	if view.Doctor == nil || view.Doctor.ID != 111 {
		t.Errorf("attending doctor not loaded: %+v", view.Doctor)
	}
	if len(view.Medications) != 1 || view.Medications[0].Name != "Paracetamol" {
		t.Errorf("medications not loaded: %+v", view.Medications)
	}

	// Patients can read their own card.
	if _, err := svc.MedicalCard(patientSession(1), 1); err != nil {
		t.Errorf("patient denied own card: %v", err)
	}
}

func TestUpdateMedicalCardCreatesLazily(t *testing.T) {
	svc := newTestService(t)

	// Patient 2 has no card row yet.
	card, err := svc.UpdateMedicalCard(doctorSession(111), 2, CardUpdate{
		HealthComplaints: strPtr("fever"),
		TreatmentPlan:    strPtr("bed rest"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.HealthComplaints != "fever" || card.TreatmentPlan != "bed rest" {
		t.Errorf("card fields not applied: %+v", card)
	}

	// A partial update keeps the other fields.
	card, err = svc.UpdateMedicalCard(doctorSession(111), 2, CardUpdate{MedicalHistory: strPtr("ARVI")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.HealthComplaints != "fever" || card.MedicalHistory != "ARVI" {
		t.Errorf("partial update lost fields: %+v", card)
	}
}

func TestUpdateMedicalCardPatientDenied(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateMedicalCard(patientSession(1), 1, CardUpdate{TreatmentPlan: strPtr("self-medication")})
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestPrescribeAndDeleteMedication(t *testing.T) {
	svc := newTestService(t)
	sess := doctorSession(111)

	m, err := svc.PrescribeMedication(sess, 2, MedicationRequest{Name: "Nasivin", UsageDescription: "2x daily"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID == 0 || m.IsTaken {
		t.Errorf("bad new medication: %+v", m)
	}

	if _, err := svc.PrescribeMedication(sess, 2, MedicationRequest{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty name: expected ErrInvalidInput, got %v", err)
	}

	if err := svc.DeleteMedication(sess, m.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.DeleteMedication(sess, m.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMarkMedicationTaken(t *testing.T) {
	svc := newTestService(t)

	// Only the owning patient may mark, and the flag never reverses.
	if _, err := svc.MarkMedicationTaken(patientSession(4), 10); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("foreign medication: expected ErrNotAuthorized, got %v", err)
	}
	if _, err := svc.MarkMedicationTaken(doctorSession(111), 10); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("doctor session: expected ErrNotAuthorized, got %v", err)
	}
	if _, err := svc.MarkMedicationTaken(patientSession(1), 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown medication: expected ErrNotFound, got %v", err)
	}

	m, err := svc.MarkMedicationTaken(patientSession(1), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.IsTaken {
		t.Fatal("medication not marked taken")
	}

	// Marking again is a no-op success.
	m, err = svc.MarkMedicationTaken(patientSession(1), 10)
	if err != nil {
		t.Fatalf("second mark failed: %v", err)
	}
	if !m.IsTaken {
		t.Error("second mark reversed the flag")
	}
}

func TestPatientsOf(t *testing.T) {
	svc := newTestService(t)

	patients, err := svc.PatientsOf(doctorSession(111))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients) != 3 {
		t.Errorf("doctor 111 has %d patients, want 3", len(patients))
	}

	if _, err := svc.PatientsOf(patientSession(1)); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("expected ErrNotAuthorized for patient session, got %v", err)
	}
}

func TestLookupPatientNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.MedicalCard(&Session{Role: models.RoleAdmin}, 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
