package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var csvHeader = []string{
	"patient_id", "surname", "name", "patronymic", "doctor_id",
	"doctor_info", "health_complaints", "medical_history", "treatment_plan",
	"appointments_info", "medications_info",
}

// WriteCSV emits one row per patient. Multi-valued fields collapse into a
// single "; "-joined cell with a fixed per-item template; the boolean flags
// render as their status labels.
func WriteCSV(w io.Writer, records []PatientRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, p := range records {
		doctorID := ""
		if p.DoctorID != nil {
			doctorID = strconv.FormatUint(uint64(*p.DoctorID), 10)
		}
		doctorInfo := ""
		if p.Doctor != nil {
			doctorInfo = p.Doctor.Surname + " " + p.Doctor.Name + " " + p.Doctor.Patronymic
		}
		var complaints, history, plan string
		if p.MedicalCard != nil {
			complaints = p.MedicalCard.HealthComplaints
			history = p.MedicalCard.MedicalHistory
			plan = p.MedicalCard.TreatmentPlan
		}

		row := []string{
			strconv.FormatUint(uint64(p.PatientID), 10),
			p.Surname,
			p.Name,
			p.Patronymic,
			doctorID,
			doctorInfo,
			complaints,
			history,
			plan,
			appointmentsCell(p.Appointments),
			medicationsCell(p.Medications),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func appointmentsCell(appointments []AppointmentInfo) string {
	parts := make([]string, 0, len(appointments))
	for _, a := range appointments {
		status := "Pending"
		if a.Confirmed {
			status = "Confirmed"
		}
		parts = append(parts, fmt.Sprintf("%s %s (%s)", a.Date, a.Time, status))
	}
	return strings.Join(parts, "; ")
}

func medicationsCell(medications []MedicationInfo) string {
	parts := make([]string, 0, len(medications))
	for _, m := range medications {
		status := "Not taken"
		if m.IsTaken {
			status = "Taken"
		}
		parts = append(parts, fmt.Sprintf("%s: %s (%s)", m.Name, m.UsageDescription, status))
	}
	return strings.Join(parts, "; ")
}
