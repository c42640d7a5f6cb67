package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Minimal hand-rolled YAML emitter: block-style mappings and sequences,
// two-space indent increments, lowercase booleans, null for absent values.
// Deliberately not a library binding; this data model needs nothing more
// (no multi-line strings, anchors or flow style).

// A string scalar containing any of these characters gets double-quoted.
const yamlSpecials = ":[]{}#&*!|>\"'%@`\\"

func yamlScalar(s string) string {
	if s == "" {
		return `""`
	}
	if strings.ContainsAny(s, yamlSpecials) {
		s = strings.ReplaceAll(s, `\`, `\\`)
		s = strings.ReplaceAll(s, `"`, `\"`)
		return `"` + s + `"`
	}
	return s
}

// WriteYAML emits the patient records as a top-level block sequence.
func WriteYAML(w io.Writer, records []PatientRecord) error {
	bw := bufio.NewWriter(w)

	for _, p := range records {
		fmt.Fprintf(bw, "- patient_id: %d\n", p.PatientID)
		writeStr(bw, "  ", "surname", p.Surname)
		writeStr(bw, "  ", "name", p.Name)
		writeStr(bw, "  ", "patronymic", p.Patronymic)

		if p.DoctorID != nil {
			fmt.Fprintf(bw, "  doctor_id: %d\n", *p.DoctorID)
		} else {
			fmt.Fprint(bw, "  doctor_id: null\n")
		}

		if p.Doctor != nil {
			fmt.Fprint(bw, "  doctor:\n")
			writeStr(bw, "    ", "surname", p.Doctor.Surname)
			writeStr(bw, "    ", "name", p.Doctor.Name)
			writeStr(bw, "    ", "patronymic", p.Doctor.Patronymic)
		} else {
			fmt.Fprint(bw, "  doctor: null\n")
		}

		if p.MedicalCard != nil {
			fmt.Fprint(bw, "  medical_card:\n")
			writeStr(bw, "    ", "health_complaints", p.MedicalCard.HealthComplaints)
			writeStr(bw, "    ", "medical_history", p.MedicalCard.MedicalHistory)
			writeStr(bw, "    ", "treatment_plan", p.MedicalCard.TreatmentPlan)
		} else {
			fmt.Fprint(bw, "  medical_card: null\n")
		}

		if len(p.Appointments) == 0 {
			fmt.Fprint(bw, "  appointments: []\n")
		} else {
			fmt.Fprint(bw, "  appointments:\n")
			for _, a := range p.Appointments {
				fmt.Fprintf(bw, "    - appointment_id: %d\n", a.AppointmentID)
				writeStr(bw, "      ", "appointment_date", a.Date)
				writeStr(bw, "      ", "appointment_time", a.Time)
				fmt.Fprintf(bw, "      confirmed: %t\n", a.Confirmed)
			}
		}

		if len(p.Medications) == 0 {
			fmt.Fprint(bw, "  medications: []\n")
		} else {
			fmt.Fprint(bw, "  medications:\n")
			for _, m := range p.Medications {
				fmt.Fprintf(bw, "    - medication_id: %d\n", m.MedicationID)
				writeStr(bw, "      ", "medication_name", m.Name)
				writeStr(bw, "      ", "usage_description", m.UsageDescription)
				fmt.Fprintf(bw, "      is_taken: %t\n", m.IsTaken)
			}
		}
	}

	return bw.Flush()
}

func writeStr(w io.Writer, indent, key, value string) {
	fmt.Fprintf(w, "%s%s: %s\n", indent, key, yamlScalar(value))
}
