// Package export reads the full patient graph through one denormalized
// join, regroups the row stream into nested per-patient records and writes
// them out as JSON, CSV, XML and YAML.
package export

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// patientGraphQuery joins every patient with its doctor, medical card,
// appointments and medications in one pass. The result is Cartesian per
// patient; Regroup deduplicates it.
const patientGraphQuery = `
SELECT
    p.patient_id,
    p.surname,
    p.name,
    p.patronymic,
    p.doctor_id,
    d.surname AS doctor_surname,
    d.name AS doctor_name,
    d.patronymic AS doctor_patronymic,
    mc.health_complaints,
    mc.medical_history,
    mc.treatment_plan,
    a.appointment_id,
    a.appointment_date,
    a.appointment_time,
    a.confirmed,
    m.medication_id,
    m.medication_name,
    m.usage_description,
    m.is_taken
FROM patients p
LEFT JOIN doctors d ON p.doctor_id = d.doctor_id
LEFT JOIN medical_cards mc ON p.patient_id = mc.patient_id
LEFT JOIN appointments a ON p.patient_id = a.patient_id
LEFT JOIN medications m ON p.patient_id = m.patient_id
ORDER BY p.patient_id`

// Exporter runs read-only export passes over the store.
type Exporter struct {
	db  *gorm.DB
	dir string
	log zerolog.Logger
}

// New creates a new Exporter writing into dir.
func New(db *gorm.DB, dir string, log zerolog.Logger) *Exporter {
	return &Exporter{db: db, dir: dir, log: log}
}

// FetchPatientGraph reads and regroups the full patient graph. Store
// failures are soft: the error is logged and an empty list returned, so a
// broken store degrades the export run instead of aborting it.
func (e *Exporter) FetchPatientGraph() []PatientRecord {
	rows, err := e.db.Raw(patientGraphQuery).Rows()
	if err != nil {
		e.log.Warn().Err(err).Msg("patient graph query failed")
		return nil
	}
	defer rows.Close()

	var flat []PatientRow
	for rows.Next() {
		var r PatientRow
		err := rows.Scan(
			&r.PatientID, &r.Surname, &r.Name, &r.Patronymic,
			&r.DoctorID, &r.DoctorSurname, &r.DoctorName, &r.DoctorPatronymic,
			&r.HealthComplaints, &r.MedicalHistory, &r.TreatmentPlan,
			&r.AppointmentID, &r.AppointmentDate, &r.AppointmentTime, &r.Confirmed,
			&r.MedicationID, &r.MedicationName, &r.UsageDescription, &r.IsTaken,
		)
		if err != nil {
			e.log.Warn().Err(err).Msg("patient graph row scan failed")
			return nil
		}
		flat = append(flat, r)
	}
	if err := rows.Err(); err != nil {
		e.log.Warn().Err(err).Msg("patient graph row iteration failed")
		return nil
	}

	return Regroup(flat)
}

// Report summarizes one export run.
type Report struct {
	RunID    string
	Patients int
	Written  []string
	Failed   map[string]error
}

// Run fetches the patient graph and hands it to each format writer in
// turn. Writer failures are isolated: one format failing does not stop the
// others. With no data, no files are produced.
func (e *Exporter) Run() Report {
	report := Report{RunID: uuid.NewString(), Failed: make(map[string]error)}
	log := e.log.With().Str("run_id", report.RunID).Logger()

	records := e.FetchPatientGraph()
	report.Patients = len(records)
	if len(records) == 0 {
		log.Warn().Msg("no patient data, export skipped")
		return report
	}
	log.Info().Int("patients", report.Patients).Msg("patient graph regrouped")

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		log.Error().Err(err).Str("dir", e.dir).Msg("cannot create export directory")
		report.Failed[e.dir] = err
		return report
	}

	writers := []struct {
		name  string
		write func(io.Writer, []PatientRecord) error
	}{
		{"data.json", WriteJSON},
		{"data.csv", WriteCSV},
		{"data.xml", WriteXML},
		{"data.yaml", WriteYAML},
	}

	for _, w := range writers {
		path := filepath.Join(e.dir, w.name)
		if err := writeFile(path, records, w.write); err != nil {
			log.Error().Err(err).Str("file", w.name).Msg("export writer failed")
			report.Failed[w.name] = err
			continue
		}
		log.Info().Str("file", w.name).Msg("export file written")
		report.Written = append(report.Written, w.name)
	}

	return report
}

func writeFile(path string, records []PatientRecord, write func(io.Writer, []PatientRecord) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
