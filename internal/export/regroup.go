package export

import "database/sql"

// PatientRow is one row of the denormalized patient graph query. The LEFT
// JOINs expand every (appointment x medication) combination per patient, so
// appointment and medication columns repeat and are nullable.
type PatientRow struct {
	PatientID        uint
	Surname          string
	Name             string
	Patronymic       string
	DoctorID         sql.NullInt64
	DoctorSurname    sql.NullString
	DoctorName       sql.NullString
	DoctorPatronymic sql.NullString
	HealthComplaints sql.NullString
	MedicalHistory   sql.NullString
	TreatmentPlan    sql.NullString
	AppointmentID    sql.NullInt64
	AppointmentDate  sql.NullString
	AppointmentTime  sql.NullString
	Confirmed        sql.NullBool
	MedicationID     sql.NullInt64
	MedicationName   sql.NullString
	UsageDescription sql.NullString
	IsTaken          sql.NullBool
}

// PatientRecord is the nested per-patient object graph the export formats
// serialize.
type PatientRecord struct {
	PatientID    uint              `json:"patient_id"`
	Surname      string            `json:"surname"`
	Name         string            `json:"name"`
	Patronymic   string            `json:"patronymic"`
	DoctorID     *uint             `json:"doctor_id"`
	Doctor       *DoctorInfo       `json:"doctor"`
	MedicalCard  *MedicalCardInfo  `json:"medical_card"`
	Appointments []AppointmentInfo `json:"appointments"`
	Medications  []MedicationInfo  `json:"medications"`
}

// DoctorInfo is the doctor sub-object of a patient record.
type DoctorInfo struct {
	Surname    string `json:"surname"`
	Name       string `json:"name"`
	Patronymic string `json:"patronymic"`
}

// MedicalCardInfo is the medical card sub-object of a patient record.
type MedicalCardInfo struct {
	HealthComplaints string `json:"health_complaints"`
	MedicalHistory   string `json:"medical_history"`
	TreatmentPlan    string `json:"treatment_plan"`
}

// AppointmentInfo is one appointment of a patient record.
type AppointmentInfo struct {
	AppointmentID uint   `json:"appointment_id"`
	Date          string `json:"appointment_date"`
	Time          string `json:"appointment_time"`
	Confirmed     bool   `json:"confirmed"`
}

// MedicationInfo is one medication of a patient record.
type MedicationInfo struct {
	MedicationID     uint   `json:"medication_id"`
	Name             string `json:"medication_name"`
	UsageDescription string `json:"usage_description"`
	IsTaken          bool   `json:"is_taken"`
}

// Regroup collapses the Cartesian-expanded row stream back into one record
// per patient. Rows must arrive ordered by patient id; within a patient,
// appointments and medications keep first-seen order.
//
// The doctor sub-object is materialized only when the joined doctor surname
// is non-empty, and the medical card only when health complaints are
// non-empty. The card rule conflates "no card row" with "card row with
// empty complaints"; that is preserved legacy behavior, not an oversight.
func Regroup(rows []PatientRow) []PatientRecord {
	var out []PatientRecord
	index := make(map[uint]int)
	seenAppointments := make(map[uint]map[int64]bool)
	seenMedications := make(map[uint]map[int64]bool)

	for _, row := range rows {
		i, ok := index[row.PatientID]
		if !ok {
			record := PatientRecord{
				PatientID:    row.PatientID,
				Surname:      row.Surname,
				Name:         row.Name,
				Patronymic:   row.Patronymic,
				Appointments: []AppointmentInfo{},
				Medications:  []MedicationInfo{},
			}
			if row.DoctorID.Valid {
				id := uint(row.DoctorID.Int64)
				record.DoctorID = &id
			}
			if row.DoctorSurname.Valid && row.DoctorSurname.String != "" {
				record.Doctor = &DoctorInfo{
					Surname:    row.DoctorSurname.String,
					Name:       row.DoctorName.String,
					Patronymic: row.DoctorPatronymic.String,
				}
			}
			if row.HealthComplaints.Valid && row.HealthComplaints.String != "" {
				record.MedicalCard = &MedicalCardInfo{
					HealthComplaints: row.HealthComplaints.String,
					MedicalHistory:   row.MedicalHistory.String,
					TreatmentPlan:    row.TreatmentPlan.String,
				}
			}
			out = append(out, record)
			i = len(out) - 1
			index[row.PatientID] = i
			seenAppointments[row.PatientID] = make(map[int64]bool)
			seenMedications[row.PatientID] = make(map[int64]bool)
		}

		if row.AppointmentID.Valid && !seenAppointments[row.PatientID][row.AppointmentID.Int64] {
			seenAppointments[row.PatientID][row.AppointmentID.Int64] = true
			out[i].Appointments = append(out[i].Appointments, AppointmentInfo{
				AppointmentID: uint(row.AppointmentID.Int64),
				Date:          row.AppointmentDate.String,
				Time:          row.AppointmentTime.String,
				Confirmed:     row.Confirmed.Bool,
			})
		}

		if row.MedicationID.Valid && !seenMedications[row.PatientID][row.MedicationID.Int64] {
			seenMedications[row.PatientID][row.MedicationID.Int64] = true
			out[i].Medications = append(out[i].Medications, MedicationInfo{
				MedicationID:     uint(row.MedicationID.Int64),
				Name:             row.MedicationName.String,
				UsageDescription: row.UsageDescription.String,
				IsTaken:          row.IsTaken.Bool,
			})
		}
	}

	return out
}
