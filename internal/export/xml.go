package export

import (
	"encoding/xml"
	"io"
)

// XML mirror of the patient record graph. Absent optional sub-objects must
// disappear from the tree entirely instead of leaving empty tags, hence the
// pointer fields with omitempty.

type xmlPatients struct {
	XMLName  xml.Name     `xml:"patients"`
	Patients []xmlPatient `xml:"patient"`
}

type xmlPatient struct {
	PatientID    uint                `xml:"patient_id"`
	Surname      string              `xml:"surname"`
	Name         string              `xml:"name"`
	Patronymic   string              `xml:"patronymic"`
	DoctorID     *uint               `xml:"doctor_id,omitempty"`
	Doctor       *xmlDoctor          `xml:"doctor,omitempty"`
	MedicalCard  *xmlMedicalCard     `xml:"medical_card,omitempty"`
	Appointments xmlAppointmentList  `xml:"appointments"`
	Medications  xmlMedicationList   `xml:"medications"`
}

type xmlDoctor struct {
	Surname    string `xml:"surname"`
	Name       string `xml:"name"`
	Patronymic string `xml:"patronymic"`
}

type xmlMedicalCard struct {
	HealthComplaints string `xml:"health_complaints"`
	MedicalHistory   string `xml:"medical_history"`
	TreatmentPlan    string `xml:"treatment_plan"`
}

type xmlAppointmentList struct {
	Appointments []xmlAppointment `xml:"appointment"`
}

type xmlAppointment struct {
	AppointmentID uint   `xml:"appointment_id"`
	Date          string `xml:"appointment_date"`
	Time          string `xml:"appointment_time"`
	Confirmed     bool   `xml:"confirmed"`
}

type xmlMedicationList struct {
	Medications []xmlMedication `xml:"medication"`
}

type xmlMedication struct {
	MedicationID     uint   `xml:"medication_id"`
	Name             string `xml:"medication_name"`
	UsageDescription string `xml:"usage_description"`
	IsTaken          bool   `xml:"is_taken"`
}

// WriteXML emits the nested element tree mirroring the record graph.
func WriteXML(w io.Writer, records []PatientRecord) error {
	doc := xmlPatients{Patients: make([]xmlPatient, 0, len(records))}
	for _, p := range records {
		xp := xmlPatient{
			PatientID:  p.PatientID,
			Surname:    p.Surname,
			Name:       p.Name,
			Patronymic: p.Patronymic,
			DoctorID:   p.DoctorID,
		}
		if p.Doctor != nil {
			xp.Doctor = &xmlDoctor{
				Surname:    p.Doctor.Surname,
				Name:       p.Doctor.Name,
				Patronymic: p.Doctor.Patronymic,
			}
		}
		if p.MedicalCard != nil {
			xp.MedicalCard = &xmlMedicalCard{
				HealthComplaints: p.MedicalCard.HealthComplaints,
				MedicalHistory:   p.MedicalCard.MedicalHistory,
				TreatmentPlan:    p.MedicalCard.TreatmentPlan,
			}
		}
		for _, a := range p.Appointments {
			xp.Appointments.Appointments = append(xp.Appointments.Appointments, xmlAppointment{
				AppointmentID: a.AppointmentID,
				Date:          a.Date,
				Time:          a.Time,
				Confirmed:     a.Confirmed,
			})
		}
		for _, m := range p.Medications {
			xp.Medications.Medications = append(xp.Medications.Medications, xmlMedication{
				MedicationID:     m.MedicationID,
				Name:             m.Name,
				UsageDescription: m.UsageDescription,
				IsTaken:          m.IsTaken,
			})
		}
		doc.Patients = append(doc.Patients, xp)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
