package models

// MedicalCard represents a patient's medical card, keyed 1:1 by patient id.
// All text fields are optional free text.
type MedicalCard struct {
	PatientID        uint   `gorm:"primaryKey;column:patient_id" json:"patientId"`
	HealthComplaints string `gorm:"type:text" json:"healthComplaints"`
	MedicalHistory   string `gorm:"type:text" json:"medicalHistory"`
	TreatmentPlan    string `gorm:"type:text" json:"treatmentPlan"`
}
