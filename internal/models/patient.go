package models

// Patient represents a registered patient. DoctorID is nullable: a patient
// may be unassigned.
type Patient struct {
	ID         uint   `gorm:"primaryKey;column:patient_id" json:"patientId"`
	Surname    string `gorm:"size:100;not null" json:"surname"`
	Name       string `gorm:"size:100;not null" json:"name"`
	Patronymic string `gorm:"size:100" json:"patronymic"`
	DoctorID   *uint  `gorm:"index" json:"doctorId,omitempty"`

	// Relations (not always preloaded)
	Doctor       *Doctor       `gorm:"foreignKey:DoctorID" json:"-"`
	MedicalCard  *MedicalCard  `gorm:"foreignKey:PatientID" json:"-"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"-"`
	Medications  []Medication  `gorm:"foreignKey:PatientID" json:"-"`
}

// FullName returns the display form "Surname Name Patronymic".
func (p *Patient) FullName() string {
	return p.Surname + " " + p.Name + " " + p.Patronymic
}
