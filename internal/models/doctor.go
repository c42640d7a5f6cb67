package models

// Doctor represents a staff doctor. Doctors are seeded once at
// initialization and are not created through the interactive flow.
type Doctor struct {
	ID         uint   `gorm:"primaryKey;column:doctor_id" json:"doctorId"`
	Surname    string `gorm:"size:100;not null" json:"surname"`
	Name       string `gorm:"size:100;not null" json:"name"`
	Patronymic string `gorm:"size:100" json:"patronymic"`
	// Stored in plaintext for fidelity with the legacy dataset. A real
	// deployment needs salted hashing here.
	Password string `gorm:"size:100;not null" json:"-"`

	Patients []Patient `gorm:"foreignKey:DoctorID" json:"-"`
}

// FullName returns the display form "Surname Name Patronymic".
func (d *Doctor) FullName() string {
	return d.Surname + " " + d.Name + " " + d.Patronymic
}
