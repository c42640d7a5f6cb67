package models

// Medication represents a drug prescribed to a patient. IsTaken moves
// false to true only through the owning patient's own action and never
// reverses.
type Medication struct {
	ID               uint   `gorm:"primaryKey;column:medication_id" json:"medicationId"`
	PatientID        uint   `gorm:"not null;index" json:"patientId"`
	Name             string `gorm:"column:medication_name;size:255;not null" json:"name"`
	UsageDescription string `gorm:"type:text" json:"usageDescription"`
	IsTaken          bool   `gorm:"default:false" json:"isTaken"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
}
