package models

// Appointment represents a scheduled reception slot. The (date, time) pair
// is unique across the entire system: no two patients may hold the same
// slot. Date is "2006-01-02", Time is "15:04".
type Appointment struct {
	ID        uint   `gorm:"primaryKey;column:appointment_id" json:"appointmentId"`
	PatientID uint   `gorm:"not null;index" json:"patientId"`
	Date      string `gorm:"column:appointment_date;size:10;not null;uniqueIndex:idx_appointment_slot" json:"date"`
	Time      string `gorm:"column:appointment_time;size:5;not null;uniqueIndex:idx_appointment_slot" json:"time"`
	Confirmed bool   `gorm:"default:false" json:"confirmed"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
}
