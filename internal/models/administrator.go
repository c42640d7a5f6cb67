package models

// Administrator represents a system administrator account, seeded once at
// initialization.
type Administrator struct {
	ID       uint   `gorm:"primaryKey;column:admin_id" json:"adminId"`
	Username string `gorm:"uniqueIndex;size:100;not null" json:"username"`
	// Plaintext, same caveat as Doctor.Password.
	Password string `gorm:"size:100;not null" json:"-"`
}
