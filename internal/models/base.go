package models

import (
	"errors"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SchemaMigration records an applied schema version.
type SchemaMigration struct {
	Version   uint `gorm:"primaryKey"`
	AppliedAt time.Time
}

// schemaVersion is the current schema. Bump it together with a new step in
// migrate when the table set changes.
const schemaVersion = 1

// InitDB opens the sqlite store at path and brings the schema up to date.
func InitDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// migrate applies the versioned schema initialization step. Running it
// against an up-to-date store is a no-op.
func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return err
	}

	var applied SchemaMigration
	err := db.Where("version = ?", schemaVersion).First(&applied).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	err = db.AutoMigrate(
		&Doctor{},
		&Patient{},
		&MedicalCard{},
		&Appointment{},
		&Medication{},
		&Administrator{},
	)
	if err != nil {
		return err
	}

	return db.Create(&SchemaMigration{Version: schemaVersion, AppliedAt: time.Now()}).Error
}
