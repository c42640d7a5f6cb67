// Package clinic implements the record-keeping operations behind the
// console: authentication, appointment scheduling and confirmation,
// medical cards and medication management, with per-role authorization.
package clinic

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"clinic-manager/internal/config"
	"clinic-manager/internal/models"
)

// Service exposes the clinic operations over the relational store.
type Service struct {
	db       *gorm.DB
	cfg      *config.Config
	log      zerolog.Logger
	validate *validator.Validate
}

// NewService creates a new Service.
func NewService(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *Service {
	return &Service{
		db:       db,
		cfg:      cfg,
		log:      log,
		validate: validator.New(),
	}
}

func (s *Service) storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// lookupPatient loads a patient and applies the session's access rule:
// admins see everyone, doctors only their own patients, patients only
// themselves.
func (s *Service) lookupPatient(sess *Session, patientID uint) (*models.Patient, error) {
	var patient models.Patient
	if err := s.db.First(&patient, "patient_id = ?", patientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: patient %d", ErrNotFound, patientID)
		}
		return nil, s.storeErr(err)
	}

	switch sess.Role {
	case models.RoleAdmin:
		return &patient, nil
	case models.RoleDoctor:
		if patient.DoctorID == nil || *patient.DoctorID != sess.DoctorID {
			return nil, fmt.Errorf("%w: this is not your patient", ErrNotAuthorized)
		}
		return &patient, nil
	case models.RolePatient:
		if patient.ID != sess.PatientID {
			return nil, fmt.Errorf("%w: you may only access your own records", ErrNotAuthorized)
		}
		return &patient, nil
	}
	return nil, fmt.Errorf("%w: unknown role %q", ErrNotAuthorized, sess.Role)
}
