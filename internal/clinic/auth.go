package clinic

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"clinic-manager/internal/models"
)

// Session identifies an authenticated caller. It is threaded explicitly
// through every operation instead of being held as ambient state.
type Session struct {
	Role        models.Role
	DoctorID    uint
	PatientID   uint
	AdminID     uint
	DisplayName string
}

// Credentials carries the role-specific login input. Doctors log in with
// ID and password, administrators with username and password, patients
// with ID alone.
type Credentials struct {
	ID       uint
	Username string
	Password string
}

// Authenticate checks credentials for the given role and returns a session.
//
// Passwords are compared in plaintext and patients present no credential at
// all. Both are preserved legacy behavior, flagged as a known weakness
// rather than silently fixed.
func (s *Service) Authenticate(role models.Role, creds Credentials) (*Session, error) {
	switch role {
	case models.RoleDoctor:
		var doctor models.Doctor
		if err := s.db.First(&doctor, "doctor_id = ?", creds.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: doctor %d", ErrNotFound, creds.ID)
			}
			return nil, s.storeErr(err)
		}
		if doctor.Password != creds.Password {
			return nil, fmt.Errorf("%w: wrong password", ErrInvalidCredentials)
		}
		s.log.Info().Uint("doctor_id", doctor.ID).Msg("doctor logged in")
		return &Session{Role: models.RoleDoctor, DoctorID: doctor.ID, DisplayName: doctor.FullName()}, nil

	case models.RolePatient:
		var patient models.Patient
		if err := s.db.First(&patient, "patient_id = ?", creds.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: patient %d", ErrNotFound, creds.ID)
			}
			return nil, s.storeErr(err)
		}
		s.log.Info().Uint("patient_id", patient.ID).Msg("patient logged in")
		return &Session{Role: models.RolePatient, PatientID: patient.ID, DisplayName: patient.FullName()}, nil

	case models.RoleAdmin:
		var admin models.Administrator
		if err := s.db.First(&admin, "username = ?", creds.Username).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: administrator %q", ErrNotFound, creds.Username)
			}
			return nil, s.storeErr(err)
		}
		if admin.Password != creds.Password {
			return nil, fmt.Errorf("%w: wrong password", ErrInvalidCredentials)
		}
		s.log.Info().Str("username", admin.Username).Msg("administrator logged in")
		return &Session{Role: models.RoleAdmin, AdminID: admin.ID, DisplayName: admin.Username}, nil
	}

	return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
}
