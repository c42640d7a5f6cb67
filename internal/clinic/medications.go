package clinic

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"clinic-manager/internal/models"
)

// MedicationRequest is the input for prescribing or editing a medication.
type MedicationRequest struct {
	Name             string `validate:"required"`
	UsageDescription string
}

// PrescribeMedication adds a medication to one of the doctor's patients.
func (s *Service) PrescribeMedication(sess *Session, patientID uint, req MedicationRequest) (*models.Medication, error) {
	if sess.Role != models.RoleDoctor {
		return nil, fmt.Errorf("%w: only doctors may prescribe medications", ErrNotAuthorized)
	}
	if err := s.validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	patient, err := s.lookupPatient(sess, patientID)
	if err != nil {
		return nil, err
	}

	medication := models.Medication{
		PatientID:        patient.ID,
		Name:             req.Name,
		UsageDescription: req.UsageDescription,
	}
	if err := s.db.Create(&medication).Error; err != nil {
		return nil, s.storeErr(err)
	}

	s.log.Info().
		Uint("medication_id", medication.ID).
		Uint("patient_id", patient.ID).
		Str("name", medication.Name).
		Msg("medication prescribed")
	return &medication, nil
}

// UpdateMedication edits an existing prescription of one of the doctor's
// patients.
func (s *Service) UpdateMedication(sess *Session, medicationID uint, req MedicationRequest) (*models.Medication, error) {
	if sess.Role != models.RoleDoctor {
		return nil, fmt.Errorf("%w: only doctors may edit medications", ErrNotAuthorized)
	}
	if err := s.validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	medication, err := s.lookupMedication(sess, medicationID)
	if err != nil {
		return nil, err
	}

	medication.Name = req.Name
	medication.UsageDescription = req.UsageDescription
	if err := s.db.Save(medication).Error; err != nil {
		return nil, s.storeErr(err)
	}
	return medication, nil
}

// DeleteMedication removes a prescription of one of the doctor's patients.
func (s *Service) DeleteMedication(sess *Session, medicationID uint) error {
	if sess.Role != models.RoleDoctor {
		return fmt.Errorf("%w: only doctors may delete medications", ErrNotAuthorized)
	}
	medication, err := s.lookupMedication(sess, medicationID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(medication).Error; err != nil {
		return s.storeErr(err)
	}
	s.log.Info().Uint("medication_id", medicationID).Msg("medication deleted")
	return nil
}

// MedicationsFor lists a patient's medications, subject to the session's
// access rule.
func (s *Service) MedicationsFor(sess *Session, patientID uint) ([]models.Medication, error) {
	patient, err := s.lookupPatient(sess, patientID)
	if err != nil {
		return nil, err
	}
	var medications []models.Medication
	err = s.db.Where("patient_id = ?", patient.ID).Order("medication_id").Find(&medications).Error
	if err != nil {
		return nil, s.storeErr(err)
	}
	return medications, nil
}

// MarkMedicationTaken records that the session's patient has taken a
// medication. Only the owning patient may do this, and the flag never
// reverses. Marking an already taken medication is a no-op success.
func (s *Service) MarkMedicationTaken(sess *Session, medicationID uint) (*models.Medication, error) {
	if sess.Role != models.RolePatient {
		return nil, fmt.Errorf("%w: only patients may mark medications as taken", ErrNotAuthorized)
	}

	var medication models.Medication
	if err := s.db.First(&medication, "medication_id = ?", medicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: medication %d", ErrNotFound, medicationID)
		}
		return nil, s.storeErr(err)
	}
	if medication.PatientID != sess.PatientID {
		return nil, fmt.Errorf("%w: this medication is not yours", ErrNotAuthorized)
	}

	if medication.IsTaken {
		return &medication, nil
	}
	medication.IsTaken = true
	if err := s.db.Save(&medication).Error; err != nil {
		return nil, s.storeErr(err)
	}
	s.log.Info().Uint("medication_id", medication.ID).Msg("medication marked taken")
	return &medication, nil
}

// lookupMedication loads a medication and checks the owning patient is
// assigned to the session's doctor.
func (s *Service) lookupMedication(sess *Session, medicationID uint) (*models.Medication, error) {
	var medication models.Medication
	if err := s.db.First(&medication, "medication_id = ?", medicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: medication %d", ErrNotFound, medicationID)
		}
		return nil, s.storeErr(err)
	}
	if _, err := s.lookupPatient(sess, medication.PatientID); err != nil {
		return nil, err
	}
	return &medication, nil
}
