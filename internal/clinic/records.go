package clinic

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"clinic-manager/internal/models"
)

// Doctors lists all doctors.
func (s *Service) Doctors() ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := s.db.Order("doctor_id").Find(&doctors).Error; err != nil {
		return nil, s.storeErr(err)
	}
	return doctors, nil
}

// Patients lists all patients. Admin use.
func (s *Service) Patients() ([]models.Patient, error) {
	var patients []models.Patient
	if err := s.db.Order("patient_id").Find(&patients).Error; err != nil {
		return nil, s.storeErr(err)
	}
	return patients, nil
}

// PatientsOf lists the patients assigned to the session's doctor.
func (s *Service) PatientsOf(sess *Session) ([]models.Patient, error) {
	if sess.Role != models.RoleDoctor {
		return nil, fmt.Errorf("%w: doctor session required", ErrNotAuthorized)
	}
	var patients []models.Patient
	err := s.db.Where("doctor_id = ?", sess.DoctorID).Order("patient_id").Find(&patients).Error
	if err != nil {
		return nil, s.storeErr(err)
	}
	return patients, nil
}

// CardView is a patient's medical card together with the assigned doctor
// and prescribed medications, as shown on the console.
type CardView struct {
	Patient     models.Patient
	Card        *models.MedicalCard
	Doctor      *models.Doctor
	Medications []models.Medication
}

// MedicalCard returns the card view for a patient. Doctors may only view
// their own patients; patients only themselves.
func (s *Service) MedicalCard(sess *Session, patientID uint) (*CardView, error) {
	patient, err := s.lookupPatient(sess, patientID)
	if err != nil {
		return nil, err
	}

	view := &CardView{Patient: *patient}

	var card models.MedicalCard
	err = s.db.First(&card, "patient_id = ?", patient.ID).Error
	switch {
	case err == nil:
		view.Card = &card
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, s.storeErr(err)
	}

	if patient.DoctorID != nil {
		var doctor models.Doctor
		if err := s.db.First(&doctor, "doctor_id = ?", *patient.DoctorID).Error; err == nil {
			view.Doctor = &doctor
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.storeErr(err)
		}
	}

	err = s.db.Where("patient_id = ?", patient.ID).Order("medication_id").Find(&view.Medications).Error
	if err != nil {
		return nil, s.storeErr(err)
	}

	return view, nil
}

// CardUpdate carries the card fields to change. Nil fields are left as is.
type CardUpdate struct {
	HealthComplaints *string
	MedicalHistory   *string
	TreatmentPlan    *string
}

// UpdateMedicalCard updates a patient's card, creating the row lazily if
// the patient has none yet. Doctor-only, gated by assignment.
func (s *Service) UpdateMedicalCard(sess *Session, patientID uint, upd CardUpdate) (*models.MedicalCard, error) {
	if sess.Role != models.RoleDoctor {
		return nil, fmt.Errorf("%w: only doctors may edit medical cards", ErrNotAuthorized)
	}
	patient, err := s.lookupPatient(sess, patientID)
	if err != nil {
		return nil, err
	}

	var card models.MedicalCard
	err = s.db.First(&card, "patient_id = ?", patient.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		card = models.MedicalCard{PatientID: patient.ID}
	} else if err != nil {
		return nil, s.storeErr(err)
	}

	if upd.HealthComplaints != nil {
		card.HealthComplaints = *upd.HealthComplaints
	}
	if upd.MedicalHistory != nil {
		card.MedicalHistory = *upd.MedicalHistory
	}
	if upd.TreatmentPlan != nil {
		card.TreatmentPlan = *upd.TreatmentPlan
	}

	if err := s.db.Save(&card).Error; err != nil {
		return nil, s.storeErr(err)
	}
	s.log.Info().Uint("patient_id", patient.ID).Msg("medical card updated")
	return &card, nil
}
