package clinic

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"clinic-manager/internal/models"
)

// Operating window. Appointments may start at any minute from opening up
// to and including closing.
const (
	openingHour = 8
	closingHour = 20
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ScheduleRequest is the input for scheduling an appointment.
type ScheduleRequest struct {
	PatientID uint   `validate:"required"`
	Date      string `validate:"required"`
	Time      string `validate:"required"`
}

// Schedule books a new, unconfirmed appointment. The slot must be free
// across all patients, the date must fall in the configured operating year
// and the time inside the operating window.
func (s *Service) Schedule(req ScheduleRequest) (*models.Appointment, error) {
	if err := s.validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var patient models.Patient
	if err := s.db.First(&patient, "patient_id = ?", req.PatientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: patient %d", ErrNotFound, req.PatientID)
		}
		return nil, s.storeErr(err)
	}

	day, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidInput, req.Date)
	}
	if day.Year() != s.cfg.OperatingYear {
		return nil, fmt.Errorf("%w: appointments are only accepted for %d", ErrInvalidInput, s.cfg.OperatingYear)
	}

	at, err := time.Parse(timeLayout, req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time %q, expected HH:MM", ErrInvalidInput, req.Time)
	}
	minutes := at.Hour()*60 + at.Minute()
	if minutes < openingHour*60 || minutes > closingHour*60 {
		return nil, fmt.Errorf("%w: time must be between %02d:00 and %02d:00", ErrInvalidInput, openingHour, closingHour)
	}

	// Reformat so the slot comparison is not fooled by input spelling.
	date := day.Format(dateLayout)
	clock := at.Format(timeLayout)

	var taken int64
	err = s.db.Model(&models.Appointment{}).
		Where("appointment_date = ? AND appointment_time = ?", date, clock).
		Count(&taken).Error
	if err != nil {
		return nil, s.storeErr(err)
	}
	if taken > 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrSlotTaken, date, clock)
	}

	appointment := models.Appointment{
		PatientID: req.PatientID,
		Date:      date,
		Time:      clock,
	}
	if err := s.db.Create(&appointment).Error; err != nil {
		return nil, s.storeErr(err)
	}

	s.log.Info().
		Uint("appointment_id", appointment.ID).
		Uint("patient_id", appointment.PatientID).
		Str("slot", date+" "+clock).
		Msg("appointment scheduled")
	return &appointment, nil
}

// Confirm marks an appointment as confirmed. Confirming an already
// confirmed appointment is a no-op success.
func (s *Service) Confirm(appointmentID uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := s.db.First(&appointment, "appointment_id = ?", appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: appointment %d", ErrNotFound, appointmentID)
		}
		return nil, s.storeErr(err)
	}

	if appointment.Confirmed {
		return &appointment, nil
	}

	appointment.Confirmed = true
	if err := s.db.Save(&appointment).Error; err != nil {
		return nil, s.storeErr(err)
	}
	s.log.Info().Uint("appointment_id", appointment.ID).Msg("appointment confirmed")
	return &appointment, nil
}

// DeleteAppointment removes an appointment by id.
func (s *Service) DeleteAppointment(appointmentID uint) error {
	result := s.db.Delete(&models.Appointment{}, "appointment_id = ?", appointmentID)
	if result.Error != nil {
		return s.storeErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: appointment %d", ErrNotFound, appointmentID)
	}
	return nil
}

// Appointments lists every appointment, ordered by slot.
func (s *Service) Appointments() ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.Order("appointment_date, appointment_time").Find(&appointments).Error
	if err != nil {
		return nil, s.storeErr(err)
	}
	return appointments, nil
}

// AppointmentsFor lists a patient's appointments, subject to the session's
// access rule.
func (s *Service) AppointmentsFor(sess *Session, patientID uint) ([]models.Appointment, error) {
	patient, err := s.lookupPatient(sess, patientID)
	if err != nil {
		return nil, err
	}

	var appointments []models.Appointment
	err = s.db.Where("patient_id = ?", patient.ID).
		Order("appointment_date, appointment_time").
		Find(&appointments).Error
	if err != nil {
		return nil, s.storeErr(err)
	}
	return appointments, nil
}
