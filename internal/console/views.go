package console

import (
	"errors"
	"fmt"

	"clinic-manager/internal/clinic"
	"clinic-manager/internal/models"
)

func (c *Console) showDoctors() {
	doctors, err := c.svc.Doctors()
	if err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "\nDOCTORS:")
	for _, d := range doctors {
		fmt.Fprintf(c.out, "ID: %d, %s\n", d.ID, d.FullName())
	}
}

func (c *Console) showPatients() {
	patients, err := c.svc.Patients()
	if err != nil {
		c.printError(err)
		return
	}
	c.printPatients(patients)
}

func (c *Console) showDoctorPatients(sess *clinic.Session) {
	patients, err := c.svc.PatientsOf(sess)
	if err != nil {
		c.printError(err)
		return
	}
	if len(patients) == 0 {
		fmt.Fprintln(c.out, "You have no patients yet.")
		return
	}
	c.printPatients(patients)
}

func (c *Console) printPatients(patients []models.Patient) {
	fmt.Fprintln(c.out, "\nPATIENTS:")
	for _, p := range patients {
		fmt.Fprintf(c.out, "ID: %d, %s\n", p.ID, p.FullName())
	}
}

func (c *Console) showCard(sess *clinic.Session, patientID uint) {
	view, err := c.svc.MedicalCard(sess, patientID)
	if err != nil {
		c.printError(err)
		return
	}

	fmt.Fprintln(c.out, "\nMEDICAL CARD")
	fmt.Fprintf(c.out, "Patient: %s (ID: %d)\n", view.Patient.FullName(), view.Patient.ID)
	if view.Doctor != nil {
		fmt.Fprintf(c.out, "Attending doctor: %s\n", view.Doctor.FullName())
	}
	if view.Card != nil {
		fmt.Fprintf(c.out, "Complaints: %s\n", view.Card.HealthComplaints)
		fmt.Fprintf(c.out, "History: %s\n", view.Card.MedicalHistory)
		if view.Card.TreatmentPlan != "" {
			fmt.Fprintf(c.out, "Treatment plan: %s\n", view.Card.TreatmentPlan)
		}
	} else {
		fmt.Fprintln(c.out, "No medical card on file.")
	}
	if len(view.Medications) > 0 {
		fmt.Fprintln(c.out, "Prescribed medications:")
		for _, m := range view.Medications {
			fmt.Fprintf(c.out, "  - %s (%s)\n", m.Name, m.UsageDescription)
		}
	}
}

func (c *Console) updateCard(sess *clinic.Session) {
	patientID, ok := c.readUint("Patient ID: ")
	if !ok {
		return
	}
	var upd clinic.CardUpdate
	if v, ok := c.readOptional("Health complaints (Enter to keep): "); ok {
		upd.HealthComplaints = v
	}
	if v, ok := c.readOptional("Medical history (Enter to keep): "); ok {
		upd.MedicalHistory = v
	}
	if v, ok := c.readOptional("Treatment plan (Enter to keep): "); ok {
		upd.TreatmentPlan = v
	}
	if _, err := c.svc.UpdateMedicalCard(sess, patientID, upd); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Medical card updated.")
}

func (c *Console) prescribe(sess *clinic.Session) {
	patientID, ok := c.readUint("Patient ID: ")
	if !ok {
		return
	}
	name, ok := c.readLine("Medication name: ")
	if !ok {
		return
	}
	usage, ok := c.readLine("Usage description: ")
	if !ok {
		return
	}
	m, err := c.svc.PrescribeMedication(sess, patientID, clinic.MedicationRequest{
		Name:             name,
		UsageDescription: usage,
	})
	if err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "Medication %q prescribed, ID: %d.\n", m.Name, m.ID)
}

func (c *Console) updateMedication(sess *clinic.Session) {
	medicationID, ok := c.readUint("Medication ID: ")
	if !ok {
		return
	}
	name, ok := c.readLine("New name: ")
	if !ok {
		return
	}
	usage, ok := c.readLine("New usage description: ")
	if !ok {
		return
	}
	if _, err := c.svc.UpdateMedication(sess, medicationID, clinic.MedicationRequest{
		Name:             name,
		UsageDescription: usage,
	}); err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Medication updated.")
}

func (c *Console) showMedications(sess *clinic.Session, patientID uint) {
	medications, err := c.svc.MedicationsFor(sess, patientID)
	if err != nil {
		c.printError(err)
		return
	}
	if len(medications) == 0 {
		fmt.Fprintln(c.out, "No medications prescribed.")
		return
	}
	fmt.Fprintln(c.out, "\nMEDICATIONS:")
	for _, m := range medications {
		status := "not taken"
		if m.IsTaken {
			status = "taken"
		}
		fmt.Fprintf(c.out, "ID: %d, %s - %s [%s]\n", m.ID, m.Name, m.UsageDescription, status)
	}
}

func (c *Console) showAppointments(sess *clinic.Session, patientID uint) {
	appointments, err := c.svc.AppointmentsFor(sess, patientID)
	if err != nil {
		c.printError(err)
		return
	}
	if len(appointments) == 0 {
		fmt.Fprintln(c.out, "No appointments scheduled.")
		return
	}
	c.printAppointments(appointments)
}

func (c *Console) showAllAppointments() {
	appointments, err := c.svc.Appointments()
	if err != nil {
		c.printError(err)
		return
	}
	c.printAppointments(appointments)
}

func (c *Console) printAppointments(appointments []models.Appointment) {
	fmt.Fprintln(c.out, "\nAPPOINTMENTS:")
	for _, a := range appointments {
		status := "pending"
		if a.Confirmed {
			status = "confirmed"
		}
		fmt.Fprintf(c.out, "ID: %d, patient %d, %s %s [%s]\n", a.ID, a.PatientID, a.Date, a.Time, status)
	}
}

func (c *Console) schedule() {
	patientID, ok := c.readUint("Patient ID: ")
	if !ok {
		return
	}
	date, ok := c.readLine("Date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	clock, ok := c.readLine("Time (HH:MM): ")
	if !ok {
		return
	}
	a, err := c.svc.Schedule(clinic.ScheduleRequest{PatientID: patientID, Date: date, Time: clock})
	if err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "Appointment %d scheduled for %s %s.\n", a.ID, a.Date, a.Time)
}

// printError maps a service failure to a console message by kind.
func (c *Console) printError(err error) {
	switch {
	case errors.Is(err, clinic.ErrNotFound),
		errors.Is(err, clinic.ErrInvalidInput),
		errors.Is(err, clinic.ErrInvalidCredentials),
		errors.Is(err, clinic.ErrSlotTaken),
		errors.Is(err, clinic.ErrNotAuthorized):
		fmt.Fprintf(c.out, "Error: %v\n", err)
	default:
		c.log.Error().Err(err).Msg("operation failed")
		fmt.Fprintf(c.out, "Error: %v\n", err)
	}
}
