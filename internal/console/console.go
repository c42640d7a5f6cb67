// Package console drives the interactive text-menu session: role
// selection, login and the per-role operation menus over the clinic
// service.
package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"clinic-manager/internal/clinic"
	"clinic-manager/internal/models"
)

// command is the closed set of console operations. Menus reference
// commands by value and dispatch switches over them exhaustively, so a new
// operation that is not handled fails code review instead of a runtime
// lookup.
type command int

const (
	cmdDoctorPatients command = iota
	cmdDoctorShowCard
	cmdDoctorUpdateCard
	cmdDoctorPrescribe
	cmdDoctorUpdateMedication
	cmdDoctorDeleteMedication
	cmdDoctorAppointments
	cmdPatientCard
	cmdPatientAppointments
	cmdPatientMedications
	cmdPatientMarkTaken
	cmdAdminDoctors
	cmdAdminPatients
	cmdAdminAppointments
	cmdAdminSchedule
	cmdAdminConfirm
	cmdAdminDeleteAppointment
)

type menuItem struct {
	label string
	cmd   command
}

var doctorMenu = []menuItem{
	{"My patients", cmdDoctorPatients},
	{"Show a patient's medical card", cmdDoctorShowCard},
	{"Update a patient's medical card", cmdDoctorUpdateCard},
	{"Prescribe a medication", cmdDoctorPrescribe},
	{"Edit a medication", cmdDoctorUpdateMedication},
	{"Delete a medication", cmdDoctorDeleteMedication},
	{"Show a patient's appointments", cmdDoctorAppointments},
}

var patientMenu = []menuItem{
	{"My medical card", cmdPatientCard},
	{"My appointments", cmdPatientAppointments},
	{"My medications", cmdPatientMedications},
	{"Mark a medication as taken", cmdPatientMarkTaken},
}

var adminMenu = []menuItem{
	{"List doctors", cmdAdminDoctors},
	{"List patients", cmdAdminPatients},
	{"List appointments", cmdAdminAppointments},
	{"Schedule an appointment", cmdAdminSchedule},
	{"Confirm an appointment", cmdAdminConfirm},
	{"Delete an appointment", cmdAdminDeleteAppointment},
}

// Console is an interactive session over stdin/stdout.
type Console struct {
	svc *clinic.Service
	in  *bufio.Scanner
	out io.Writer
	log zerolog.Logger
}

// New creates a console reading from in and printing to out.
func New(svc *clinic.Service, in io.Reader, out io.Writer, log zerolog.Logger) *Console {
	return &Console{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
		log: log,
	}
}

// Run loops on the role-selection menu until the user exits or input ends.
func (c *Console) Run() error {
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "CLINIC RECORD MANAGER")
		fmt.Fprintln(c.out, "1. Doctor login")
		fmt.Fprintln(c.out, "2. Patient login")
		fmt.Fprintln(c.out, "3. Administrator login")
		fmt.Fprintln(c.out, "0. Exit")

		choice, ok := c.readInt("Choose an option: ")
		if !ok {
			return nil
		}
		switch choice {
		case 0:
			fmt.Fprintln(c.out, "Bye.")
			return nil
		case 1:
			c.login(models.RoleDoctor)
		case 2:
			c.login(models.RolePatient)
		case 3:
			c.login(models.RoleAdmin)
		default:
			fmt.Fprintln(c.out, "Unknown option.")
		}
	}
}

func (c *Console) login(role models.Role) {
	var creds clinic.Credentials
	switch role {
	case models.RoleDoctor:
		id, ok := c.readUint("Doctor ID: ")
		if !ok {
			return
		}
		creds.ID = id
		creds.Password, ok = c.readLine("Password: ")
		if !ok {
			return
		}
	case models.RolePatient:
		id, ok := c.readUint("Patient ID: ")
		if !ok {
			return
		}
		creds.ID = id
	case models.RoleAdmin:
		var ok bool
		creds.Username, ok = c.readLine("Username: ")
		if !ok {
			return
		}
		creds.Password, ok = c.readLine("Password: ")
		if !ok {
			return
		}
	}

	sess, err := c.svc.Authenticate(role, creds)
	if err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "Welcome, %s!\n", sess.DisplayName)
	c.serve(sess)
}

func (c *Console) serve(sess *clinic.Session) {
	menu := menuFor(sess.Role)
	for {
		fmt.Fprintln(c.out)
		for i, item := range menu {
			fmt.Fprintf(c.out, "%d. %s\n", i+1, item.label)
		}
		fmt.Fprintln(c.out, "0. Log out")

		choice, ok := c.readInt("Choose an option: ")
		if !ok {
			return
		}
		if choice == 0 {
			return
		}
		if choice < 1 || choice > len(menu) {
			fmt.Fprintln(c.out, "Unknown option.")
			continue
		}
		c.dispatch(sess, menu[choice-1].cmd)
	}
}

func menuFor(role models.Role) []menuItem {
	switch role {
	case models.RoleDoctor:
		return doctorMenu
	case models.RolePatient:
		return patientMenu
	case models.RoleAdmin:
		return adminMenu
	}
	return nil
}

func (c *Console) dispatch(sess *clinic.Session, cmd command) {
	switch cmd {
	case cmdDoctorPatients:
		c.showDoctorPatients(sess)
	case cmdDoctorShowCard:
		if id, ok := c.readUint("Patient ID: "); ok {
			c.showCard(sess, id)
		}
	case cmdDoctorUpdateCard:
		c.updateCard(sess)
	case cmdDoctorPrescribe:
		c.prescribe(sess)
	case cmdDoctorUpdateMedication:
		c.updateMedication(sess)
	case cmdDoctorDeleteMedication:
		if id, ok := c.readUint("Medication ID: "); ok {
			if err := c.svc.DeleteMedication(sess, id); err != nil {
				c.printError(err)
			} else {
				fmt.Fprintln(c.out, "Medication deleted.")
			}
		}
	case cmdDoctorAppointments:
		if id, ok := c.readUint("Patient ID: "); ok {
			c.showAppointments(sess, id)
		}
	case cmdPatientCard:
		c.showCard(sess, sess.PatientID)
	case cmdPatientAppointments:
		c.showAppointments(sess, sess.PatientID)
	case cmdPatientMedications:
		c.showMedications(sess, sess.PatientID)
	case cmdPatientMarkTaken:
		if id, ok := c.readUint("Medication ID: "); ok {
			if m, err := c.svc.MarkMedicationTaken(sess, id); err != nil {
				c.printError(err)
			} else {
				fmt.Fprintf(c.out, "%s marked as taken.\n", m.Name)
			}
		}
	case cmdAdminDoctors:
		c.showDoctors()
	case cmdAdminPatients:
		c.showPatients()
	case cmdAdminAppointments:
		c.showAllAppointments()
	case cmdAdminSchedule:
		c.schedule()
	case cmdAdminConfirm:
		if id, ok := c.readUint("Appointment ID: "); ok {
			if a, err := c.svc.Confirm(id); err != nil {
				c.printError(err)
			} else {
				fmt.Fprintf(c.out, "Appointment %d confirmed for %s %s.\n", a.ID, a.Date, a.Time)
			}
		}
	case cmdAdminDeleteAppointment:
		if id, ok := c.readUint("Appointment ID: "); ok {
			if err := c.svc.DeleteAppointment(id); err != nil {
				c.printError(err)
			} else {
				fmt.Fprintln(c.out, "Appointment deleted.")
			}
		}
	}
}
