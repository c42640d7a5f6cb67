package console

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"clinic-manager/internal/clinic"
	"clinic-manager/internal/config"
	"clinic-manager/internal/models"
)

// runSession feeds scripted input lines to a console over a small fixture
// store and returns everything it printed.
func runSession(t *testing.T, input ...string) string {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := models.InitDB(dsn)
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}

	doctorID := uint(111)
	fixtures := []interface{}{
		&models.Doctor{ID: 111, Surname: "Ivanov", Name: "Ivan", Patronymic: "Ivanovich", Password: "111222"},
		&models.Administrator{ID: 1, Username: "admin", Password: "admin777"},
		&models.Patient{ID: 1, Surname: "Belkin", Name: "Dmitry", Patronymic: "Dmitrievich", DoctorID: &doctorID},
		&models.MedicalCard{PatientID: 1, HealthComplaints: "headache", MedicalHistory: "none"},
	}
	for _, f := range fixtures {
		if err := db.Create(f).Error; err != nil {
			t.Fatalf("loading fixture %T: %v", f, err)
		}
	}

	svc := clinic.NewService(db, &config.Config{OperatingYear: 2025}, zerolog.Nop())
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(input, "\n") + "\n")
	if err := New(svc, in, &out, zerolog.Nop()).Run(); err != nil {
		t.Fatalf("session failed: %v", err)
	}
	return out.String()
}

func TestPatientSessionShowsOwnCard(t *testing.T) {
	out := runSession(t,
		"2", // patient login
		"1", // patient id
		"1", // my medical card
		"0", // log out
		"0", // exit
	)

	if !strings.Contains(out, "Welcome, Belkin Dmitry Dmitrievich!") {
		t.Errorf("missing login greeting:\n%s", out)
	}
	if !strings.Contains(out, "Complaints: headache") {
		t.Errorf("missing card contents:\n%s", out)
	}
}

func TestDoctorLoginRejectsWrongPassword(t *testing.T) {
	out := runSession(t,
		"1",    // doctor login
		"111",  // doctor id
		"nope", // wrong password
		"0",    // exit
	)

	if !strings.Contains(out, "invalid credentials") {
		t.Errorf("expected a credentials error:\n%s", out)
	}
	if strings.Contains(out, "Welcome") {
		t.Errorf("login should not have succeeded:\n%s", out)
	}
}

func TestAdminSchedulesAndConfirms(t *testing.T) {
	out := runSession(t,
		"3", "admin", "admin777", // admin login
		"4", "1", "2025-01-15", "10:00", // schedule for patient 1
		"5", "1", // confirm appointment 1
		"4", "1", "2025-01-15", "10:00", // same slot again
		"0", "0",
	)

	if !strings.Contains(out, "Appointment 1 scheduled for 2025-01-15 10:00.") {
		t.Errorf("missing schedule confirmation:\n%s", out)
	}
	if !strings.Contains(out, "Appointment 1 confirmed for 2025-01-15 10:00.") {
		t.Errorf("missing confirm message:\n%s", out)
	}
	if !strings.Contains(out, "slot already taken") {
		t.Errorf("missing slot conflict message:\n%s", out)
	}
}

func TestUnknownMenuChoice(t *testing.T) {
	out := runSession(t, "9", "0")
	if !strings.Contains(out, "Unknown option.") {
		t.Errorf("missing unknown-option message:\n%s", out)
	}
}

func TestSessionEndsWhenInputRunsOut(t *testing.T) {
	// Input ending mid-prompt must terminate cleanly, not loop.
	out := runSession(t, "1")
	if !strings.Contains(out, "Doctor ID: ") {
		t.Errorf("prompt not shown:\n%s", out)
	}
}
