package clinic

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"clinic-manager/internal/config"
	"clinic-manager/internal/models"
)

// newTestService opens a private in-memory store per test and loads a
// small fixture: doctor 111 with patients 1-3, doctor 222 with patient 4,
// unassigned patient 5, one administrator.
func newTestService(t *testing.T) *Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := models.InitDB(dsn)
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}

	doctor111 := uint(111)
	doctor222 := uint(222)
	fixtures := []interface{}{
		&models.Doctor{ID: 111, Surname: "Ivanov", Name: "Ivan", Patronymic: "Ivanovich", Password: "111222"},
		&models.Doctor{ID: 222, Surname: "Petrov", Name: "Petr", Patronymic: "Petrovich", Password: "222111"},
		&models.Administrator{ID: 1, Username: "admin", Password: "admin777"},
		&models.Patient{ID: 1, Surname: "Belkin", Name: "Dmitry", Patronymic: "Dmitrievich", DoctorID: &doctor111},
		&models.Patient{ID: 2, Surname: "Volkov", Name: "Andrey", Patronymic: "Vladimirovich", DoctorID: &doctor111},
		&models.Patient{ID: 3, Surname: "Kotov", Name: "Vladislav", Patronymic: "Vladislavovich", DoctorID: &doctor111},
		&models.Patient{ID: 4, Surname: "Medvedev", Name: "Mikhail", Patronymic: "Mikhailovich", DoctorID: &doctor222},
		&models.Patient{ID: 5, Surname: "Strelkin", Name: "Nikolay", Patronymic: "Nikolaevich"},
		&models.MedicalCard{PatientID: 1, HealthComplaints: "headache", MedicalHistory: "none"},
		&models.MedicalCard{PatientID: 4, HealthComplaints: "cough", MedicalHistory: "none"},
		&models.Medication{ID: 10, PatientID: 1, Name: "Paracetamol", UsageDescription: "3x daily"},
		&models.Medication{ID: 11, PatientID: 4, Name: "Ibuprofen", UsageDescription: "as needed"},
	}
	for _, f := range fixtures {
		if err := db.Create(f).Error; err != nil {
			t.Fatalf("loading fixture %T: %v", f, err)
		}
	}

	cfg := &config.Config{OperatingYear: 2025}
	return NewService(db, cfg, zerolog.Nop())
}

func doctorSession(id uint) *Session {
	return &Session{Role: models.RoleDoctor, DoctorID: id}
}

func patientSession(id uint) *Session {
	return &Session{Role: models.RolePatient, PatientID: id}
}
