// Package seed loads the fixed reference dataset: two doctors, one
// administrator and seven demo patients with cards, appointments and
// medications. The console never creates doctors or administrators, so a
// fresh store is unusable until this has run.
package seed

import (
	"gorm.io/gorm"

	"clinic-manager/internal/models"
)

func uintPtr(v uint) *uint { return &v }

var doctors = []models.Doctor{
	{ID: 111, Surname: "Антибиотиков", Name: "Андрей", Patronymic: "Андреевич", Password: "111222"},
	{ID: 222, Surname: "Вируснов", Name: "Виталий", Patronymic: "Витальевич", Password: "222111"},
}

var administrators = []models.Administrator{
	{ID: 1, Username: "admin", Password: "admin777"},
}

var patients = []models.Patient{
	{ID: 1, Surname: "Белкин", Name: "Дмитрий", Patronymic: "Дмитриевич", DoctorID: uintPtr(111)},
	{ID: 2, Surname: "Волков", Name: "Андрей", Patronymic: "Владимирович", DoctorID: uintPtr(111)},
	{ID: 3, Surname: "Котов", Name: "Владислав", Patronymic: "Владиславович", DoctorID: uintPtr(111)},
	{ID: 4, Surname: "Медведев", Name: "Михаил", Patronymic: "Михайлович", DoctorID: uintPtr(222)},
	{ID: 5, Surname: "Стрелкин", Name: "Николай", Patronymic: "Николаевич", DoctorID: uintPtr(222)},
	{ID: 6, Surname: "Петров", Name: "Антон", Patronymic: "Антонович", DoctorID: uintPtr(222)},
	{ID: 7, Surname: "Соколов", Name: "Олег", Patronymic: "Олегович", DoctorID: uintPtr(222)},
}

var medicalCards = []models.MedicalCard{
	{PatientID: 1, HealthComplaints: "Головная боль, кашель, температура", MedicalHistory: "Ранее болел ОРВИ и простой простудой"},
	{PatientID: 2, HealthComplaints: "Кашель, высокая температура", MedicalHistory: "Ранее болел простой простудой"},
	{PatientID: 3, HealthComplaints: "Озноб, головная боль, головокружение", MedicalHistory: "Ранее болел ОРВИ"},
	{PatientID: 4, HealthComplaints: "Насморк, красное горло, кашель", MedicalHistory: "Ранее болел ангиной"},
	{PatientID: 5, HealthComplaints: "Насморк, головная боль, головокружение", MedicalHistory: "Ранее ничем не болел"},
	{PatientID: 6, HealthComplaints: "Кашель, озноб", MedicalHistory: "Ранее болел простой простудой"},
	{PatientID: 7, HealthComplaints: "Кашель, насморк, головная боль, красное горло", MedicalHistory: "Ранее болел ОРВИ и простой простудой"},
}

var appointments = []models.Appointment{
	{PatientID: 1, Date: "2025-01-15", Time: "10:00", Confirmed: true},
	{PatientID: 2, Date: "2025-01-16", Time: "11:30", Confirmed: true},
	{PatientID: 4, Date: "2025-01-18", Time: "09:00", Confirmed: true},
	{PatientID: 6, Date: "2025-01-20", Time: "16:45", Confirmed: true},
}

var medications = []models.Medication{
	{PatientID: 1, Name: "Парацетамол", UsageDescription: "По 1 таблетке 3 раза в день после еды", IsTaken: true},
	{PatientID: 2, Name: "Амоксиклав", UsageDescription: "По 1 таблетке 2 раза в день 7 дней"},
	{PatientID: 3, Name: "Ибупрофен", UsageDescription: "По 1 таблетке при температуре"},
	{PatientID: 4, Name: "Тантум Верде", UsageDescription: "По 1 впрыскиванию 3 раза в день", IsTaken: true},
	{PatientID: 5, Name: "Називин", UsageDescription: "По 1 впрыскиванию в каждую ноздрю 2 раза в день"},
	{PatientID: 6, Name: "Арбидол", UsageDescription: "По 2 капсулы 4 раза в день"},
	{PatientID: 7, Name: "Стрепсилс", UsageDescription: "По 1 таблетке каждые 2-3 часа"},
}

// Apply resets the store to the reference dataset. It wipes existing rows
// first, so reruns always converge to the same state.
func Apply(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.Medication{}, &models.Appointment{}, &models.MedicalCard{},
			&models.Patient{}, &models.Doctor{}, &models.Administrator{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(&doctors).Error; err != nil {
			return err
		}
		if err := tx.Create(&administrators).Error; err != nil {
			return err
		}
		if err := tx.Create(&patients).Error; err != nil {
			return err
		}
		if err := tx.Create(&medicalCards).Error; err != nil {
			return err
		}
		appts := make([]models.Appointment, len(appointments))
		copy(appts, appointments)
		if err := tx.Create(&appts).Error; err != nil {
			return err
		}
		meds := make([]models.Medication, len(medications))
		copy(meds, medications)
		return tx.Create(&meds).Error
	})
}
