package service

import (
	"testing"

	"github.com/clinicore/clinic-api/config"
	"github.com/clinicore/clinic-api/model"
	"gorm.io/gorm"
)

var serviceTestModels = []interface{}{
	&model.Patient{},
	&model.Hospital{},
	&model.Doctor{},
	&model.Appointment{},
}

// setupServiceTestDB connects the in-memory test database, migrates the
// entity tables and wipes them. Tables are dropped again on cleanup.
func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	t.Setenv("APPENV", "test")

	db, err := config.ConnectDB()
	if err != nil {
		t.Fatalf("connect test db: %v", err)
	}

	if err := db.AutoMigrate(serviceTestModels...); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	db.Exec("DELETE FROM doctor_hospitals")
	for _, m := range serviceTestModels {
		db.Where("1 = 1").Delete(m)
	}

	t.Cleanup(func() {
		db.Exec("DROP TABLE IF EXISTS doctor_hospitals")
		for _, m := range serviceTestModels {
			_ = db.Migrator().DropTable(m)
		}
	})

	return db
}

func seedHospital(t *testing.T, db *gorm.DB, name string) model.Hospital {
	t.Helper()
	hospital := model.Hospital{Name: name, Address: "1 Health Way"}
	if err := db.Create(&hospital).Error; err != nil {
		t.Fatalf("seed hospital: %v", err)
	}
	return hospital
}

func seedDoctor(t *testing.T, db *gorm.DB, name, specialization string) model.Doctor {
	t.Helper()
	doctor := model.Doctor{FullName: name, Specialization: specialization, ConsultationFee: 500}
	if err := db.Create(&doctor).Error; err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
	return doctor
}

func seedPatient(t *testing.T, db *gorm.DB, name, contact string) model.Patient {
	t.Helper()
	patient := model.Patient{FullName: name, ContactNumber: contact}
	if err := db.Create(&patient).Error; err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	return patient
}
