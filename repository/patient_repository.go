package repository

import (
	"context"

	"github.com/clinicore/clinic-api/model"
	"gorm.io/gorm"
)

// PatientRepository adds patient-specific read queries on top of the
// generic CRUD surface.
type PatientRepository struct {
	*GormRepository[model.Patient]
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{GormRepository: NewGormRepository[model.Patient](db)}
}

// FindByContactNumber returns the patient registered with the given contact
// number, or (nil, nil) when none exists.
func (r *PatientRepository) FindByContactNumber(ctx context.Context, number string) (*model.Patient, error) {
	var patient model.Patient
	err := r.db.WithContext(ctx).Where("contact_number = ?", number).First(&patient).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// SearchByName returns patients whose full name contains term. Case
// sensitivity follows the database collation.
func (r *PatientRepository) SearchByName(ctx context.Context, term string) ([]model.Patient, error) {
	var patients []model.Patient
	kw := "%" + term + "%"
	if err := r.db.WithContext(ctx).Where("full_name LIKE ?", kw).Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}
