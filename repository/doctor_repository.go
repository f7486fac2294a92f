package repository

import (
	"context"

	"github.com/clinicore/clinic-api/model"
	"gorm.io/gorm"
)

type DoctorRepository struct {
	*GormRepository[model.Doctor]
}

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{GormRepository: NewGormRepository[model.Doctor](db)}
}

// GetWithHospitals returns the doctor with its hospital associations
// eagerly loaded, or (nil, nil) when no row matches.
func (r *DoctorRepository) GetWithHospitals(ctx context.Context, id uint) (*model.Doctor, error) {
	var doctor model.Doctor
	err := r.db.WithContext(ctx).Preload("Hospitals").First(&doctor, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *DoctorRepository) FindBySpecialization(ctx context.Context, specialization string) ([]model.Doctor, error) {
	var doctors []model.Doctor
	err := r.db.WithContext(ctx).
		Preload("Hospitals").
		Where("specialization = ?", specialization).
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

// ReplaceHospitals stages a replacement of the doctor's hospital association
// set. It runs in the same transaction as the other staged writes.
func (r *DoctorRepository) ReplaceHospitals(doctor *model.Doctor, hospitals []model.Hospital) {
	r.stage(func(tx *gorm.DB) error {
		assoc := make([]interface{}, 0, len(hospitals))
		for i := range hospitals {
			assoc = append(assoc, &hospitals[i])
		}
		return tx.Model(doctor).Association("Hospitals").Replace(assoc...)
	})
}
