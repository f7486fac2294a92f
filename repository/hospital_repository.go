package repository

import (
	"context"

	"github.com/clinicore/clinic-api/model"
	"gorm.io/gorm"
)

type HospitalRepository struct {
	*GormRepository[model.Hospital]
}

func NewHospitalRepository(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{GormRepository: NewGormRepository[model.Hospital](db)}
}

// FindByIDs returns the hospitals matching the given ids. Ids with no
// matching row are simply absent from the result.
func (r *HospitalRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Hospital, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var hospitals []model.Hospital
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&hospitals).Error; err != nil {
		return nil, err
	}
	return hospitals, nil
}
