package service

import (
	"context"

	"github.com/clinicore/clinic-api/model"
	"github.com/clinicore/clinic-api/repository"
)

// HospitalService is a straight CRUD pass-through, no business rules.
type HospitalService struct {
	hospitals *repository.HospitalRepository
}

func NewHospitalService(hospitals *repository.HospitalRepository) *HospitalService {
	return &HospitalService{hospitals: hospitals}
}

func (s *HospitalService) Create(ctx context.Context, hospital *model.Hospital) (uint, error) {
	s.hospitals.Add(hospital)
	if err := s.hospitals.SaveChanges(ctx); err != nil {
		return 0, err
	}
	return hospital.ID, nil
}

func (s *HospitalService) List(ctx context.Context) ([]model.Hospital, error) {
	return s.hospitals.GetAll(ctx)
}

func (s *HospitalService) Get(ctx context.Context, id uint) (*model.Hospital, error) {
	return s.hospitals.GetByID(ctx, id)
}

func (s *HospitalService) Update(ctx context.Context, hospital *model.Hospital) error {
	s.hospitals.Update(hospital)
	return s.hospitals.SaveChanges(ctx)
}

// Delete removes the hospital. A hospital referenced by an appointment
// fails on the foreign key constraint; the error propagates as-is.
func (s *HospitalService) Delete(ctx context.Context, id uint) error {
	s.hospitals.Delete(id)
	return s.hospitals.SaveChanges(ctx)
}
