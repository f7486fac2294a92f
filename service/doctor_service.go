package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/clinicore/clinic-api/model"
	"github.com/clinicore/clinic-api/repository"
	"github.com/clinicore/clinic-api/util"
)

type DoctorService struct {
	doctors   *repository.DoctorRepository
	hospitals *repository.HospitalRepository
}

func NewDoctorService(doctors *repository.DoctorRepository, hospitals *repository.HospitalRepository) *DoctorService {
	return &DoctorService{doctors: doctors, hospitals: hospitals}
}

// Create stores a new doctor associated with the hospitals matching
// hospitalIDs. Ids that resolve to no hospital are skipped: the doctor is
// still created with the resolvable subset, and the skip is audit-logged.
func (s *DoctorService) Create(ctx context.Context, doctor *model.Doctor, hospitalIDs []uint) error {
	resolved, err := s.resolveHospitals(ctx, hospitalIDs)
	if err != nil {
		return err
	}
	doctor.Hospitals = resolved

	s.doctors.Add(doctor)
	return s.doctors.SaveChanges(ctx)
}

// Update overwrites the doctor's scalar fields and replaces its hospital
// association set from hospitalIDs, with the same skip rule as Create.
// Returns ErrNotFound when the doctor does not exist.
func (s *DoctorService) Update(ctx context.Context, id uint, input *model.Doctor, hospitalIDs []uint) (*model.Doctor, error) {
	existing, err := s.doctors.GetWithHospitals(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	existing.FullName = input.FullName
	existing.Specialization = input.Specialization
	existing.ConsultationFee = input.ConsultationFee
	if input.Availability != nil {
		existing.Availability = input.Availability
	}

	resolved, err := s.resolveHospitals(ctx, hospitalIDs)
	if err != nil {
		return nil, err
	}

	s.doctors.Update(existing)
	s.doctors.ReplaceHospitals(existing, resolved)
	if err := s.doctors.SaveChanges(ctx); err != nil {
		return nil, err
	}
	existing.Hospitals = resolved
	return existing, nil
}

// List returns all doctors, or only those with the given specialization
// when it is non-empty.
func (s *DoctorService) List(ctx context.Context, specialization string) ([]model.Doctor, error) {
	if specialization == "" {
		return s.doctors.GetAll(ctx)
	}
	return s.doctors.FindBySpecialization(ctx, specialization)
}

func (s *DoctorService) Get(ctx context.Context, id uint) (*model.Doctor, error) {
	return s.doctors.GetWithHospitals(ctx, id)
}

func (s *DoctorService) Delete(ctx context.Context, id uint) error {
	s.doctors.Delete(id)
	return s.doctors.SaveChanges(ctx)
}

// Specializations returns the distinct specialization values across all
// doctors, sorted ascending. The projection happens in memory over the full
// doctor list, so it does not scale with table size.
func (s *DoctorService) Specializations(ctx context.Context) ([]string, error) {
	doctors, err := s.doctors.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(doctors))
	specializations := make([]string, 0, len(doctors))
	for _, d := range doctors {
		if _, ok := seen[d.Specialization]; ok {
			continue
		}
		seen[d.Specialization] = struct{}{}
		specializations = append(specializations, d.Specialization)
	}

	sort.Strings(specializations)
	return specializations, nil
}

func (s *DoctorService) resolveHospitals(ctx context.Context, ids []uint) ([]model.Hospital, error) {
	resolved, err := s.hospitals.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	if len(resolved) != len(ids) {
		found := make(map[uint]struct{}, len(resolved))
		for _, h := range resolved {
			found[h.ID] = struct{}{}
		}
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				util.LogAuditEvent(util.AuditEvent{
					EventType: util.EventHospitalSkipped,
					Message:   fmt.Sprintf("hospital id %d does not resolve, skipped", id),
					Details:   map[string]interface{}{"hospital_id": id},
				})
			}
		}
	}

	return resolved, nil
}
