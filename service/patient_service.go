package service

import (
	"context"
	"strings"

	"github.com/clinicore/clinic-api/model"
	"github.com/clinicore/clinic-api/repository"
)

type PatientService struct {
	patients *repository.PatientRepository
}

func NewPatientService(patients *repository.PatientRepository) *PatientService {
	return &PatientService{patients: patients}
}

// Register stores a new patient and returns the generated id. A patient
// with the same contact number must not already exist; the check and the
// insert are two round-trips, the contact number is a soft-unique key only.
func (s *PatientService) Register(ctx context.Context, patient *model.Patient) (uint, error) {
	existing, err := s.patients.FindByContactNumber(ctx, patient.ContactNumber)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrDuplicateContact
	}

	s.patients.Add(patient)
	if err := s.patients.SaveChanges(ctx); err != nil {
		return 0, err
	}
	return patient.ID, nil
}

// Search returns all patients when term is empty or whitespace, otherwise
// the patients whose name contains term.
func (s *PatientService) Search(ctx context.Context, term string) ([]model.Patient, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.patients.GetAll(ctx)
	}
	return s.patients.SearchByName(ctx, term)
}

func (s *PatientService) Get(ctx context.Context, id uint) (*model.Patient, error) {
	return s.patients.GetByID(ctx, id)
}

// Update saves the full patient row. Last writer wins.
func (s *PatientService) Update(ctx context.Context, patient *model.Patient) error {
	s.patients.Update(patient)
	return s.patients.SaveChanges(ctx)
}

// Delete removes the patient. No dependency check happens here: an
// appointment referencing the patient makes the delete fail on the foreign
// key constraint and that error propagates as-is.
func (s *PatientService) Delete(ctx context.Context, id uint) error {
	s.patients.Delete(id)
	return s.patients.SaveChanges(ctx)
}
