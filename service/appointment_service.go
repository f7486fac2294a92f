package service

import (
	"context"
	"time"

	"github.com/clinicore/clinic-api/model"
	"github.com/clinicore/clinic-api/repository"
)

// Clinic working hours used to derive the bookable slot grid.
const (
	slotGridStartHour = 9
	slotGridEndHour   = 17
	slotGridStep      = 30 * time.Minute
)

type AppointmentService struct {
	appointments *repository.AppointmentRepository
}

func NewAppointmentService(appointments *repository.AppointmentRepository) *AppointmentService {
	return &AppointmentService{appointments: appointments}
}

// IsSlotAvailable reports whether the doctor has no non-cancelled
// appointment at exactly the given timestamp.
func (s *AppointmentService) IsSlotAvailable(ctx context.Context, doctorID uint, at time.Time) (bool, error) {
	taken, err := s.appointments.ExistsActiveSlot(ctx, doctorID, at)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

// Book sets the appointment status to Booked and inserts it unless the
// doctor's slot is already taken. The timestamp is normalized to UTC, so
// the same instant sent with different offsets counts as one slot. Returns
// false without persisting anything when the slot is taken; the existing
// appointment is left untouched.
func (s *AppointmentService) Book(ctx context.Context, appointment *model.Appointment) (bool, error) {
	appointment.AppointmentDate = appointment.AppointmentDate.UTC()
	appointment.Status = model.StatusBooked
	return s.appointments.CreateIfSlotFree(ctx, appointment)
}

// Cancel marks the appointment as Cancelled, freeing its slot. A missing id
// is a silent no-op. Cancelling a completed appointment is rejected.
func (s *AppointmentService) Cancel(ctx context.Context, id uint) error {
	return s.transition(ctx, id, model.StatusCancelled, true)
}

// Confirm moves a booked appointment to Confirmed.
func (s *AppointmentService) Confirm(ctx context.Context, id uint) error {
	return s.transition(ctx, id, model.StatusConfirmed, false)
}

// Complete moves a confirmed appointment to Completed.
func (s *AppointmentService) Complete(ctx context.Context, id uint) error {
	return s.transition(ctx, id, model.StatusCompleted, false)
}

func (s *AppointmentService) transition(ctx context.Context, id uint, next model.AppointmentStatus, missingOK bool) error {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appointment == nil {
		if missingOK {
			return nil
		}
		return ErrNotFound
	}

	if !appointment.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}

	appointment.Status = next
	s.appointments.Update(appointment)
	return s.appointments.SaveChanges(ctx)
}

func (s *AppointmentService) Get(ctx context.Context, id uint) (*model.Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

// List returns appointments newest first, filtered to a doctor's calendar
// day when doctorID is non-zero.
func (s *AppointmentService) List(ctx context.Context, doctorID uint, day time.Time) ([]model.Appointment, error) {
	if doctorID == 0 {
		return s.appointments.ListAll(ctx)
	}
	return s.appointments.ListByDoctorAndDate(ctx, doctorID, day)
}

// AvailableSlots returns the free 30-minute grid slots within working hours
// for the doctor on the given calendar day.
func (s *AppointmentService) AvailableSlots(ctx context.Context, doctorID uint, day time.Time) ([]time.Time, error) {
	booked, err := s.appointments.BookedTimes(ctx, doctorID, day)
	if err != nil {
		return nil, err
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), slotGridStartHour, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), slotGridEndHour, 0, 0, 0, day.Location())

	slots := make([]time.Time, 0, int(end.Sub(start)/slotGridStep))
	for at := start; at.Before(end); at = at.Add(slotGridStep) {
		if slotBooked(at, booked) {
			continue
		}
		slots = append(slots, at)
	}
	return slots, nil
}

func slotBooked(at time.Time, booked []time.Time) bool {
	for _, b := range booked {
		if b.Equal(at) {
			return true
		}
	}
	return false
}
