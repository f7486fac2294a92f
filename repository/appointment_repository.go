package repository

import (
	"context"
	"errors"
	"time"

	"github.com/clinicore/clinic-api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errSlotTaken = errors.New("slot taken")

type AppointmentRepository struct {
	*GormRepository[model.Appointment]
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{GormRepository: NewGormRepository[model.Appointment](db)}
}

// ExistsActiveSlot reports whether the doctor already has a non-cancelled
// appointment at exactly the given instant. The timestamp is compared in
// UTC, matching how bookings are stored.
func (r *AppointmentRepository) ExistsActiveSlot(ctx context.Context, doctorID uint, at time.Time) (bool, error) {
	return existsActiveSlot(r.db.WithContext(ctx), doctorID, at, false)
}

func existsActiveSlot(tx *gorm.DB, doctorID uint, at time.Time, lock bool) (bool, error) {
	query := tx.Model(&model.Appointment{}).
		Where("doctor_id = ? AND appointment_date = ? AND status <> ?", doctorID, at.UTC(), model.StatusCancelled)
	if lock {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateIfSlotFree inserts the appointment unless the doctor already has a
// non-cancelled appointment at the same instant. The timestamp is stored in
// UTC so the same instant written with different offsets lands on one slot.
//
// On MySQL the availability check is a locking read: under REPEATABLE READ a
// plain COUNT is a non-locking snapshot read, and two concurrent bookings
// would both count zero and both insert. FOR UPDATE takes next-key locks on
// the (doctor_id, appointment_date) index range, so the second transaction
// blocks until the first commits and then sees its row. SQLite serializes
// writers and does not accept FOR UPDATE, so the lock is skipped there.
//
// Returns false (and persists nothing) when the slot is taken.
func (r *AppointmentRepository) CreateIfSlotFree(ctx context.Context, appointment *model.Appointment) (bool, error) {
	appointment.AppointmentDate = appointment.AppointmentDate.UTC()

	lock := r.db.Dialector.Name() == "mysql"
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := existsActiveSlot(tx, appointment.DoctorID, appointment.AppointmentDate, lock)
		if err != nil {
			return err
		}
		if taken {
			return errSlotTaken
		}
		return tx.Create(appointment).Error
	})
	if err == errSlotTaken {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListAll returns every appointment with its related entities, newest
// appointment date first.
func (r *AppointmentRepository) ListAll(ctx context.Context) ([]model.Appointment, error) {
	var appointments []model.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("Hospital").
		Order("appointment_date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// ListByDoctorAndDate returns the doctor's appointments falling on the given
// calendar day, newest first.
func (r *AppointmentRepository) ListByDoctorAndDate(ctx context.Context, doctorID uint, day time.Time) ([]model.Appointment, error) {
	start, end := dayBounds(day)

	var appointments []model.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("Hospital").
		Where("doctor_id = ? AND appointment_date >= ? AND appointment_date < ?", doctorID, start, end).
		Order("appointment_date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// BookedTimes returns the timestamps of the doctor's non-cancelled
// appointments on the given calendar day.
func (r *AppointmentRepository) BookedTimes(ctx context.Context, doctorID uint, day time.Time) ([]time.Time, error) {
	start, end := dayBounds(day)

	var appointments []model.Appointment
	err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND appointment_date >= ? AND appointment_date < ? AND status <> ?",
			doctorID, start, end, model.StatusCancelled).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}

	times := make([]time.Time, 0, len(appointments))
	for _, a := range appointments {
		times = append(times, a.AppointmentDate)
	}
	return times, nil
}

// dayBounds returns the UTC half-open interval covering the calendar day in
// the day's own location, aligned with the UTC-normalized stored timestamps.
func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}
