package service

import (
	"context"
	"testing"
	"time"

	"github.com/clinicore/clinic-api/model"
	"github.com/clinicore/clinic-api/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type appointmentFixture struct {
	svc        *AppointmentService
	db         *gorm.DB
	ctx        context.Context
	patientID  uint
	doctorID   uint
	hospitalID uint
}

func newAppointmentFixture(t *testing.T) appointmentFixture {
	t.Helper()
	db := setupServiceTestDB(t)

	patient := seedPatient(t, db, "John Doe", "081234567890")
	doctor := seedDoctor(t, db, "Dr. Jane Smith", "Cardiology")
	hospital := seedHospital(t, db, "General Hospital")

	return appointmentFixture{
		svc:        NewAppointmentService(repository.NewAppointmentRepository(db)),
		db:         db,
		ctx:        context.Background(),
		patientID:  patient.ID,
		doctorID:   doctor.ID,
		hospitalID: hospital.ID,
	}
}

func (f appointmentFixture) appointmentAt(at time.Time) *model.Appointment {
	return &model.Appointment{
		PatientID:       f.patientID,
		DoctorID:        f.doctorID,
		HospitalID:      f.hospitalID,
		AppointmentDate: at,
	}
}

func TestBookAppointmentSetsBookedStatus(t *testing.T) {
	f := newAppointmentFixture(t)
	slot := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)

	appt := f.appointmentAt(slot)
	ok, err := f.svc.Book(f.ctx, appt)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, model.StatusBooked, appt.Status)
	assert.NotZero(t, appt.ID)
	assert.False(t, appt.CreatedAt.IsZero())
}

func TestBookAppointmentRejectsTakenSlot(t *testing.T) {
	f := newAppointmentFixture(t)
	slot := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)

	first := f.appointmentAt(slot)
	ok, err := f.svc.Book(f.ctx, first)
	assert.NoError(t, err)
	assert.True(t, ok)

	second := f.appointmentAt(slot)
	ok, err = f.svc.Book(f.ctx, second)
	assert.NoError(t, err)
	assert.False(t, ok)

	// The first appointment is unmodified and remains the only row.
	got, err := f.svc.Get(f.ctx, first.ID)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusBooked, got.Status)

	var count int64
	f.db.Model(&model.Appointment{}).Count(&count)
	assert.EqualValues(t, 1, count)

	// Exact-timestamp matching only: 29 minutes away is a different slot.
	near := f.appointmentAt(slot.Add(29 * time.Minute))
	ok, err = f.svc.Book(f.ctx, near)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestCancelFreesSlotForRebooking(t *testing.T) {
	f := newAppointmentFixture(t)
	slot := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)

	appt := f.appointmentAt(slot)
	ok, err := f.svc.Book(f.ctx, appt)
	assert.NoError(t, err)
	assert.True(t, ok)

	assert.NoError(t, f.svc.Cancel(f.ctx, appt.ID))

	got, err := f.svc.Get(f.ctx, appt.ID)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, got.Status)

	available, err := f.svc.IsSlotAvailable(f.ctx, f.doctorID, slot)
	assert.NoError(t, err)
	assert.True(t, available)

	rebooked := f.appointmentAt(slot)
	ok, err = f.svc.Book(f.ctx, rebooked)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestCancelMissingAppointmentIsNoOp(t *testing.T) {
	f := newAppointmentFixture(t)
	assert.NoError(t, f.svc.Cancel(f.ctx, 9999))
}

func TestStatusTransitions(t *testing.T) {
	f := newAppointmentFixture(t)
	slot := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)

	appt := f.appointmentAt(slot)
	ok, err := f.svc.Book(f.ctx, appt)
	assert.NoError(t, err)
	assert.True(t, ok)

	// Booked cannot jump straight to Completed.
	assert.ErrorIs(t, f.svc.Complete(f.ctx, appt.ID), ErrInvalidTransition)

	assert.NoError(t, f.svc.Confirm(f.ctx, appt.ID))
	assert.NoError(t, f.svc.Complete(f.ctx, appt.ID))

	// Completed is terminal.
	assert.ErrorIs(t, f.svc.Cancel(f.ctx, appt.ID), ErrInvalidTransition)
	assert.ErrorIs(t, f.svc.Confirm(f.ctx, appt.ID), ErrInvalidTransition)

	assert.ErrorIs(t, f.svc.Confirm(f.ctx, 9999), ErrNotFound)
}

func TestConfirmedAppointmentBlocksSlot(t *testing.T) {
	f := newAppointmentFixture(t)
	slot := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)

	appt := f.appointmentAt(slot)
	ok, err := f.svc.Book(f.ctx, appt)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, f.svc.Confirm(f.ctx, appt.ID))

	available, err := f.svc.IsSlotAvailable(f.ctx, f.doctorID, slot)
	assert.NoError(t, err)
	assert.False(t, available)
}

func TestAvailableSlots(t *testing.T) {
	f := newAppointmentFixture(t)
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	booked := f.appointmentAt(day.Add(10 * time.Hour))
	ok, err := f.svc.Book(f.ctx, booked)
	assert.NoError(t, err)
	assert.True(t, ok)

	slots, err := f.svc.AvailableSlots(f.ctx, f.doctorID, day)
	assert.NoError(t, err)

	// 16 grid slots from 09:00 to 16:30, minus the booked 10:00.
	assert.Len(t, slots, 15)
	assert.Contains(t, slots, day.Add(9*time.Hour+30*time.Minute))
	assert.Contains(t, slots, day.Add(10*time.Hour+30*time.Minute))
	assert.NotContains(t, slots, day.Add(10*time.Hour))
	assert.NotContains(t, slots, day.Add(17*time.Hour))
}

func TestListAppointmentsByDoctorAndDate(t *testing.T) {
	f := newAppointmentFixture(t)
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	for _, hour := range []int{9, 10, 11} {
		appt := f.appointmentAt(day.Add(time.Duration(hour) * time.Hour))
		ok, err := f.svc.Book(f.ctx, appt)
		assert.NoError(t, err)
		assert.True(t, ok)
	}

	got, err := f.svc.List(f.ctx, f.doctorID, day)
	assert.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, day.Add(11*time.Hour).Unix(), got[0].AppointmentDate.Unix())

	all, err := f.svc.List(f.ctx, 0, time.Time{})
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}
