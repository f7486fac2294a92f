package model

import "time"

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "Booked"
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// IsValid reports whether s is one of the known appointment statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusBooked, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status may move to next.
//
//	Booked    → Confirmed | Cancelled
//	Confirmed → Completed | Cancelled
//	Completed and Cancelled are terminal.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	allowed := map[AppointmentStatus][]AppointmentStatus{
		StatusBooked:    {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusCompleted, StatusCancelled},
		StatusCompleted: {},
		StatusCancelled: {},
	}
	for _, n := range allowed[s] {
		if n == next {
			return true
		}
	}
	return false
}

// Appointment represents a booked consultation slot
// @Description Appointment linking a patient, doctor and hospital at a timestamp
type Appointment struct {
	ID              uint              `json:"id" gorm:"primaryKey" example:"1"`
	PatientID       uint              `json:"patient_id" gorm:"column:patient_id;not null;index" example:"1"`
	DoctorID        uint              `json:"doctor_id" gorm:"column:doctor_id;not null;index:idx_appointments_doctor_date" example:"1"`
	HospitalID      uint              `json:"hospital_id" gorm:"column:hospital_id;not null;index" example:"1"`
	AppointmentDate time.Time         `json:"appointment_date" gorm:"column:appointment_date;not null;index:idx_appointments_doctor_date"`
	Status          AppointmentStatus `json:"status" gorm:"column:status;type:varchar(20);not null;default:'Booked';index" example:"Booked"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`

	Patient  *Patient  `json:"patient,omitempty" gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Doctor   *Doctor   `json:"doctor,omitempty" gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Hospital *Hospital `json:"hospital,omitempty" gorm:"foreignKey:HospitalID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
