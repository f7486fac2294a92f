package model

import (
	"time"

	"gorm.io/datatypes"
)

// Doctor represents a doctor entity
// @Description Doctor information including hospital affiliations
type Doctor struct {
	ID              uint    `json:"id" gorm:"primaryKey" example:"1"`
	FullName        string  `json:"full_name" gorm:"column:full_name;size:100;not null" example:"Dr. John Smith"`
	Specialization  string  `json:"specialization" gorm:"column:specialization;size:50;not null;index" example:"Cardiology"`
	ConsultationFee float64 `json:"consultation_fee" gorm:"column:consultation_fee;not null;default:0" example:"500"`
	// Availability is an opaque blob describing working days/times. It is
	// stored and returned verbatim, never parsed.
	Availability datatypes.JSON `json:"availability,omitempty" gorm:"column:availability;type:json"`
	Hospitals    []Hospital     `json:"hospitals" gorm:"many2many:doctor_hospitals;"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
