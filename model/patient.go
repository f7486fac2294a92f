package model

import "time"

type Patient struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	FullName      string    `json:"full_name" gorm:"column:full_name;size:100;not null"`
	DateOfBirth   string    `json:"date_of_birth" gorm:"column:date_of_birth;size:10"`
	ContactNumber string    `json:"contact_number" gorm:"column:contact_number;size:20;not null;index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UpdatePatientRequest carries the mutable patient fields for PATCH requests.
// Zero-valued fields are left untouched.
type UpdatePatientRequest struct {
	FullName      string `json:"full_name,omitempty" example:"John Doe"`
	DateOfBirth   string `json:"date_of_birth,omitempty" example:"1990-05-20"`
	ContactNumber string `json:"contact_number,omitempty" example:"081234567890"`
}
