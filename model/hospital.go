package model

import "time"

type Hospital struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"column:name;size:100;not null"`
	Address   string    `json:"address" gorm:"column:address;size:200;not null"`
	Doctors   []Doctor  `json:"doctors,omitempty" gorm:"many2many:doctor_hospitals;"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
