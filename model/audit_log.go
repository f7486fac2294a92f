package model

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog represents a persisted audit event (endpoint calls, booking
// conflicts, rate limiting). Writes are best-effort and never block the
// request that produced them.
type AuditLog struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	EventType string         `json:"event_type" gorm:"column:event_type;type:varchar(64);index"`
	ActorID   string         `json:"actor_id" gorm:"column:actor_id;type:varchar(64);index"`
	IP        string         `json:"ip" gorm:"column:ip;type:varchar(45)"`
	UserAgent string         `json:"user_agent" gorm:"column:user_agent;type:varchar(512)"`
	Message   string         `json:"message" gorm:"column:message;type:text"`
	Details   datatypes.JSON `json:"details" gorm:"column:details;type:json"`
	CreatedAt time.Time      `json:"created_at"`
}
