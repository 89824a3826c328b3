package entities

import (
	"github.com/google/uuid"
)

type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id,omitempty"`
	Success    bool      `json:"success"`
	Message    string    `json:"message,omitempty"`
	IPAddress  string    `json:"ip_address,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
