package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key" json:"uuid"`
	Email             string    `gorm:"uniqueIndex" json:"email"`
	Login             string    `gorm:"uniqueIndex" json:"login"`
	Password          string    `json:"-"`
	NotificationToken string    `json:"notification_token,omitempty"`

	Timestamp
}
