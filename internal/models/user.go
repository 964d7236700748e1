// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleConsumer Role = "consumer"
	RoleCreator  Role = "creator"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleConsumer || r == RoleCreator
}

// User represents an account in the Lightbox application.
// The password hash is never serialized to clients.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:30;uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      Role      `gorm:"type:varchar(16);not null;default:consumer" json:"role"`
	AvatarURL string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
