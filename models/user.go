package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

// roleLevels is the single source of truth for the role hierarchy.
var roleLevels = map[UserRole]int{
	RoleUser:      1,
	RoleModerator: 2,
	RoleAdmin:     3,
}

// RoleAtLeast reports whether role ranks at or above required.
func RoleAtLeast(role, required UserRole) bool {
	return roleLevels[role] >= roleLevels[required]
}

type User struct {
	ID            uint           `json:"id" gorm:"primarykey"`
	Name          string         `json:"name" gorm:"not null"`
	Email         string         `json:"email" gorm:"uniqueIndex;not null"`
	Phone         string         `json:"phone"`
	Password      string         `json:"-" gorm:"not null"`
	Role          UserRole       `json:"role" gorm:"default:'user'"`
	VerifiedEmail bool           `json:"verified_email" gorm:"default:false"`
	VerifiedPhone bool           `json:"verified_phone" gorm:"default:false"`
	Active        bool           `json:"active" gorm:"default:true"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}
