package models

import (
	"strings"
	"time"
)

// Roles recognized by the permission gating. Admins may delete any comment;
// users may only touch their own.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Profile mirrors the auth service's user record for display purposes:
// mention candidates, comment authorship, notifications.
type Profile struct {
	ProfileID string `gorm:"type:char(36);primaryKey"`
	Email     string `gorm:"size:255;uniqueIndex"`
	FirstName string `gorm:"size:120"`
	LastName  string `gorm:"size:120"`
	Role      string `gorm:"size:32;not null;default:user"`
	AvatarURL string `gorm:"size:1024"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}

// FullName joins first and last name, tolerating either being blank.
func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// CanDeleteAnyComment reports the privileged delete role.
func (p Profile) CanDeleteAnyComment() bool {
	return p.Role == RoleAdmin
}
