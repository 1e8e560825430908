package models

import "time"

// Notification kinds.
const (
	NotificationMention = "mention"
)

// Notification records a mention side effect: tagging a user in a comment
// creates one row per tagged user on successful submission.
type Notification struct {
	NotificationID string `gorm:"type:char(36);primaryKey"`
	ProfileID      string `gorm:"type:char(36);not null;index"`
	ActorID        string `gorm:"type:char(36);not null"`
	CommentID      string `gorm:"type:char(36);not null"`
	Kind           string `gorm:"size:32;not null"`
	Read           bool   `gorm:"not null;default:false"`
	CreatedAt      time.Time
}

// TableName overrides the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
