package models

import "time"

// Notification types raised by the API
const (
	NotificationTypeApplication       = "application"
	NotificationTypeApplicationStatus = "application_status"
	NotificationTypeMessage           = "message"
	NotificationTypeModeration        = "moderation"
)

// Notification is an in-app alert for one user
type Notification struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Type      string    `json:"type" db:"type"`
	Link      *string   `json:"link,omitempty" db:"link"`
	IsRead    bool      `json:"isRead" db:"is_read"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
