package models

import "time"

// Session is a server side login session stored in 'user_sessions'
type Session struct {
	ID        string
	UserID    string
	UserAgent *string
	IPAddress *string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session is past its absolute expiry
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
