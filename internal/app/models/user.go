package models

import "time"

// User defines the user model based on the 'users' table
type User struct {
	ID                string    `json:"id" db:"id"`
	Email             string    `json:"email" db:"email"`
	PasswordHash      *string   `json:"-" db:"password"`
	Username          string    `json:"username" db:"username"`
	FullName          string    `json:"fullName" db:"full_name"`
	UserType          UserType  `json:"userType" db:"user_type"`
	Avatar            *string   `json:"avatar,omitempty" db:"avatar"`
	Phone             *string   `json:"phone,omitempty" db:"phone"`
	Province          *Province `json:"province,omitempty" db:"province"`
	Bio               *string   `json:"bio,omitempty" db:"bio"`
	IsVerified        bool      `json:"isVerified" db:"is_verified"`
	GoogleID          *string   `json:"googleId,omitempty" db:"google_id"`
	PreferredLanguage string    `json:"preferredLanguage" db:"preferred_language"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
}

// HasPassword is false for accounts created through an external identity provider
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// Identity builds the per-request identity for this user
func (u *User) Identity() Identity {
	return Identity{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		FullName: u.FullName,
		UserType: u.UserType,
	}
}

// UserUpdate lists the profile fields a user may change. Nil leaves the column untouched.
type UserUpdate struct {
	FullName          *string
	Avatar            *string
	Phone             *string
	Province          *Province
	Bio               *string
	PreferredLanguage *string
}

// IsEmpty reports whether the update changes nothing
func (u UserUpdate) IsEmpty() bool {
	return u.FullName == nil && u.Avatar == nil && u.Phone == nil &&
		u.Province == nil && u.Bio == nil && u.PreferredLanguage == nil
}
