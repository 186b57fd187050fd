package dto

import (
	"time"

	"github.com/findjobsyria/api/internal/app/models"
)

// UserResponse is the public view of a user. It has no password field.
type UserResponse struct {
	ID                string           `json:"id"`
	Email             string           `json:"email"`
	Username          string           `json:"username"`
	FullName          string           `json:"fullName"`
	UserType          models.UserType  `json:"userType"`
	Avatar            *string          `json:"avatar,omitempty"`
	Phone             *string          `json:"phone,omitempty"`
	Province          *models.Province `json:"province,omitempty"`
	Bio               *string          `json:"bio,omitempty"`
	IsVerified        bool             `json:"isVerified"`
	PreferredLanguage string           `json:"preferredLanguage"`
	CreatedAt         time.Time        `json:"createdAt"`
}

// NewUserResponse strips credentials from a user record
func NewUserResponse(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:                u.ID,
		Email:             u.Email,
		Username:          u.Username,
		FullName:          u.FullName,
		UserType:          u.UserType,
		Avatar:            u.Avatar,
		Phone:             u.Phone,
		Province:          u.Province,
		Bio:               u.Bio,
		IsVerified:        u.IsVerified,
		PreferredLanguage: u.PreferredLanguage,
		CreatedAt:         u.CreatedAt,
	}
}

// UpdateUserRequest is the profile patch body
type UpdateUserRequest struct {
	FullName          *string          `json:"fullName" binding:"omitempty,min=1,max=120"`
	Avatar            *string          `json:"avatar" binding:"omitempty,max=2048"`
	Phone             *string          `json:"phone" binding:"omitempty,max=32"`
	Province          *models.Province `json:"province" binding:"omitempty,province"`
	Bio               *string          `json:"bio" binding:"omitempty,max=2000"`
	PreferredLanguage *string          `json:"preferredLanguage" binding:"omitempty,oneof=ar en"`
}

// ToModel converts the request into an update command
func (r *UpdateUserRequest) ToModel() models.UserUpdate {
	return models.UserUpdate{
		FullName:          r.FullName,
		Avatar:            r.Avatar,
		Phone:             r.Phone,
		Province:          r.Province,
		Bio:               r.Bio,
		PreferredLanguage: r.PreferredLanguage,
	}
}
