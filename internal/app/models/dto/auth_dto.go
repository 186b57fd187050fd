package dto

import "github.com/findjobsyria/api/internal/app/models"

// RegisterRequest is the sign-up body. Extra fields such as confirmPassword are ignored.
type RegisterRequest struct {
	Email             string           `json:"email" binding:"required,email,max=254" example:"rana@example.sy"`
	Password          string           `json:"password" binding:"required,min=6,max=72" example:"secret123"`
	Username          string           `json:"username" binding:"required,min=3,max=50" example:"rana"`
	FullName          string           `json:"fullName" binding:"required,max=120" example:"Rana Haddad"`
	UserType          models.UserType  `json:"userType" binding:"omitempty,oneof=individual employer" example:"individual"`
	Phone             *string          `json:"phone" binding:"omitempty,max=32"`
	Province          *models.Province `json:"province" binding:"omitempty,province" example:"damascus"`
	PreferredLanguage string           `json:"preferredLanguage" binding:"omitempty,oneof=ar en" example:"ar"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the authenticated user after register or login
type AuthResponse struct {
	User *UserResponse `json:"user"`
}

// MeResponse returns the session identity, or null when anonymous
type MeResponse struct {
	User *models.Identity `json:"user"`
}
