package models

// Identity is the authenticated caller attached to a request. It never
// carries credentials.
type Identity struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	Username string   `json:"username"`
	FullName string   `json:"fullName"`
	UserType UserType `json:"userType"`
}

// IsAdmin reports whether the caller may moderate listings
func (i Identity) IsAdmin() bool {
	return i.UserType == UserTypeAdmin
}
