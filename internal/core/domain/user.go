package domain

import "time"

// User represents a portal user in the domain.
type User struct {
	UserID       string `json:"userID"` // Primary Key (e.g., UUID)
	Username     string `json:"username"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	PasswordHash string `json:"-"`
	Phone        string `json:"phone,omitempty"`
	Department   string `json:"department,omitempty"`
	Position     string `json:"position,omitempty"`
	IsStaff      bool   `json:"isStaff"`
	IsActive     bool   `json:"isActive"`
	AuditFields
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// Actor returns the identity used to authorise mutations.
func (u User) Actor() Actor {
	return Actor{UserID: u.UserID, IsStaff: u.IsStaff}
}

// GoogleUserInfo is the profile returned by Google sign-in.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
