package dto

import (
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a portal user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=150"`
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8"`
	IsStaff  bool   `json:"isStaff"`

	Phone      string `json:"phone" binding:"omitempty,max=20"`
	Department string `json:"department" binding:"omitempty,max=100"`
	Position   string `json:"position" binding:"omitempty,max=100"`
}

// LoginRequest defines the body of a password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest carries a Google ID token obtained by the frontend.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID      string     `json:"userID"`
	Username    string     `json:"username"`
	Name        string     `json:"name"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Department  string     `json:"department,omitempty"`
	Position    string     `json:"position,omitempty"`
	IsStaff     bool       `json:"isStaff"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// ToUserResponse converts a domain.User to its DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:      u.UserID,
		Username:    u.Username,
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		Department:  u.Department,
		Position:    u.Position,
		IsStaff:     u.IsStaff,
		LastLoginAt: u.LastLoginAt,
	}
}
