package models

import "time"

// User represents a portal user.
type User struct {
	UserID       string     `db:"user_id"`
	Username     string     `db:"username"`
	Name         string     `db:"name"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	Phone        string     `db:"phone"`
	Department   string     `db:"department"`
	Position     string     `db:"position"`
	IsStaff      bool       `db:"is_staff"`
	IsActive     bool       `db:"is_active"`
	LastLoginAt  *time.Time `db:"last_login_at"`
	AuditFields
}
