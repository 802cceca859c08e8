package services

import (
	"context"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser creates a new user with a bcrypt password hash.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// Authenticate checks a username and password and records the login.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// FindOrCreateGoogleUser returns the user with the Google e-mail, creating a
	// non-staff user on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}

// HealthSvc reports storage health for the health endpoint and operators.
type HealthSvc interface {
	Ping(ctx context.Context) error
	TableCounts(ctx context.Context) (map[string]int64, error)
}
