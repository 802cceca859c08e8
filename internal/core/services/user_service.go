package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/SscSPs/counterparty_portal/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade, opts ...Option) portssvc.UserSvcFacade {
	return &userService{
		BaseService: newBaseService(opts),
		userRepo:    userRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if existing, err := s.userRepo.FindUserByUsername(ctx, username); err == nil && existing != nil {
		return nil, fmt.Errorf("user %s: %w", username, apperrors.ErrDuplicate)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check username", slog.String("username", username))
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Username:     username,
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Phone:        strings.TrimSpace(req.Phone),
		Department:   strings.TrimSpace(req.Department),
		Position:     strings.TrimSpace(req.Position),
		IsStaff:      req.IsStaff,
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("username", username))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.Metrics.IncrementRecordsCreated("user")
	s.LogInfo(ctx, "User created", slog.String("user_id", userID), slog.Bool("staff", user.IsStaff))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get user", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to load user for login", slog.String("username", username))
		return nil, err
	}
	if !user.IsActive || user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Login rejected", slog.String("username", username))
		return nil, apperrors.ErrUnauthorized
	}

	if err := s.recordLogin(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(info.Email))
	if email == "" || !info.VerifiedEmail {
		return nil, fmt.Errorf("google account without a verified e-mail: %w", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		if !user.IsActive {
			return nil, apperrors.ErrUnauthorized
		}
	case errors.Is(err, apperrors.ErrNotFound):
		userID := uuid.NewString()
		name := strings.TrimSpace(info.Name)
		if name == "" {
			name = email
		}
		created := domain.User{
			UserID:      userID,
			Username:    email,
			Name:        name,
			Email:       email,
			IsActive:    true,
			AuditFields: domain.NewAuditFields(userID, s.Now()),
		}
		if err := s.userRepo.SaveUser(ctx, created); err != nil {
			s.LogError(ctx, err, "Failed to create Google user", slog.String("email", email))
			return nil, err
		}
		s.Metrics.IncrementRecordsCreated("user")
		s.LogInfo(ctx, "User created from Google sign-in", slog.String("user_id", userID))
		user = &created
	default:
		s.LogError(ctx, err, "Failed to look up Google user", slog.String("email", email))
		return nil, err
	}

	if err := s.recordLogin(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) recordLogin(ctx context.Context, user *domain.User) error {
	now := s.Now()
	if err := s.userRepo.RecordLogin(ctx, user.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to record login", slog.String("user_id", user.UserID))
		return err
	}
	user.LastLoginAt = &now
	return nil
}

type healthService struct {
	healthRepo portsrepo.HealthRepository
}

// NewHealthService exposes storage health to the API and the CLI.
func NewHealthService(healthRepo portsrepo.HealthRepository) portssvc.HealthSvc {
	return &healthService{healthRepo: healthRepo}
}

func (s *healthService) Ping(ctx context.Context) error {
	return s.healthRepo.Ping(ctx)
}

func (s *healthService) TableCounts(ctx context.Context) (map[string]int64, error) {
	return s.healthRepo.TableCounts(ctx)
}
