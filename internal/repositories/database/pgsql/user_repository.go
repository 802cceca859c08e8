package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	"github.com/SscSPs/counterparty_portal/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `user_id, username, name, email, password_hash, phone, department, position, is_staff, is_active, last_login_at,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.Name,
		m.Email,
		m.PasswordHash,
		m.Phone,
		m.Department,
		m.Position,
		m.IsStaff,
		m.IsActive,
		m.LastLoginAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return translateError(err, "user "+m.Username)
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	return findOne(ctx, r.Pool, "user "+userID, mapping.ToDomainUser, query, userID)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1;`
	return findOne(ctx, r.Pool, "user "+username, mapping.ToDomainUser, query, username)
}

// FindUserByEmail returns the oldest account registered with the address.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 ORDER BY created_at LIMIT 1;`
	return findOne(ctx, r.Pool, "user with e-mail "+email, mapping.ToDomainUser, query, email)
}

func (r *PgxUserRepository) RecordLogin(ctx context.Context, userID string, at time.Time) error {
	return r.execOne(ctx, "user "+userID, `UPDATE users SET last_login_at = $2 WHERE user_id = $1;`, userID, at)
}
