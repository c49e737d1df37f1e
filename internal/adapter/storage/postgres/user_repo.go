package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/valerpay/custody-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepo implements ports.UserRepository.
type UserRepo struct {
	pool Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create inserts a new user.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query, u.ID, u.Email, u.PasswordHash, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user by UUID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT id, email, password_hash, created_at FROM users WHERE id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

// GetByEmail fetches a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, created_at FROM users WHERE email = $1`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

func scanUser(row pgx.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return u, nil
}

// AdminRepo implements ports.AdminRepository.
type AdminRepo struct {
	pool Pool
}

// NewAdminRepo creates a new AdminRepo.
func NewAdminRepo(pool Pool) *AdminRepo {
	return &AdminRepo{pool: pool}
}

// Create inserts a new admin user.
func (r *AdminRepo) Create(ctx context.Context, a *domain.AdminUser) error {
	query := `INSERT INTO admin_users (id, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query, a.ID, a.Email, a.PasswordHash, a.Role, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}
	return nil
}

// GetByID fetches an admin by UUID.
func (r *AdminRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminUser, error) {
	query := `SELECT id, email, password_hash, role, created_at FROM admin_users WHERE id = $1`
	return scanAdmin(r.pool.QueryRow(ctx, query, id))
}

// GetByEmail fetches an admin by email.
func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	query := `SELECT id, email, password_hash, role, created_at FROM admin_users WHERE email = $1`
	return scanAdmin(r.pool.QueryRow(ctx, query, email))
}

func scanAdmin(row pgx.Row) (*domain.AdminUser, error) {
	a := &domain.AdminUser{}
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan admin user: %w", err)
	}
	return a, nil
}
