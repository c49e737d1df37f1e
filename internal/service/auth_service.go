package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/valerpay/custody-ledger/internal/core/domain"
	"github.com/valerpay/custody-ledger/internal/core/ports"
	"github.com/valerpay/custody-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Role strings embedded in token claims.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	userRepo  ports.UserRepository
	adminRepo ports.AdminRepository
	hashSvc   ports.HashService
	tokenSvc  ports.TokenService
	log       zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	userRepo ports.UserRepository,
	adminRepo ports.AdminRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	log zerolog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		hashSvc:   hashSvc,
		tokenSvc:  tokenSvc,
		log:       log,
	}
}

// RegisterUser creates a new end-user account.
func (s *AuthServiceImpl) RegisterUser(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperror.Validation("invalid email address")
	}
	if len(password) < 8 {
		return nil, apperror.Validation("password must be at least 8 characters")
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check email: %w", err))
	}
	if existing != nil {
		return nil, apperror.Validation("email already registered")
	}

	passwordHash, err := s.hashSvc.Hash(password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create user: %w", err))
	}

	s.log.Info().Str("user_id", user.ID.String()).Msg("user registered")
	return user, nil
}

// LoginUser authenticates an end user and issues a USER token.
func (s *AuthServiceImpl) LoginUser(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials()
	}

	return s.issueToken(user.ID, user.Email, RoleUser, user.PasswordHash, password)
}

// LoginAdmin authenticates an admin and issues a token carrying the admin's
// role (ADMIN or SUPER_ADMIN).
func (s *AuthServiceImpl) LoginAdmin(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get admin: %w", err))
	}
	if admin == nil {
		return nil, apperror.ErrInvalidCredentials()
	}

	return s.issueToken(admin.ID, admin.Email, string(admin.Role), admin.PasswordHash, password)
}

func (s *AuthServiceImpl) issueToken(subjectID uuid.UUID, email, role, passwordHash, password string) (*ports.LoginResult, error) {
	ok, err := s.hashSvc.Verify(password, passwordHash)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !ok {
		return nil, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(subjectID, email, role)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return &ports.LoginResult{Token: token, Expiry: expiry}, nil
}
