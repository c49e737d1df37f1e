package service

import (
	"context"
	"fmt"
	"time"

	"github.com/valerpay/custody-ledger/internal/core/domain"
	"github.com/valerpay/custody-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SeedAdmin describes one admin account to provision.
type SeedAdmin struct {
	Email    string
	Password string
	Role     domain.AdminRole
}

// SeedParams is everything a fresh deployment needs bootstrapped: the
// default asset, its system cash account, and the initial admin accounts.
type SeedParams struct {
	AssetCode     string
	AssetKind     domain.AssetKind
	AssetDecimals int32
	Admins        []SeedAdmin
}

// SeedService provisions the baseline rows on a fresh database. Every step
// is idempotent, running the seed twice changes nothing.
type SeedService struct {
	assetRepo   ports.AssetRepository
	accountRepo ports.AccountRepository
	adminRepo   ports.AdminRepository
	transactor  ports.DBTransactor
	hashSvc     ports.HashService
	log         zerolog.Logger
}

func NewSeedService(
	assetRepo ports.AssetRepository,
	accountRepo ports.AccountRepository,
	adminRepo ports.AdminRepository,
	transactor ports.DBTransactor,
	hashSvc ports.HashService,
	log zerolog.Logger,
) *SeedService {
	return &SeedService{
		assetRepo:   assetRepo,
		accountRepo: accountRepo,
		adminRepo:   adminRepo,
		transactor:  transactor,
		hashSvc:     hashSvc,
		log:         log,
	}
}

// Run seeds the asset, its system cash account and the admin accounts,
// skipping anything that already exists.
func (s *SeedService) Run(ctx context.Context, p SeedParams) error {
	asset, err := s.seedAsset(ctx, p)
	if err != nil {
		return err
	}
	if err := s.seedSystemCash(ctx, asset.ID); err != nil {
		return err
	}
	for _, a := range p.Admins {
		if err := s.seedAdmin(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func (s *SeedService) seedAsset(ctx context.Context, p SeedParams) (*domain.Asset, error) {
	asset, err := s.assetRepo.GetByCode(ctx, p.AssetCode)
	if err != nil {
		return nil, fmt.Errorf("looking up asset %s: %w", p.AssetCode, err)
	}
	if asset != nil {
		s.log.Info().Str("code", asset.Code).Msg("Asset already present")
		return asset, nil
	}

	asset = &domain.Asset{
		ID:        uuid.New(),
		Code:      p.AssetCode,
		Kind:      p.AssetKind,
		Decimals:  p.AssetDecimals,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, fmt.Errorf("creating asset %s: %w", p.AssetCode, err)
	}
	s.log.Info().Str("code", asset.Code).Str("id", asset.ID.String()).Msg("Asset created")
	return asset, nil
}

func (s *SeedService) seedSystemCash(ctx context.Context, assetID uuid.UUID) error {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return fmt.Errorf("starting seed transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	account, err := s.accountRepo.GetOrCreateSystemCash(ctx, tx, assetID)
	if err != nil {
		return fmt.Errorf("provisioning system cash account: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}

	s.log.Info().Str("account_id", account.ID.String()).Msg("System cash account ready")
	return nil
}

func (s *SeedService) seedAdmin(ctx context.Context, a SeedAdmin) error {
	existing, err := s.adminRepo.GetByEmail(ctx, a.Email)
	if err != nil {
		return fmt.Errorf("looking up admin %s: %w", a.Email, err)
	}
	if existing != nil {
		s.log.Info().Str("email", a.Email).Msg("Admin already present")
		return nil
	}

	hash, err := s.hashSvc.Hash(a.Password)
	if err != nil {
		return fmt.Errorf("hashing password for %s: %w", a.Email, err)
	}

	admin := &domain.AdminUser{
		ID:           uuid.New(),
		Email:        a.Email,
		PasswordHash: hash,
		Role:         a.Role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("creating admin %s: %w", a.Email, err)
	}
	s.log.Info().Str("email", a.Email).Str("role", string(a.Role)).Msg("Admin created")
	return nil
}
