// Command seed bootstraps a fresh database: the default asset, its system
// cash account, and the initial admin accounts. Safe to re-run.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/valerpay/custody-ledger/config"
	pgStorage "github.com/valerpay/custody-ledger/internal/adapter/storage/postgres"
	"github.com/valerpay/custody-ledger/internal/core/domain"
	"github.com/valerpay/custody-ledger/internal/service"
	"github.com/valerpay/custody-ledger/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	log.Info().Msg("Seeding custody ledger")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	seedSvc := service.NewSeedService(
		pgStorage.NewAssetRepo(pool),
		pgStorage.NewAccountRepo(pool),
		pgStorage.NewAdminRepo(pool),
		pgStorage.NewTransactor(pool),
		service.NewArgon2HashService(),
		log,
	)

	params := service.SeedParams{
		AssetCode:     cfg.Ledger.DefaultAssetCode,
		AssetKind:     domain.AssetKindFiat,
		AssetDecimals: 2,
	}
	if cfg.Seed.AdminEmail != "" && cfg.Seed.AdminPassword != "" {
		params.Admins = append(params.Admins, service.SeedAdmin{
			Email:    cfg.Seed.AdminEmail,
			Password: cfg.Seed.AdminPassword,
			Role:     domain.RoleAdmin,
		})
	}
	if cfg.Seed.SuperAdminEmail != "" && cfg.Seed.SuperAdminPassword != "" {
		params.Admins = append(params.Admins, service.SeedAdmin{
			Email:    cfg.Seed.SuperAdminEmail,
			Password: cfg.Seed.SuperAdminPassword,
			Role:     domain.RoleSuperAdmin,
		})
	}
	if len(params.Admins) == 0 {
		log.Warn().Msg("No admin credentials configured (VPAY_SEED_ADMIN_EMAIL / VPAY_SEED_ADMIN_PASSWORD), skipping admin creation")
	}

	if err := seedSvc.Run(ctx, params); err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}
	log.Info().Msg("Seeding complete")
}
