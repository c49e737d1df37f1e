package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/valerpay/custody-ledger/config"
	httpHandler "github.com/valerpay/custody-ledger/internal/adapter/http/handler"
	pgStorage "github.com/valerpay/custody-ledger/internal/adapter/storage/postgres"
	redisStorage "github.com/valerpay/custody-ledger/internal/adapter/storage/redis"
	"github.com/valerpay/custody-ledger/internal/core/ports"
	"github.com/valerpay/custody-ledger/internal/service"
	"github.com/valerpay/custody-ledger/pkg/logger"

	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting custody ledger")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Postgres repositories
	assetRepo := pgStorage.NewAssetRepo(pool)
	accountRepo := pgStorage.NewAccountRepo(pool)
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	requestRepo := pgStorage.NewRequestRepo(pool)
	auditRepo := pgStorage.NewAuditLogRepo(pool)
	userRepo := pgStorage.NewUserRepo(pool)
	adminRepo := pgStorage.NewAdminRepo(pool)
	appConfigRepo := pgStorage.NewAppConfigRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Redis stores
	configCache := redisStorage.NewConfigCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	authSvc := service.NewAuthService(userRepo, adminRepo, hashSvc, tokenSvc, log)
	requestSvc := service.NewRequestService(
		requestRepo,
		assetRepo,
		accountRepo,
		ledgerRepo,
		auditRepo,
		transactor,
		cfg.Ledger.MinAmountMinor,
		log,
	)
	ledgerSvc := service.NewLedgerService(ledgerRepo, requestRepo, assetRepo, log)
	reportingSvc := service.NewReportingService(requestRepo, ledgerRepo, assetRepo, cfg.Ledger.DefaultAssetCode, log)
	auditSvc := service.NewAuditService(auditRepo, log)
	paymentConfigSvc := service.NewPaymentConfigService(appConfigRepo, configCache, auditRepo, transactor, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		RequestSvc:     requestSvc,
		LedgerSvc:      ledgerSvc,
		ReportingSvc:   reportingSvc,
		AuditSvc:       auditSvc,
		ConfigSvc:      paymentConfigSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)},
		AssetCode:      cfg.Ledger.DefaultAssetCode,
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	serve(&http.Server{Addr: addr, Handler: router}, log)
}

// serve runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests within shutdownTimeout.
func serve(srv *http.Server, log zerolog.Logger) {
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}
	log.Info().Msg("Server exited")
}
