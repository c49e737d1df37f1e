package handler

import (
	"github.com/valerpay/custody-ledger/internal/adapter/http/middleware"
	"github.com/valerpay/custody-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	RequestSvc     ports.RequestService
	LedgerSvc      ports.LedgerService
	ReportingSvc   ports.ReportingService
	AuditSvc       ports.AuditService
	ConfigSvc      ports.PaymentConfigService
	TokenSvc       ports.TokenService
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AssetCode      string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check verifies PostgreSQL and Redis
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
		auth.POST("/admin/login", rl("auth_login"), authHandler.AdminLogin)
	}

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	// --- User routes (JWT, USER role) ---
	userHandler := NewUserHandler(deps.RequestSvc, deps.LedgerSvc, deps.ConfigSvc, deps.AssetCode)
	user := v1.Group("/user", jwtAuth, middleware.RequireRole(middleware.RoleUser))
	{
		user.POST("/requests/deposit", rl("requests"), userHandler.CreateDeposit)
		user.POST("/requests/withdraw", rl("requests"), userHandler.CreateWithdraw)
		user.GET("/requests", rl("read"), userHandler.ListRequests)
		user.GET("/balance", rl("read"), userHandler.GetBalance)
		user.GET("/config/payments", rl("read"), userHandler.GetPaymentConfig)
	}

	// --- Admin routes (JWT, ADMIN or SUPER_ADMIN role) ---
	adminHandler := NewAdminHandler(deps.RequestSvc, deps.LedgerSvc, deps.ReportingSvc, deps.AuditSvc, deps.ConfigSvc, deps.AssetCode)
	admin := v1.Group("/admin", jwtAuth, middleware.RequireRole(middleware.RoleAdmin, middleware.RoleSuperAdmin))
	{
		admin.GET("/requests/open", rl("admin"), adminHandler.ListOpen)
		admin.GET("/requests/assigned", rl("admin"), adminHandler.ListAssigned)
		admin.GET("/requests/:id", rl("admin"), adminHandler.GetRequest)
		admin.POST("/requests/:id/claim", rl("admin"), adminHandler.Claim)
		admin.POST("/requests/:id/approve", rl("admin"), adminHandler.Approve)
		admin.POST("/requests/:id/reject", rl("admin"), adminHandler.Reject)
		admin.POST("/requests/:id/send", rl("admin"), adminHandler.MarkSent)
		admin.POST("/requests/:id/request-confirmation", rl("admin"), adminHandler.RequestConfirmation)
		admin.POST("/requests/:id/complete", rl("admin"), adminHandler.Complete)

		admin.POST("/users/:id/withdrawals", rl("admin"), adminHandler.CreateWithdrawForUser)

		admin.GET("/ledger/entries", rl("admin"), adminHandler.ListLedgerEntries)
		admin.GET("/ledger/cash", rl("admin"), adminHandler.GetSystemCash)
		admin.GET("/reports/daily", rl("admin"), adminHandler.DailyReport)
		admin.GET("/logs", rl("admin"), adminHandler.ListAuditLogs)

		admin.GET("/config/payments", rl("admin"), adminHandler.GetPaymentConfig)
		admin.PUT("/config/payments", rl("admin"), adminHandler.UpdatePaymentConfig)
	}

	return r
}
