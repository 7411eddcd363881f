package app

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/avc/account-marketplace/internal/config"
	"github.com/avc/account-marketplace/internal/domain"
	"github.com/avc/account-marketplace/internal/handlers"
	"github.com/avc/account-marketplace/internal/repository/postgres"
	"github.com/avc/account-marketplace/internal/service"
	"github.com/avc/account-marketplace/internal/utils/jwt"
	"github.com/avc/account-marketplace/internal/utils/password"
	"github.com/avc/account-marketplace/internal/worker"
)

// repositories содержит все репозитории приложения
type repositories struct {
	user     domain.UserRepository
	listing  domain.ListingRepository
	order    domain.OrderRepository
	settings domain.SettingsRepository
	audit    domain.AuditRepository
}

// services содержит все сервисы приложения
type services struct {
	auth       domain.AuthService
	listing    domain.ListingService
	order      domain.OrderService
	pricing    domain.PricingService
	payout     domain.PayoutService
	enrichment domain.EnrichmentClient
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth     *handlers.AuthHandler
	listings *handlers.ListingsHandler
	orders   *handlers.OrdersHandler
	admin    *handlers.AdminHandler
	health   *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) *dependencies {
	// Создание репозиториев
	repos := &repositories{
		user:     postgres.NewUserRepository(dbPool),
		listing:  postgres.NewListingRepository(dbPool),
		order:    postgres.NewOrderRepository(dbPool),
		settings: postgres.NewSettingsRepository(dbPool),
		audit:    postgres.NewAuditRepository(dbPool),
	}

	// Создание утилит
	passwordHasher := password.NewBCryptHasher(password.DefaultCost)
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Создание сервисов
	enrichmentClient := service.NewEnrichmentClient(cfg.EnrichmentAddress)
	pricingService := service.NewPricingService(repos.settings, repos.audit, cfg.SettingsCacheTTL, logger)
	events := service.NewLogEventSink(logger)
	policy := service.NewOrderPolicy()

	authServiceConfig := service.AuthServiceConfig{
		MinPasswordLength: cfg.MinPasswordLength,
	}
	svcs := &services{
		auth:       service.NewAuthService(repos.user, passwordHasher, jwtManager, authServiceConfig),
		listing:    service.NewListingService(repos.listing, pricingService, enrichmentClient, logger),
		order:      service.NewOrderService(repos.order, repos.listing, pricingService, policy, repos.audit, events, logger),
		pricing:    pricingService,
		payout:     service.NewPayoutService(repos.order),
		enrichment: enrichmentClient,
	}

	// Создание handlers
	hdlrs := &handlerSet{
		auth:     handlers.NewAuthHandler(svcs.auth, logger),
		listings: handlers.NewListingsHandler(svcs.listing, svcs.pricing, logger),
		orders:   handlers.NewOrdersHandler(svcs.order, svcs.payout, logger),
		admin:    handlers.NewAdminHandler(svcs.order, svcs.pricing, svcs.payout, logger),
		health:   handlers.NewHealthHandler(dbPool, logger),
	}

	// Создание worker pool синхронизации листингов
	workerPool := worker.NewPool(
		cfg.WorkerPoolSize,
		cfg.WorkerQueueSize,
		repos.listing,
		enrichmentClient,
		cfg.WorkerScanInterval,
		cfg.SyncStaleAfter,
		logger,
	)

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
	}
}
