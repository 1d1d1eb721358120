package app

import (
	"context"
	"errors"
	"fmt"

	"property_manager/internal/adapter/http/handlers"
	"property_manager/internal/adapter/http/middleware"
	"property_manager/internal/adapter/http/routes"
	"property_manager/internal/adapter/persistence/repository"
	"property_manager/internal/config"
	"property_manager/internal/infrastructure/coordination"
	"property_manager/internal/infrastructure/database"
	"property_manager/internal/infrastructure/export"
	"property_manager/internal/infrastructure/logging"
	"property_manager/internal/infrastructure/payments"
	"property_manager/internal/usecase"
	"property_manager/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrUnknownProvider = errors.New("unknown payment provider")

// App holds the wired dependencies of one process.
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client

	Ledger     *usecase.PaymentLedgerUseCase
	Gateway    *usecase.PaymentGatewayUseCase
	Reports    *usecase.PaymentReportUseCase
	Leases     *usecase.LeaseUseCase
	Properties *usecase.PropertyUseCase
	Tenants    *usecase.TenantUseCase
	Scheduler  *usecase.ReconcileScheduler

	closers []func() error
}

// New opens storage and builds every use case. The database schema is
// migrated on startup.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.Logger()
	a := &App{Config: cfg}

	db, err := database.OpenGorm(cfg.Database)
	if err != nil {
		return nil, err
	}
	a.DB = db
	if sqlDB, err := db.DB(); err == nil {
		a.closers = append(a.closers, sqlDB.Close)
	}
	if err := repository.Migrate(db); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	rdb, err := database.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	if rdb != nil {
		a.Redis = rdb
		a.closers = append(a.closers, rdb.Close)
	}

	journal, err := newJournal(ctx, cfg, db)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	paymentRepo := repository.NewPaymentGormRepository(db)
	leaseRepo := repository.NewLeaseGormRepository(db)
	propertyRepo := repository.NewPropertyGormRepository(db)
	tenantRepo := repository.NewTenantGormRepository(db)

	var notifier interfaces.ISettlementNotifier = coordination.LogSettlementNotifier{}
	var lock interfaces.ISweepLock = coordination.NewLocalSweepLock()
	if a.Redis != nil {
		notifier = coordination.NewRedisSettlementNotifier(a.Redis, coordination.DefaultSettlementChannel)
		lock = coordination.NewRedisSweepLock(a.Redis, coordination.DefaultSweepLockKey)
	}

	gateway, err := NewPaymentGateway(cfg)
	if err != nil {
		log.WithError(err).Warn("[app] payment gateway not configured; checkout and callbacks are disabled")
	}

	a.Ledger = usecase.NewPaymentLedgerUseCase(paymentRepo, leaseRepo, notifier)
	a.Gateway = usecase.NewPaymentGatewayUseCase(a.Ledger, paymentRepo, leaseRepo, gateway, journal, lock, cfg.Payments.Currency, usecase.ReconcileOptions{
		Timeout:     cfg.Payments.ReconcileTimeout,
		Concurrency: cfg.Payments.ReconcileConcurrency,
		BatchSize:   cfg.Payments.ReconcileBatchSize,
	})
	a.Reports = usecase.NewPaymentReportUseCase(paymentRepo, leaseRepo, export.NewXLSXExporter())
	a.Leases = usecase.NewLeaseUseCase(leaseRepo, propertyRepo, tenantRepo, a.Ledger, repository.NewGormTransactor(db))
	a.Properties = usecase.NewPropertyUseCase(propertyRepo)
	a.Tenants = usecase.NewTenantUseCase(tenantRepo)
	a.Scheduler = usecase.NewReconcileScheduler(a.Gateway, cfg.Payments.ReconcileInterval)

	providerName := "none"
	if gateway != nil {
		providerName = gateway.Name()
	}
	log.WithFields(logrus.Fields{
		"database": cfg.Database.Driver,
		"provider": providerName,
		"redis":    a.Redis != nil,
		"dynamodb": cfg.DynamoDB.Enabled,
	}).Info("[app] dependencies wired")
	return a, nil
}

// Router builds the HTTP engine. JWT settings are only required here so
// that CLI commands can run without them.
func (a *App) Router() (*gin.Engine, error) {
	auth, err := middleware.NewAuthenticator(a.Config.JWT.Secret, a.Config.JWT.Issuer)
	if err != nil {
		return nil, err
	}
	return routes.NewRouter(routes.Handlers{
		Payments:   handlers.NewPaymentHandler(a.Ledger, a.Gateway, a.Reports),
		Webhooks:   handlers.NewWebhookHandler(a.Gateway),
		Leases:     handlers.NewLeaseHandler(a.Leases),
		Properties: handlers.NewPropertyHandler(a.Properties),
		Tenants:    handlers.NewTenantHandler(a.Tenants),
	}, auth), nil
}

// Close releases connections in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// NewPaymentGateway picks the processor adapter. The mock switch wins over
// payments.provider.
func NewPaymentGateway(cfg *config.Config) (interfaces.IPaymentGateway, error) {
	p := cfg.Payments
	if p.MockEnabled() {
		return payments.NewMockGateway(p.MockWebhookSecret, p.FrontendURL), nil
	}

	switch p.Provider {
	case config.ProviderStripe:
		g, err := payments.NewStripeGateway(payments.StripeGatewayConfig{
			SecretKey:     cfg.Stripe.SecretKey,
			WebhookSecret: cfg.Stripe.WebhookSecret,
			FrontendURL:   p.FrontendURL,
			BackendURL:    cfg.Stripe.BackendURL,
		})
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.ProviderMercadoPago:
		g, err := payments.NewMercadoPagoGateway(payments.MercadoPagoGatewayConfig{
			AccessToken:     cfg.MercadoPago.AccessToken,
			WebhookSecret:   cfg.MercadoPago.WebhookSecret,
			NotificationURL: cfg.MercadoPago.NotificationURL,
			FrontendURL:     p.FrontendURL,
		})
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, p.Provider)
	}
}

func newJournal(ctx context.Context, cfg *config.Config, db *gorm.DB) (interfaces.IGatewayEventJournal, error) {
	if !cfg.DynamoDB.Enabled {
		return repository.NewGatewayEventGormJournal(db), nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, fmt.Errorf("connect dynamodb: %w", err)
	}
	journal := repository.NewGatewayEventDynamoJournal(ddb, cfg.DynamoDB.EventsTable)
	if err := journal.EnsureTable(ctx); err != nil {
		return nil, fmt.Errorf("ensure events table: %w", err)
	}
	return journal, nil
}
