// Package bootstrap wires configuration, storage, providers and use cases into one container
// shared by the API server and the operator CLI.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/guidy-app/joblight/internal/domain/entity"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/domain/port/gateway"
	"github.com/guidy-app/joblight/internal/domain/usecase/ai"
	"github.com/guidy-app/joblight/internal/domain/usecase/payment"
	"github.com/guidy-app/joblight/internal/domain/usecase/portfolio"
	"github.com/guidy-app/joblight/internal/domain/usecase/wallet"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/cache"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/cvtemplate"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/database"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/gateway/cinetpay"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/gateway/fapshi"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/gateway/notchpay"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/gateway/pluto"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/idgen"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/qrcode"
	timeProvider "github.com/guidy-app/joblight/internal/infrastructure/adapter/time"
	"github.com/guidy-app/joblight/internal/infrastructure/config"
)

// Container holds every long-lived dependency of the application
type Container struct {
	Config    *config.Config
	Logger    coreport.Logger
	DB        *database.Manager
	Payments  *payment.Service
	Fapshi    *payment.FapshiService
	Wallet    *wallet.Service
	AI        *ai.Service
	Portfolio *portfolio.Service
	Stats     *portfolio.StatsService
	Sections  *portfolio.SectionService
	CV        *portfolio.CVService

	executor     *wallet.Executor
	closeTracker func() error
}

// New connects to the database and builds every use case
func New(ctx context.Context, cfg *config.Config, logger coreport.Logger) (*Container, error) {
	tp := timeProvider.NewRealTimeProvider()
	ids := idgen.New()

	tokenPrice, err := decimal.NewFromString(cfg.AI.TokenPrice)
	if err != nil {
		return nil, fmt.Errorf("ai.tokenPrice %q: %w", cfg.AI.TokenPrice, err)
	}

	dbManager := database.NewManager(database.NewConfig(cfg), logger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	tracker, closeTracker, err := cache.NewViewTracker(ctx, cfg.Redis, logger)
	if err != nil {
		_ = dbManager.Close()
		return nil, fmt.Errorf("view tracker: %w", err)
	}

	renderer, err := cvtemplate.New()
	if err != nil {
		_ = closeTracker()
		_ = dbManager.Close()
		return nil, fmt.Errorf("cv templates: %w", err)
	}

	uow := dbManager.CreateUnitOfWork()
	users := dbManager.UserRepository()
	cvs := dbManager.CVRepository()
	portfolios := dbManager.PortfolioRepository()

	executor := wallet.NewExecutor(logger, cfg.Payment.WalletQueues, cfg.Payment.WalletQueueSize)
	walletSvc := wallet.NewService(uow, executor, ids, tp, logger)

	paymentSvc := payment.NewService(Providers(cfg.Providers, logger), uow, walletSvc, ids, tp, logger, payment.Config{
		ReturnURL:         cfg.Payment.ReturnURL,
		NotifyURL:         cfg.Payment.NotifyURL,
		FrontendReturnURL: cfg.Payment.FrontendReturnURL,
		DefaultCurrency:   entity.Currency(cfg.Payment.DefaultCurrency),
		PendingTTL:        cfg.Payment.PendingTTL,
		TokenPrice:        tokenPrice,
		Packs:             tokenPacks(cfg.AI.Packs),
	})

	return &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       dbManager,
		Payments: paymentSvc,
		Fapshi:   payment.NewFapshiService(paymentSvc),
		Wallet:   walletSvc,
		AI: ai.NewService(paymentSvc, walletSvc, logger, ai.Config{
			TokenPrice: tokenPrice,
			Currency:   entity.Currency(cfg.AI.Currency),
			Services:   aiServices(cfg.AI.Services),
			Packs:      tokenPacks(cfg.AI.Packs),
		}),
		Portfolio: portfolio.NewService(users, cvs, portfolios, uow, qrcode.New(), tp, logger, portfolio.Config{
			PublicBaseURL: cfg.Portfolio.PublicBaseURL,
			QRDefaultSize: cfg.Portfolio.QRSize,
			SiteName:      cfg.Portfolio.SiteName,
		}),
		Stats:        portfolio.NewStatsService(uow, users, portfolios, tracker, ids, tp, logger),
		Sections:     portfolio.NewSectionService(uow, tp, logger),
		CV:           portfolio.NewCVService(users, cvs, renderer, logger),
		executor:     executor,
		closeTracker: closeTracker,
	}, nil
}

// Close drains the wallet queues, then releases the tracker and the database
func (c *Container) Close() error {
	c.executor.Shutdown()
	return errors.Join(c.closeTracker(), c.DB.Close())
}

// Providers builds the enabled payment providers
func Providers(cfg config.ProvidersConfig, logger coreport.Logger) []gateway.Provider {
	var providers []gateway.Provider
	if cfg.CinetPay.Enabled {
		providers = append(providers, cinetpay.New(cfg.CinetPay, logger))
	}
	if cfg.Fapshi.Enabled {
		providers = append(providers, fapshi.New(cfg.Fapshi, logger))
	}
	if cfg.Pluto.Enabled {
		providers = append(providers, pluto.New(cfg.Pluto, logger))
	}
	if cfg.NotchPay.Enabled {
		providers = append(providers, notchpay.New(cfg.NotchPay, logger))
	}
	return providers
}

func aiServices(in []config.AIServiceConfig) []entity.AIService {
	out := make([]entity.AIService, 0, len(in))
	for _, s := range in {
		out = append(out, entity.AIService{Code: s.Code, Name: s.Name, Tokens: s.Tokens})
	}
	return out
}

func tokenPacks(in []config.TokenPackConfig) []entity.TokenPack {
	out := make([]entity.TokenPack, 0, len(in))
	for _, p := range in {
		out = append(out, entity.TokenPack{Code: p.Code, Tokens: p.Tokens, DiscountPercent: p.DiscountPercent})
	}
	return out
}
