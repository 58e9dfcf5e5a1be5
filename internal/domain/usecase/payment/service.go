package payment

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/domain/port/gateway"
	"github.com/guidy-app/joblight/internal/domain/port/persistence"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
)

// providerOrder is the stable order providers are listed and tried in
var providerOrder = []entity.ProviderName{
	entity.ProviderCinetPay,
	entity.ProviderFapshi,
	entity.ProviderPluto,
	entity.ProviderNotchPay,
}

// Config holds the payment settings the service needs
type Config struct {
	// ReturnURL is where providers send the payer back; the reference is appended
	ReturnURL string
	// NotifyURL receives provider callbacks; the provider name is appended
	NotifyURL string
	// FrontendReturnURL is the page the return endpoint redirects to
	FrontendReturnURL string
	DefaultCurrency   entity.Currency
	// PendingTTL is how long a payment may stay pending before it expires
	PendingTTL time.Duration
	// TokenPrice is the price of one AI token in major units, used to convert top-ups
	TokenPrice decimal.Decimal
	// Packs are the discounted token bundles AI purchases may reference
	Packs []entity.TokenPack
}

// Service is the unified payment service over every enabled provider
type Service struct {
	providers    map[entity.ProviderName]gateway.Provider
	uow          persistence.UnitOfWork
	wallet       usecase.WalletUseCase
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config
}

// NewService creates a payment Service over the given enabled providers
func NewService(
	providers []gateway.Provider,
	uow persistence.UnitOfWork,
	wallet usecase.WalletUseCase,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Service {
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = entity.CurrencyXAF
	}
	if cfg.PendingTTL <= 0 {
		cfg.PendingTTL = 30 * time.Minute
	}

	registry := make(map[entity.ProviderName]gateway.Provider, len(providers))
	for _, p := range providers {
		registry[p.Name()] = p
	}

	return &Service{
		providers:    registry,
		uow:          uow,
		wallet:       wallet,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// GetProviders lists enabled providers with what they can do
func (s *Service) GetProviders(_ context.Context) []entity.ProviderInfo {
	infos := make([]entity.ProviderInfo, 0, len(s.providers))
	for _, name := range providerOrder {
		p, ok := s.providers[name]
		if !ok {
			continue
		}
		infos = append(infos, info(p))
	}
	return infos
}

// GetBalance reads the merchant balance at a provider
func (s *Service) GetBalance(ctx context.Context, provider string) (*gateway.Balance, error) {
	p, err := s.provider(entity.ParseProviderName(provider))
	if err != nil {
		return nil, err
	}

	reader, ok := p.(gateway.BalanceReader)
	if !ok {
		return nil, unsupported(p.Name(), entity.CapabilityBalance)
	}
	return reader.Balance(ctx)
}

// provider returns an enabled provider by name
func (s *Service) provider(name entity.ProviderName) (gateway.Provider, error) {
	p, ok := s.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrProviderNotFound, name)
	}
	return p, nil
}

// currency resolves a requested currency, falling back to the default one
func (s *Service) currency(code string) (entity.Currency, error) {
	if code == "" {
		return s.cfg.DefaultCurrency, nil
	}
	return entity.ParseCurrency(code)
}

func (s *Service) returnURL(reference string) string {
	return withQuery(s.cfg.ReturnURL, url.Values{"reference": {reference}})
}

func (s *Service) notifyURL(provider entity.ProviderName) string {
	return withQuery(s.cfg.NotifyURL, url.Values{"provider": {string(provider)}})
}

func info(p gateway.Provider) entity.ProviderInfo {
	return entity.ProviderInfo{
		Name:         p.Name(),
		DisplayName:  p.DisplayName(),
		Currencies:   p.Currencies(),
		Capabilities: gateway.Capabilities(p),
	}
}

func unsupported(name entity.ProviderName, capability entity.Capability) error {
	return fmt.Errorf("%w: %s does not support %s", errs.ErrCapabilityNotSupported, name, capability)
}

// withQuery appends query parameters to a base URL that may already carry some
func withQuery(base string, values url.Values) string {
	if base == "" {
		return ""
	}
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	for k, v := range values {
		q[k] = v
	}
	u.RawQuery = q.Encode()
	return u.String()
}
