package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
)

// Config is the AI catalogue and token pricing
type Config struct {
	TokenPrice decimal.Decimal // major units per token
	Currency   entity.Currency
	Services   []entity.AIService
	Packs      []entity.TokenPack
}

// Service gates AI features behind the token wallet
type Service struct {
	payments usecase.PaymentUseCase
	wallet   usecase.WalletUseCase
	logger   coreport.Logger
	cfg      Config
	services map[string]entity.AIService
	packs    map[string]entity.TokenPack
}

// NewService creates an AI Service over a catalogue
func NewService(payments usecase.PaymentUseCase, wallet usecase.WalletUseCase, logger coreport.Logger, cfg Config) *Service {
	if cfg.Currency == "" {
		cfg.Currency = entity.CurrencyXAF
	}

	s := &Service{
		payments: payments,
		wallet:   wallet,
		logger:   logger,
		cfg:      cfg,
		services: make(map[string]entity.AIService, len(cfg.Services)),
		packs:    make(map[string]entity.TokenPack, len(cfg.Packs)),
	}
	for _, svc := range cfg.Services {
		s.services[svc.Code] = svc
	}
	for _, p := range cfg.Packs {
		s.packs[p.Code] = p
	}
	return s
}

// Catalogue lists the metered services and purchasable packs
func (s *Service) Catalogue() ([]entity.AIService, []entity.TokenPack) {
	return s.cfg.Services, s.cfg.Packs
}

// CheckAccess tells whether a user can run a service with their current balance
func (s *Service) CheckAccess(ctx context.Context, userID uint64, service string) (*entity.AccessCheck, error) {
	svc, err := s.service(service)
	if err != nil {
		return nil, err
	}

	balance, err := s.wallet.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	check := entity.NewAccessCheck(svc, balance)
	return &check, nil
}

// CalculatePrice prices a service run, a pack, or a raw number of tokens
func (s *Service) CalculatePrice(_ context.Context, in usecase.PriceInput) (*entity.PriceQuote, error) {
	tokens, discount, err := s.resolve(in.Service, in.Pack, in.Tokens)
	if err != nil {
		return nil, err
	}

	quote, err := entity.QuotePrice(tokens, s.cfg.TokenPrice, discount, s.cfg.Currency)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// CheckBalance returns the token balance of a user
func (s *Service) CheckBalance(ctx context.Context, userID uint64) (int64, error) {
	return s.wallet.GetBalance(ctx, userID)
}

// InitiateServicePayment opens a payment for one run of a service
func (s *Service) InitiateServicePayment(ctx context.Context, in usecase.AIPaymentInput) (*usecase.PaymentResult, error) {
	svc, err := s.service(in.Service)
	if err != nil {
		return nil, err
	}

	quote, err := entity.QuotePrice(svc.Tokens, s.cfg.TokenPrice, 0, s.cfg.Currency)
	if err != nil {
		return nil, err
	}
	return s.pay(ctx, in, entity.PurposeAIService, quote, map[string]any{
		entity.MetaTokens:  svc.Tokens,
		entity.MetaService: svc.Code,
	}, "JobLight AI: "+svc.Name)
}

// InitiateTokenPurchase opens a payment for a pack or a number of tokens
func (s *Service) InitiateTokenPurchase(ctx context.Context, in usecase.AIPaymentInput) (*usecase.PaymentResult, error) {
	tokens, discount, err := s.resolve("", in.Pack, in.Tokens)
	if err != nil {
		return nil, err
	}

	meta := map[string]any{entity.MetaTokens: tokens}
	if in.Pack != "" {
		meta[entity.MetaPack] = in.Pack
	}

	quote, err := entity.QuotePrice(tokens, s.cfg.TokenPrice, discount, s.cfg.Currency)
	if err != nil {
		return nil, err
	}
	return s.pay(ctx, in, entity.PurposeAITokens, quote, meta, fmt.Sprintf("JobLight AI: %d tokens", tokens))
}

// UseService debits the cost of one service run, once per request id
func (s *Service) UseService(ctx context.Context, in usecase.UseServiceInput) (*usecase.UsageResult, error) {
	svc, err := s.service(in.Service)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.RequestID) == "" {
		return nil, errs.NewValidationError("request_id", "is required")
	}

	reference := fmt.Sprintf("ai:%d:%s", in.UserID, in.RequestID)
	mutation, err := s.wallet.Debit(ctx, in.UserID, svc.Tokens, "ai:"+svc.Code, reference)
	if err != nil {
		return nil, err
	}

	s.logger.Info("AI service used", map[string]any{
		"user_id":    in.UserID,
		"service":    svc.Code,
		"tokens":     svc.Tokens,
		"request_id": in.RequestID,
		"duplicate":  mutation.Duplicate,
	})

	return &usecase.UsageResult{
		Service:    svc.Code,
		TokensUsed: svc.Tokens,
		Balance:    mutation.Wallet.Tokens(),
		Duplicate:  mutation.Duplicate,
	}, nil
}

// History returns the newest token movements of a user
func (s *Service) History(ctx context.Context, userID uint64, limit int) ([]*entity.WalletEntry, error) {
	return s.wallet.History(ctx, userID, limit)
}

// pay opens the payment, as a direct mobile prompt when a phone is given
func (s *Service) pay(
	ctx context.Context,
	in usecase.AIPaymentInput,
	purpose entity.Purpose,
	quote entity.PriceQuote,
	meta map[string]any,
	description string,
) (*usecase.PaymentResult, error) {
	if quote.Amount <= 0 {
		return nil, errs.NewValidationError("tokens", "price must be greater than zero")
	}

	input := usecase.InitiatePaymentInput{
		UserID:        in.UserID,
		Amount:        quote.FormattedAmount,
		Currency:      string(quote.Currency),
		Provider:      in.Provider,
		Phone:         in.Phone,
		Country:       in.Country,
		Purpose:       purpose,
		Description:   description,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Metadata:      meta,
	}

	if in.Phone != "" {
		return s.payments.DirectMobilePayment(ctx, input)
	}
	return s.payments.InitiatePayment(ctx, input)
}

// resolve turns a service, a pack or a token count into tokens and a discount
func (s *Service) resolve(service, pack string, tokens int64) (int64, int64, error) {
	switch {
	case service != "":
		svc, err := s.service(service)
		if err != nil {
			return 0, 0, err
		}
		return svc.Tokens, 0, nil
	case pack != "":
		p, ok := s.packs[pack]
		if !ok {
			return 0, 0, errs.NewValidationError("pack", "unknown pack")
		}
		return p.Tokens, p.DiscountPercent, nil
	case tokens > entity.MaxTokensPerPurchase:
		return 0, 0, errs.NewValidationError("tokens", fmt.Sprintf("must not exceed %d", entity.MaxTokensPerPurchase))
	case tokens > 0:
		return tokens, 0, nil
	}
	return 0, 0, errs.NewValidationError("tokens", "a service, a pack or a positive token count is required")
}

func (s *Service) service(code string) (entity.AIService, error) {
	svc, ok := s.services[code]
	if !ok {
		return entity.AIService{}, fmt.Errorf("%w: %q", errs.ErrUnknownService, code)
	}
	return svc, nil
}

var _ usecase.AIUseCase = (*Service)(nil)
