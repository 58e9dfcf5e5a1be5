package payment

import (
	"context"
	"strings"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/guidy-app/joblight/internal/domain/port/gateway"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
)

// InitiatePayment opens a hosted checkout with the requested or recommended provider
func (s *Service) InitiatePayment(ctx context.Context, in usecase.InitiatePaymentInput) (*usecase.PaymentResult, error) {
	p, err := s.choose(ctx, in, "")
	if err != nil {
		return nil, err
	}

	initiator, ok := p.(gateway.Initiator)
	if !ok {
		return nil, unsupported(p.Name(), entity.CapabilityInitiate)
	}

	txn, req, err := s.open(ctx, p, in)
	if err != nil {
		return nil, err
	}

	checkout, err := initiator.Initiate(ctx, req)
	return s.finishOpening(ctx, txn, checkout, err)
}

// DirectMobilePayment pushes a payment prompt to the payer's phone.
// Providers without direct charge are rejected before anything is created.
func (s *Service) DirectMobilePayment(ctx context.Context, in usecase.InitiatePaymentInput) (*usecase.PaymentResult, error) {
	if strings.TrimSpace(in.Phone) == "" {
		return nil, errs.NewValidationError("phone", "is required for direct mobile payments")
	}

	p, err := s.choose(ctx, in, MethodDirectMobile)
	if err != nil {
		return nil, err
	}

	charger, ok := p.(gateway.DirectCharger)
	if !ok {
		return nil, unsupported(p.Name(), entity.CapabilityDirectMobile)
	}

	txn, req, err := s.open(ctx, p, in)
	if err != nil {
		return nil, err
	}

	checkout, err := charger.ChargeMobile(ctx, req)
	return s.finishOpening(ctx, txn, checkout, err)
}

// choose returns the requested provider, or the recommended one when none was requested
func (s *Service) choose(ctx context.Context, in usecase.InitiatePaymentInput, method string) (gateway.Provider, error) {
	if in.Provider != "" {
		return s.provider(entity.ParseProviderName(in.Provider))
	}

	rec, err := s.RecommendProvider(ctx, usecase.RecommendInput{
		Amount:   in.Amount,
		Currency: in.Currency,
		Phone:    in.Phone,
		Country:  in.Country,
		Method:   method,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Provider recommended", map[string]any{
		"provider": string(rec.Provider),
		"reason":   rec.Reason,
	})
	return s.provider(rec.Provider)
}

// open validates the input and stores a pending transaction
func (s *Service) open(ctx context.Context, p gateway.Provider, in usecase.InitiatePaymentInput) (*entity.Transaction, gateway.InitiateRequest, error) {
	currency, err := s.currency(in.Currency)
	if err != nil {
		return nil, gateway.InitiateRequest{}, err
	}
	if !info(p).Supports(currency) {
		return nil, gateway.InitiateRequest{}, errs.NewValidationError("currency", string(p.Name())+" does not accept "+string(currency))
	}

	amount, err := entity.ValidateAndConvertAmount(in.Amount, currency)
	if err != nil {
		return nil, gateway.InitiateRequest{}, err
	}

	purpose := in.Purpose
	if purpose == "" {
		purpose = entity.PurposeGeneric
	}

	reference, err := s.idGenerator.NewReference()
	if err != nil {
		return nil, gateway.InitiateRequest{}, err
	}

	description := in.Description
	if description == "" {
		description = "JobLight payment"
	}

	txn, err := entity.NewTransaction(
		reference,
		in.UserID,
		p.Name(),
		purpose,
		amount,
		currency,
		s.timeProvider,
		entity.WithPhone(in.Phone),
		entity.WithDescription(description),
		entity.WithMetadata(in.Metadata),
		entity.WithExpiry(s.timeProvider.Now().Add(s.cfg.PendingTTL)),
	)
	if err != nil {
		return nil, gateway.InitiateRequest{}, err
	}

	if err := s.uow.GetTransactionRepository(ctx).Create(ctx, txn); err != nil {
		s.logger.Error("Failed to store transaction", map[string]any{
			"reference": reference,
			"user_id":   in.UserID,
			"error":     err.Error(),
		})
		return nil, gateway.InitiateRequest{}, err
	}

	req := gateway.InitiateRequest{
		Reference:     reference,
		UserID:        in.UserID,
		Amount:        amount,
		Currency:      currency,
		Description:   description,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Phone:         in.Phone,
		ReturnURL:     s.returnURL(reference),
		NotifyURL:     s.notifyURL(p.Name()),
	}
	return txn, req, nil
}

// finishOpening stores the provider answer; a provider failure fails the transaction
func (s *Service) finishOpening(ctx context.Context, txn *entity.Transaction, checkout *gateway.Checkout, callErr error) (*usecase.PaymentResult, error) {
	repo := s.uow.GetTransactionRepository(ctx)

	if callErr == nil && checkout == nil {
		callErr = errs.NewProviderError(string(txn.Provider), "initiate", 0, "", "empty response")
	}
	if callErr != nil {
		fields := errs.LogFields(callErr)
		fields["reference"] = txn.Reference
		s.logger.Error("Provider rejected payment initiation", fields)

		if _, err := txn.Transition(entity.StatusFailed, callErr.Error(), s.timeProvider); err == nil {
			if err := repo.Update(ctx, txn); err != nil {
				s.logger.Error("Failed to mark transaction failed", map[string]any{
					"reference": txn.Reference,
					"error":     err.Error(),
				})
			}
		}
		return nil, callErr
	}

	txn.AttachCheckout(checkout.ProviderReference, checkout.PaymentURL, s.timeProvider)
	if checkout.Status.IsTerminal() {
		if _, err := txn.Transition(checkout.Status, "rejected at initiation", s.timeProvider); err != nil {
			return nil, err
		}
	}

	if err := repo.Update(ctx, txn); err != nil {
		return nil, err
	}

	s.logger.Info("Payment initiated", map[string]any{
		"reference": txn.Reference,
		"provider":  string(txn.Provider),
		"user_id":   txn.UserID,
		"amount":    txn.Amount,
		"currency":  string(txn.Currency),
		"purpose":   string(txn.Purpose),
	})

	return toResult(txn), nil
}

func toResult(txn *entity.Transaction) *usecase.PaymentResult {
	return &usecase.PaymentResult{
		Reference:       txn.Reference,
		Provider:        txn.Provider,
		PaymentURL:      txn.PaymentURL,
		Status:          txn.Status,
		Amount:          txn.Amount,
		FormattedAmount: txn.FormattedAmount(),
		Currency:        txn.Currency,
	}
}
