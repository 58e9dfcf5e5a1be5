package payment

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/guidy-app/joblight/internal/domain/port/gateway"
	"github.com/guidy-app/joblight/internal/domain/port/persistence"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
)

// reasonAmountMismatch fails a payment whose notified amount differs from the stored one
const reasonAmountMismatch = "amount mismatch"

// errDuplicateEvent stops settlement of an already recorded webhook event
var errDuplicateEvent = errors.New("duplicate webhook event")

// HandleNotification authenticates a provider callback and settles the matching transaction.
// The provider comes from the name given, or is detected from the payload.
func (s *Service) HandleNotification(ctx context.Context, provider string, cb gateway.Callback) (*usecase.NotificationResult, error) {
	name := entity.ParseProviderName(provider)
	if name == "" {
		name = DetectProvider(cb)
	}

	p, err := s.provider(name)
	if err != nil {
		return nil, err
	}

	verifier, ok := p.(gateway.NotificationVerifier)
	if !ok {
		return nil, unsupported(p.Name(), entity.CapabilityNotification)
	}

	n, err := verifier.ParseNotification(ctx, cb)
	if err != nil {
		fields := errs.LogFields(err)
		fields["provider"] = string(name)
		s.logger.Warn("Rejected provider notification", fields)
		return nil, err
	}
	if n.ReceivedAt.IsZero() {
		n.ReceivedAt = s.timeProvider.Now()
	}

	result := &usecase.NotificationResult{
		Provider:  name,
		Reference: n.Reference,
		Status:    n.Status,
	}

	event := &entity.WebhookEvent{
		Provider:   name,
		EventKey:   n.EventKey,
		Reference:  firstNonEmpty(n.Reference, n.ProviderReference),
		Status:     n.Status,
		Payload:    n.Raw,
		ReceivedAt: n.ReceivedAt,
	}

	txn, err := s.settle(ctx, n, event)
	switch {
	case errors.Is(err, errDuplicateEvent):
		s.logger.Info("Ignoring duplicate provider notification", map[string]any{
			"provider":  string(name),
			"event_key": n.EventKey,
		})
		result.Known = true
		result.Duplicate = true
		return result, nil
	case errors.Is(err, errs.ErrTransactionNotFound):
		s.logger.Warn("Notification for unknown transaction", map[string]any{
			"provider":           string(name),
			"reference":          n.Reference,
			"provider_reference": n.ProviderReference,
		})
		return result, nil
	case err != nil:
		return nil, err
	}

	result.Known = true
	result.Reference = txn.Reference
	result.Status = txn.Status
	return result, nil
}

// settle applies a provider status to the matching transaction under a row lock.
// When event is set it is recorded in the same unit of work, and a second delivery
// of the same event returns errDuplicateEvent. Invalid transitions are logged and ignored.
func (s *Service) settle(ctx context.Context, n *entity.Notification, event *entity.WebhookEvent) (txn *entity.Transaction, err error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Error("Failed to rollback settlement", map[string]any{"error": rbErr.Error()})
			}
		}
	}()

	if event != nil {
		inserted, recErr := s.uow.GetWebhookEventRepository(txCtx).Record(txCtx, event)
		if recErr != nil {
			return nil, recErr
		}
		if !inserted {
			return nil, errDuplicateEvent
		}
	}

	repo := s.uow.GetTransactionRepository(txCtx)
	txn, err = s.lockTransaction(txCtx, repo, n)
	if err != nil {
		return nil, err
	}

	dirty := false
	if n.ProviderReference != "" && txn.ProviderReference == "" {
		txn.AttachCheckout(n.ProviderReference, "", s.timeProvider)
		dirty = true
	}

	target, reason := n.Status, n.Reason
	if target == entity.StatusSuccess && n.Amount <= 0 {
		// an unconfirmed amount keeps the payment pending until reconciled
		s.logger.Warn("Success reported without an amount", map[string]any{
			"reference": txn.Reference,
			"provider":  string(n.Provider),
		})
		target = entity.StatusPending
	}
	if target == entity.StatusSuccess && mismatched(txn, n) {
		s.logger.Warn("Paid amount differs from transaction amount", map[string]any{
			"reference":    txn.Reference,
			"expected":     txn.Amount,
			"expected_cur": string(txn.Currency),
			"notified":     n.Amount,
			"notified_cur": string(n.Currency),
		})
		target, reason = entity.StatusFailed, reasonAmountMismatch
	}

	if target != "" && target != entity.StatusPending {
		changed, trErr := txn.Transition(target, reason, s.timeProvider)
		if trErr != nil {
			fields := errs.LogFields(trErr)
			fields["provider"] = string(n.Provider)
			s.logger.Warn("Ignoring invalid status transition", fields)
		}
		dirty = dirty || changed
		if changed {
			s.logger.Info("Transaction status changed", map[string]any{
				"reference": txn.Reference,
				"status":    string(txn.Status),
				"reason":    txn.FailureReason,
			})
		}
	}

	if dirty {
		if err = repo.Update(txCtx, txn); err != nil {
			return nil, err
		}
	}
	if err = s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	if txn.NeedsSettlement() {
		return s.fulfil(ctx, txn), nil
	}
	return txn, nil
}

// lockTransaction finds the transaction a notification is about and locks it
func (s *Service) lockTransaction(ctx context.Context, repo persistence.TransactionRepository, n *entity.Notification) (*entity.Transaction, error) {
	reference := n.Reference
	if reference == "" {
		if n.ProviderReference == "" {
			return nil, errs.ErrTransactionNotFound
		}
		found, err := repo.GetByProviderReference(ctx, n.Provider, n.ProviderReference)
		if err != nil {
			return nil, err
		}
		reference = found.Reference
	}
	return repo.GetByReferenceForUpdate(ctx, reference)
}

// fulfil applies the purpose of a successful payment once, then marks it settled
func (s *Service) fulfil(ctx context.Context, txn *entity.Transaction) *entity.Transaction {
	tokens := s.tokensFor(txn)
	if tokens > 0 {
		if _, err := s.wallet.Credit(ctx, txn.UserID, tokens, "payment", txn.Reference); err != nil {
			s.logger.Error("Failed to credit wallet for payment", map[string]any{
				"reference": txn.Reference,
				"user_id":   txn.UserID,
				"tokens":    tokens,
				"error":     err.Error(),
			})
			return txn
		}
	} else {
		s.logger.Warn("Payment grants no tokens", map[string]any{
			"reference": txn.Reference,
			"purpose":   string(txn.Purpose),
			"amount":    txn.Amount,
		})
	}

	txn.MarkSettled(s.timeProvider)
	if err := s.uow.GetTransactionRepository(ctx).Update(ctx, txn); err != nil {
		s.logger.Error("Failed to mark transaction settled", map[string]any{
			"reference": txn.Reference,
			"error":     err.Error(),
		})
	}
	return txn
}

// tokensFor is the number of tokens a successful payment grants.
// An AI grant is only honoured when the amount paid covers its price.
func (s *Service) tokensFor(txn *entity.Transaction) int64 {
	switch txn.Purpose {
	case entity.PurposeWalletTopUp:
		tokens, err := entity.TokensForAmount(txn.Amount, s.cfg.TokenPrice, txn.Currency)
		if err != nil {
			s.logger.Error("Cannot convert top-up to tokens", map[string]any{
				"reference": txn.Reference,
				"amount":    txn.Amount,
				"error":     err.Error(),
			})
			return 0
		}
		return tokens
	case entity.PurposeAITokens, entity.PurposeAIService:
		tokens, ok := txn.MetaInt64(entity.MetaTokens)
		if !ok || tokens <= 0 || tokens > entity.MaxTokensPerPurchase {
			return 0
		}
		quote, err := entity.QuotePrice(tokens, s.cfg.TokenPrice, s.packDiscount(txn.MetaString(entity.MetaPack)), txn.Currency)
		if err != nil || quote.Amount > txn.Amount {
			s.logger.Error("Paid amount does not cover token grant", map[string]any{
				"reference": txn.Reference,
				"tokens":    tokens,
				"paid":      txn.Amount,
				"price":     quote.Amount,
			})
			return 0
		}
		return tokens
	}
	return 0
}

// packDiscount is the configured discount of a pack, zero for unknown packs
func (s *Service) packDiscount(code string) int64 {
	for _, p := range s.cfg.Packs {
		if p.Code == code {
			return p.DiscountPercent
		}
	}
	return 0
}

// mismatched reports whether a notification carries a different amount or currency
func mismatched(txn *entity.Transaction, n *entity.Notification) bool {
	if n.Amount != txn.Amount {
		return true
	}
	return n.Currency != "" && n.Currency != txn.Currency
}

// DetectProvider guesses which provider sent a callback from its fields
func DetectProvider(cb gateway.Callback) entity.ProviderName {
	has := func(key string) bool {
		return cb.Form.Get(key) != "" || cb.Query.Get(key) != ""
	}
	if has("cpm_trans_id") {
		return entity.ProviderCinetPay
	}
	if has("transId") {
		return entity.ProviderFapshi
	}

	var body map[string]any
	if len(cb.Body) > 0 && json.Unmarshal(cb.Body, &body) == nil {
		if _, ok := body["cpm_trans_id"]; ok {
			return entity.ProviderCinetPay
		}
		if _, ok := body["transId"]; ok {
			return entity.ProviderFapshi
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
