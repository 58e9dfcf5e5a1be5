package payment

import (
	"context"
	"time"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/guidy-app/joblight/internal/domain/port/gateway"
)

// DefaultBatchSize bounds one reconcile or expire run when no limit is given
const DefaultBatchSize = 100

// ReconcilePending refreshes pending transactions older than olderThan from their providers
// and returns how many reached a final status
func (s *Service) ReconcilePending(ctx context.Context, olderThan time.Duration, limit int) (int, error) {
	pending, err := s.listPending(ctx, olderThan, limit)
	if err != nil {
		return 0, err
	}

	resolved := 0
	for _, txn := range pending {
		if err := ctx.Err(); err != nil {
			return resolved, err
		}
		if s.refresh(ctx, txn).Status.IsTerminal() {
			resolved++
		}
	}

	s.logger.Info("Reconciled pending payments", map[string]any{
		"checked":  len(pending),
		"resolved": resolved,
	})
	return resolved, nil
}

// ExpireStale expires pending transactions older than olderThan and returns how many were
// expired locally. Each payment is checked at its provider first: a final status reported
// there is applied instead, and a payment whose status cannot be read is only expired once
// its own expiry has passed.
func (s *Service) ExpireStale(ctx context.Context, olderThan time.Duration, limit int) (int, error) {
	if olderThan <= 0 {
		olderThan = s.cfg.PendingTTL
	}

	pending, err := s.listPending(ctx, olderThan, limit)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, txn := range pending {
		if err := ctx.Err(); err != nil {
			return expired, err
		}

		n, ok := s.expiryNotification(ctx, txn)
		if !ok {
			continue
		}

		updated, err := s.settle(ctx, n, nil)
		if err != nil {
			s.logger.Error("Failed to expire transaction", map[string]any{
				"reference": txn.Reference,
				"error":     err.Error(),
			})
			continue
		}
		if updated.Status == entity.StatusExpired {
			expired++
		}
	}

	s.logger.Info("Expired stale payments", map[string]any{
		"checked": len(pending),
		"expired": expired,
	})
	return expired, nil
}

// expiryNotification decides what a stale payment becomes. It reports false when
// the payment must be left alone for now.
func (s *Service) expiryNotification(ctx context.Context, txn *entity.Transaction) (*entity.Notification, bool) {
	if checker, ok := s.providers[txn.Provider].(gateway.StatusChecker); ok {
		result, err := checker.Status(ctx, providerReference(txn))
		switch {
		case err != nil:
			fields := errs.LogFields(err)
			fields["reference"] = txn.Reference
			if !txn.IsStale(s.timeProvider.Now()) {
				s.logger.Warn("Skipping expiry, provider status unknown", fields)
				return nil, false
			}
			s.logger.Warn("Expiring payment past its expiry without provider status", fields)
		case result.Status.IsTerminal():
			return notificationFromStatus(txn, result), true
		}
	}

	if result := s.expireAtProvider(ctx, txn); result != nil && result.Status.IsTerminal() {
		return notificationFromStatus(txn, result), true
	}

	return &entity.Notification{
		Provider:  txn.Provider,
		Reference: txn.Reference,
		Status:    entity.StatusExpired,
		Reason:    "expired",
	}, true
}

// expireAtProvider cancels the payment at its provider when supported.
// Failures are logged and the payment is expired locally anyway.
func (s *Service) expireAtProvider(ctx context.Context, txn *entity.Transaction) *gateway.StatusResult {
	expirer, ok := s.providers[txn.Provider].(gateway.Expirer)
	if !ok || txn.ProviderReference == "" {
		return nil
	}

	result, err := expirer.Expire(ctx, txn.ProviderReference)
	if err != nil {
		fields := errs.LogFields(err)
		fields["reference"] = txn.Reference
		s.logger.Warn("Provider refused to expire payment", fields)
		return nil
	}
	return result
}

func (s *Service) listPending(ctx context.Context, olderThan time.Duration, limit int) ([]*entity.Transaction, error) {
	if limit <= 0 {
		limit = DefaultBatchSize
	}
	cutoff := s.timeProvider.Now().Add(-olderThan)
	return s.uow.GetTransactionRepository(ctx).ListPending(ctx, cutoff, limit)
}
