package payment

import (
	"context"
	"errors"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/guidy-app/joblight/internal/domain/port/gateway"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
)

// statusUnknown is reported to the front end for references we never issued
const statusUnknown = "unknown"

// CheckPaymentStatus returns a user's transaction, refreshed from the provider while pending
func (s *Service) CheckPaymentStatus(ctx context.Context, userID uint64, reference string) (*entity.Transaction, error) {
	if reference == "" {
		return nil, errs.ErrInvalidReference
	}

	txn, err := s.uow.GetTransactionRepository(ctx).GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if txn.UserID != userID {
		return nil, errs.ErrTransactionNotFound
	}

	return s.refresh(ctx, txn), nil
}

// ReturnPage refreshes the payment the payer comes back from and builds the front-end redirect
func (s *Service) ReturnPage(ctx context.Context, reference string) (string, error) {
	status := statusUnknown
	if reference != "" {
		txn, err := s.uow.GetTransactionRepository(ctx).GetByReference(ctx, reference)
		switch {
		case err == nil:
			status = string(s.refresh(ctx, txn).Status)
		case !errors.Is(err, errs.ErrTransactionNotFound):
			return "", err
		}
	}

	return withQuery(s.cfg.FrontendReturnURL, map[string][]string{
		"reference": {reference},
		"status":    {status},
	}), nil
}

// refresh asks the provider for news on a pending transaction and settles what it learns.
// Provider or storage failures are logged and the stored transaction is returned as is.
func (s *Service) refresh(ctx context.Context, txn *entity.Transaction) *entity.Transaction {
	if txn.NeedsSettlement() {
		return s.fulfil(ctx, txn)
	}
	if txn.Status != entity.StatusPending {
		return txn
	}

	p, ok := s.providers[txn.Provider]
	if !ok {
		return txn
	}
	checker, ok := p.(gateway.StatusChecker)
	if !ok {
		return txn
	}

	result, err := checker.Status(ctx, providerReference(txn))
	if err != nil {
		fields := errs.LogFields(err)
		fields["reference"] = txn.Reference
		s.logger.Warn("Failed to refresh payment status", fields)
		return txn
	}

	updated, err := s.settle(ctx, notificationFromStatus(txn, result), nil)
	if err != nil {
		s.logger.Error("Failed to apply refreshed status", map[string]any{
			"reference": txn.Reference,
			"error":     err.Error(),
		})
		return txn
	}
	return updated
}

// providerReference is the id the provider knows the payment by
func providerReference(txn *entity.Transaction) string {
	if txn.ProviderReference != "" {
		return txn.ProviderReference
	}
	return txn.Reference
}

func notificationFromStatus(txn *entity.Transaction, result *gateway.StatusResult) *entity.Notification {
	return &entity.Notification{
		Provider:          txn.Provider,
		Reference:         txn.Reference,
		ProviderReference: result.ProviderReference,
		Status:            result.Status,
		Amount:            result.Amount,
		Currency:          result.Currency,
		Reason:            result.Reason,
		Raw:               result.Raw,
	}
}

var _ usecase.PaymentUseCase = (*Service)(nil)
