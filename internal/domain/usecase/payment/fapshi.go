package payment

import (
	"context"
	"errors"
	"regexp"
	"strconv"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	"github.com/guidy-app/joblight/internal/domain/port/gateway"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
)

// MinPayoutAmount is the smallest payout Fapshi accepts, in XAF
const MinPayoutAmount = 100

// cameroonMobile matches a local Cameroonian mobile number
var cameroonMobile = regexp.MustCompile(`^6[0-9]{8}$`)

// FapshiService exposes the operations only Fapshi offers
type FapshiService struct {
	payments *Service
}

// NewFapshiService creates a FapshiService on top of the payment service registry
func NewFapshiService(payments *Service) *FapshiService {
	return &FapshiService{payments: payments}
}

// ValidatePayout checks a payout request before anything is sent
func ValidatePayout(in usecase.PayoutInput) error {
	if in.Amount < MinPayoutAmount {
		return errs.NewValidationError("amount", "must be at least "+strconv.Itoa(MinPayoutAmount))
	}
	if !cameroonMobile.MatchString(in.Phone) {
		return errs.NewValidationError("phone", "must be a 9-digit Cameroonian mobile number starting with 6")
	}
	return nil
}

// Payout sends money to a mobile money account
func (f *FapshiService) Payout(ctx context.Context, in usecase.PayoutInput) (*gateway.PayoutResult, error) {
	if err := ValidatePayout(in); err != nil {
		return nil, err
	}

	sender, err := capability[gateway.PayoutSender](f.payments, entity.CapabilityPayout)
	if err != nil {
		return nil, err
	}

	reference, err := f.payments.idGenerator.NewReference()
	if err != nil {
		return nil, err
	}

	req := gateway.PayoutRequest{
		Reference: reference,
		Amount:    in.Amount,
		Phone:     in.Phone,
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
	}
	if in.UserID != 0 {
		req.UserID = strconv.FormatUint(in.UserID, 10)
	}

	result, err := sender.Payout(ctx, req)
	if err != nil {
		fields := errs.LogFields(err)
		fields["reference"] = reference
		f.payments.logger.Error("Payout failed", fields)
		return nil, err
	}

	f.payments.logger.Info("Payout sent", map[string]any{
		"reference":          reference,
		"provider_reference": result.ProviderReference,
		"amount":             in.Amount,
		"user_id":            in.UserID,
	})
	return result, nil
}

// SearchTransactions passes free-form filters to the Fapshi search
func (f *FapshiService) SearchTransactions(ctx context.Context, filters map[string]string) ([]gateway.ProviderTransaction, error) {
	searcher, err := capability[gateway.TransactionSearcher](f.payments, entity.CapabilitySearch)
	if err != nil {
		return nil, err
	}
	return searcher.Search(ctx, filters)
}

// GetUserTransactions lists the Fapshi transactions tagged with a user id
func (f *FapshiService) GetUserTransactions(ctx context.Context, userID string) ([]gateway.ProviderTransaction, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	searcher, err := capability[gateway.TransactionSearcher](f.payments, entity.CapabilitySearch)
	if err != nil {
		return nil, err
	}
	return searcher.UserTransactions(ctx, userID)
}

// ExpirePayment expires a payment at Fapshi and, when we know it, locally
func (f *FapshiService) ExpirePayment(ctx context.Context, transID string) (*gateway.StatusResult, error) {
	if transID == "" {
		return nil, errs.NewValidationError("transId", "is required")
	}

	expirer, err := capability[gateway.Expirer](f.payments, entity.CapabilityExpire)
	if err != nil {
		return nil, err
	}

	result, err := expirer.Expire(ctx, transID)
	if err != nil {
		return nil, err
	}

	txn, err := f.payments.uow.GetTransactionRepository(ctx).GetByProviderReference(ctx, entity.ProviderFapshi, transID)
	switch {
	case errors.Is(err, errs.ErrTransactionNotFound):
		return result, nil
	case err != nil:
		return nil, err
	}

	status := result.Status
	if !status.IsTerminal() {
		status = entity.StatusExpired
	}
	if _, err := f.payments.settle(ctx, &entity.Notification{
		Provider:          entity.ProviderFapshi,
		Reference:         txn.Reference,
		ProviderReference: transID,
		Status:            status,
		Reason:            "expired",
	}, nil); err != nil {
		return nil, err
	}
	return result, nil
}

// capability returns the Fapshi adapter as the capability interface T
func capability[T any](s *Service, c entity.Capability) (T, error) {
	var zero T
	p, err := s.provider(entity.ProviderFapshi)
	if err != nil {
		return zero, err
	}
	impl, ok := p.(T)
	if !ok {
		return zero, unsupported(p.Name(), c)
	}
	return impl, nil
}

var _ usecase.FapshiUseCase = (*FapshiService)(nil)
