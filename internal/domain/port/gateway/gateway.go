package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/guidy-app/joblight/internal/domain/entity"
)

// Provider is a payment provider adapter.
// What a provider can do is expressed by the capability interfaces it also implements.
type Provider interface {
	Name() entity.ProviderName
	DisplayName() string
	Currencies() []entity.Currency
}

// InitiateRequest asks a provider for a hosted checkout
type InitiateRequest struct {
	Reference     string
	UserID        uint64
	Amount        int64 // minor units
	Currency      entity.Currency
	Description   string
	CustomerName  string
	CustomerEmail string
	Phone         string
	ReturnURL     string
	NotifyURL     string
}

// Checkout is what a provider returns when a payment is opened
type Checkout struct {
	ProviderReference string
	PaymentURL        string
	Status            entity.TransactionStatus
}

// StatusResult is the provider's view of a payment
type StatusResult struct {
	ProviderReference string
	Reference         string
	Status            entity.TransactionStatus
	Amount            int64
	Currency          entity.Currency
	Reason            string
	Raw               map[string]any
}

// Balance is the merchant balance held at a provider
type Balance struct {
	Amount   int64
	Currency entity.Currency
	Raw      map[string]any
}

// PayoutRequest sends money to a mobile money account
type PayoutRequest struct {
	Reference string
	Amount    int64
	Phone     string
	Name      string
	Email     string
	Message   string
	UserID    string
}

// PayoutResult is the provider's answer to a payout
type PayoutResult struct {
	ProviderReference string
	Status            entity.TransactionStatus
	Message           string
}

// ProviderTransaction is a transaction as listed by the provider
type ProviderTransaction struct {
	ProviderReference string         `json:"trans_id"`
	Reference         string         `json:"external_id,omitempty"`
	Status            string         `json:"status"`
	Amount            int64          `json:"amount"`
	Medium            string         `json:"medium,omitempty"`
	Phone             string         `json:"phone,omitempty"`
	Name              string         `json:"name,omitempty"`
	Email             string         `json:"email,omitempty"`
	UserID            string         `json:"user_id,omitempty"`
	CreatedAt         string         `json:"created_at,omitempty"`
	Raw               map[string]any `json:"-"`
}

// Callback is an inbound provider request, already read from the wire
type Callback struct {
	Method string
	Header http.Header
	Query  url.Values
	Form   url.Values
	Body   []byte
}

// Initiator opens hosted checkouts
type Initiator interface {
	Initiate(ctx context.Context, req InitiateRequest) (*Checkout, error)
}

// StatusChecker reads the current status of a payment
type StatusChecker interface {
	Status(ctx context.Context, providerReference string) (*StatusResult, error)
}

// DirectCharger pushes a payment prompt to a mobile money number
type DirectCharger interface {
	ChargeMobile(ctx context.Context, req InitiateRequest) (*Checkout, error)
}

// BalanceReader reads the merchant balance
type BalanceReader interface {
	Balance(ctx context.Context) (*Balance, error)
}

// PayoutSender sends payouts
type PayoutSender interface {
	Payout(ctx context.Context, req PayoutRequest) (*PayoutResult, error)
}

// TransactionSearcher lists transactions held at the provider
type TransactionSearcher interface {
	Search(ctx context.Context, filters map[string]string) ([]ProviderTransaction, error)
	UserTransactions(ctx context.Context, userID string) ([]ProviderTransaction, error)
}

// Expirer cancels a pending payment at the provider
type Expirer interface {
	Expire(ctx context.Context, providerReference string) (*StatusResult, error)
}

// NotificationVerifier authenticates a provider callback and normalises it.
// An unauthentic callback yields errs.ErrInvalidSignature.
type NotificationVerifier interface {
	ParseNotification(ctx context.Context, cb Callback) (*entity.Notification, error)
}

// Capabilities lists what p implements, in a fixed order
func Capabilities(p Provider) []entity.Capability {
	var caps []entity.Capability
	if _, ok := p.(Initiator); ok {
		caps = append(caps, entity.CapabilityInitiate)
	}
	if _, ok := p.(StatusChecker); ok {
		caps = append(caps, entity.CapabilityStatus)
	}
	if _, ok := p.(DirectCharger); ok {
		caps = append(caps, entity.CapabilityDirectMobile)
	}
	if _, ok := p.(BalanceReader); ok {
		caps = append(caps, entity.CapabilityBalance)
	}
	if _, ok := p.(PayoutSender); ok {
		caps = append(caps, entity.CapabilityPayout)
	}
	if _, ok := p.(TransactionSearcher); ok {
		caps = append(caps, entity.CapabilitySearch)
	}
	if _, ok := p.(Expirer); ok {
		caps = append(caps, entity.CapabilityExpire)
	}
	if _, ok := p.(NotificationVerifier); ok {
		caps = append(caps, entity.CapabilityNotification)
	}
	return caps
}
