package payment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/guidy-app/joblight/internal/domain/entity"
	"github.com/guidy-app/joblight/internal/domain/port/gateway"
	mockcore "github.com/guidy-app/joblight/mocks/port/core"
	mockgateway "github.com/guidy-app/joblight/mocks/port/gateway"
	mockpersistence "github.com/guidy-app/joblight/mocks/port/persistence"
	mockusecase "github.com/guidy-app/joblight/mocks/port/usecase"
)

var fixedTime = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

// hostedProvider opens hosted checkouts, reports status and verifies callbacks
type hostedProvider struct {
	*mockgateway.MockProvider
	*mockgateway.MockInitiator
	*mockgateway.MockStatusChecker
	*mockgateway.MockNotificationVerifier
}

// mobileProvider also pushes prompts to phones and reads the merchant balance
type mobileProvider struct {
	*hostedProvider
	*mockgateway.MockDirectCharger
	*mockgateway.MockBalanceReader
}

// fullProvider implements every capability
type fullProvider struct {
	*mobileProvider
	*mockgateway.MockPayoutSender
	*mockgateway.MockTransactionSearcher
	*mockgateway.MockExpirer
}

func newHosted(t *testing.T, name entity.ProviderName, currencies ...entity.Currency) *hostedProvider {
	p := &hostedProvider{
		MockProvider:             mockgateway.NewMockProvider(t),
		MockInitiator:            mockgateway.NewMockInitiator(t),
		MockStatusChecker:        mockgateway.NewMockStatusChecker(t),
		MockNotificationVerifier: mockgateway.NewMockNotificationVerifier(t),
	}
	p.MockProvider.EXPECT().Name().Return(name).Maybe()
	p.MockProvider.EXPECT().DisplayName().Return(string(name)).Maybe()
	p.MockProvider.EXPECT().Currencies().Return(currencies).Maybe()
	return p
}

func newMobile(t *testing.T, name entity.ProviderName, currencies ...entity.Currency) *mobileProvider {
	return &mobileProvider{
		hostedProvider:    newHosted(t, name, currencies...),
		MockDirectCharger: mockgateway.NewMockDirectCharger(t),
		MockBalanceReader: mockgateway.NewMockBalanceReader(t),
	}
}

func newFull(t *testing.T, name entity.ProviderName, currencies ...entity.Currency) *fullProvider {
	return &fullProvider{
		mobileProvider:          newMobile(t, name, currencies...),
		MockPayoutSender:        mockgateway.NewMockPayoutSender(t),
		MockTransactionSearcher: mockgateway.NewMockTransactionSearcher(t),
		MockExpirer:             mockgateway.NewMockExpirer(t),
	}
}

// fixture bundles the mocked dependencies of the payment service
type fixture struct {
	uow    *mockpersistence.MockUnitOfWork
	txRepo *mockpersistence.MockTransactionRepository
	events *mockpersistence.MockWebhookEventRepository
	wallet *mockusecase.MockWalletUseCase
	ids    *mockcore.MockIDGenerator
	clock  *mockcore.MockTimeProvider
	logger *mockcore.MockLogger
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:    mockpersistence.NewMockUnitOfWork(t),
		txRepo: mockpersistence.NewMockTransactionRepository(t),
		events: mockpersistence.NewMockWebhookEventRepository(t),
		wallet: mockusecase.NewMockWalletUseCase(t),
		ids:    mockcore.NewMockIDGenerator(t),
		clock:  mockcore.NewMockTimeProvider(t),
		logger: newQuietLogger(t),
	}
	f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txRepo).Maybe()
	f.uow.EXPECT().GetWebhookEventRepository(mock.Anything).Return(f.events).Maybe()
	f.clock.EXPECT().Now().Return(fixedTime).Maybe()
	return f
}

// expectUnitOfWork allows one unit of work to begin and either commit or roll back
func (f *fixture) expectUnitOfWork() {
	f.uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) {
		return ctx, nil
	}).Maybe()
	f.uow.EXPECT().Commit(mock.Anything).Return(nil).Maybe()
	f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Maybe()
}

func (f *fixture) service(providers ...gateway.Provider) *Service {
	return NewService(providers, f.uow, f.wallet, f.ids, f.clock, f.logger, Config{
		ReturnURL:         "https://api.joblight.test/payments/return",
		NotifyURL:         "https://api.joblight.test/payments/notify",
		FrontendReturnURL: "https://joblight.test/payment/result",
		DefaultCurrency:   entity.CurrencyXAF,
		PendingTTL:        30 * time.Minute,
		TokenPrice:        decimal.NewFromInt(10),
		Packs:             []entity.TokenPack{{Code: "pro", Tokens: 1000, DiscountPercent: 15}},
	})
}

func newQuietLogger(t *testing.T) *mockcore.MockLogger {
	logger := mockcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Return().Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Return().Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Return().Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Return().Maybe()
	return logger
}

func pendingTxn(reference string, purpose entity.Purpose, amount int64) *entity.Transaction {
	return &entity.Transaction{
		ID:        1,
		Reference: reference,
		UserID:    42,
		Provider:  entity.ProviderFapshi,
		Purpose:   purpose,
		Amount:    amount,
		Currency:  entity.CurrencyXAF,
		Status:    entity.StatusPending,
		Metadata:  map[string]any{},
		CreatedAt: fixedTime.Add(-time.Hour),
		UpdatedAt: fixedTime.Add(-time.Hour),
	}
}
