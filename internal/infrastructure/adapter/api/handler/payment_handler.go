package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/guidy-app/joblight/internal/domain/entity"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/dto"
)

// PaymentHandler serves the unified payment API
type PaymentHandler struct {
	payments usecase.PaymentUseCase
	logger   coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(payments usecase.PaymentUseCase, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{payments: payments, logger: logger}
}

// Initiate handles POST /api/payments/initiate
func (h *PaymentHandler) Initiate(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.payments.InitiatePayment(c.Request.Context(), usecase.InitiatePaymentInput{
		UserID:        userID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Provider:      req.Provider,
		Phone:         req.Phone,
		Country:       req.Country,
		Purpose:       entity.Purpose(req.Purpose),
		Description:   req.Description,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Metadata:      entity.ClientMetadata(req.Metadata),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, result)
}

// DirectMobile handles POST /api/payments/direct-mobile
func (h *PaymentHandler) DirectMobile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.DirectMobileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.payments.DirectMobilePayment(c.Request.Context(), usecase.InitiatePaymentInput{
		UserID:        userID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Provider:      req.Provider,
		Phone:         req.Phone,
		Purpose:       entity.Purpose(req.Purpose),
		Description:   req.Description,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Metadata:      entity.ClientMetadata(req.Metadata),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, result)
}

// Status handles GET /api/payments/status/:reference
func (h *PaymentHandler) Status(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	txn, err := h.payments.CheckPaymentStatus(c.Request.Context(), userID, c.Param("reference"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, dto.NewTransactionResponse(txn))
}

// Providers handles GET /api/payments/providers
func (h *PaymentHandler) Providers(c *gin.Context) {
	respondOK(c, h.payments.GetProviders(c.Request.Context()))
}

// Recommend handles POST /api/payments/recommend-provider
func (h *PaymentHandler) Recommend(c *gin.Context) {
	var req dto.RecommendProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rec, err := h.payments.RecommendProvider(c.Request.Context(), usecase.RecommendInput{
		Amount:   req.Amount,
		Currency: req.Currency,
		Phone:    req.Phone,
		Country:  req.Country,
		Method:   req.Method,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, rec)
}

// Balance handles GET /api/payments/balance/:provider
func (h *PaymentHandler) Balance(c *gin.Context) {
	provider := c.Param("provider")

	balance, err := h.payments.GetBalance(c.Request.Context(), provider)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, dto.NewBalanceResponse(string(entity.ParseProviderName(provider)), balance))
}
