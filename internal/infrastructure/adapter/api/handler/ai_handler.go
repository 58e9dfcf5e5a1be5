package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/dto"
)

// AIHandler serves the AI token gate under /api/payment/ai
type AIHandler struct {
	ai     usecase.AIUseCase
	logger coreport.Logger
}

// NewAIHandler creates a new AI handler instance
func NewAIHandler(ai usecase.AIUseCase, logger coreport.Logger) *AIHandler {
	return &AIHandler{ai: ai, logger: logger}
}

// Catalogue handles GET /api/payment/ai/catalogue
func (h *AIHandler) Catalogue(c *gin.Context) {
	services, packs := h.ai.Catalogue()
	respondOK(c, gin.H{"services": services, "packs": packs})
}

// CheckAccess handles POST /api/payment/ai/check-access
func (h *AIHandler) CheckAccess(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	check, err := h.ai.CheckAccess(c.Request.Context(), userID, req.Service)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, check)
}

// CalculatePrice handles POST /api/payment/ai/calculate-price
func (h *AIHandler) CalculatePrice(c *gin.Context) {
	var req dto.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	quote, err := h.ai.CalculatePrice(c.Request.Context(), usecase.PriceInput{
		Service: req.Service,
		Pack:    req.Pack,
		Tokens:  req.Tokens,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, quote)
}

// CheckBalance handles POST /api/payment/ai/check-balance
func (h *AIHandler) CheckBalance(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	tokens, err := h.ai.CheckBalance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, gin.H{"tokens": tokens})
}

// InitiateService handles POST /api/payment/ai/initiate-service
func (h *AIHandler) InitiateService(c *gin.Context) {
	h.initiate(c, h.ai.InitiateServicePayment)
}

// InitiateTokens handles POST /api/payment/ai/initiate-tokens
func (h *AIHandler) InitiateTokens(c *gin.Context) {
	h.initiate(c, h.ai.InitiateTokenPurchase)
}

func (h *AIHandler) initiate(c *gin.Context, pay func(context.Context, usecase.AIPaymentInput) (*usecase.PaymentResult, error)) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.AIPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := pay(c.Request.Context(), usecase.AIPaymentInput{
		UserID:        userID,
		Service:       req.Service,
		Pack:          req.Pack,
		Tokens:        req.Tokens,
		Provider:      req.Provider,
		Phone:         req.Phone,
		Country:       req.Country,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, result)
}

// UseService handles POST /api/payment/ai/use-service
func (h *AIHandler) UseService(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UseServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.ai.UseService(c.Request.Context(), usecase.UseServiceInput{
		UserID:    userID,
		Service:   req.Service,
		RequestID: req.RequestID,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, result)
}

// History handles POST /api/payment/ai/history
func (h *AIHandler) History(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.HistoryRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}

	entries, err := h.ai.History(c.Request.Context(), userID, req.Limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, dto.NewWalletEntryResponses(entries))
}
