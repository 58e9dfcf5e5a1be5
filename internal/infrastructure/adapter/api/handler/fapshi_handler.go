package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/dto"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/middleware"
)

// FapshiHandler serves the Fapshi-only operations
type FapshiHandler struct {
	fapshi usecase.FapshiUseCase
	logger coreport.Logger
}

// NewFapshiHandler creates a new Fapshi handler instance
func NewFapshiHandler(fapshi usecase.FapshiUseCase, logger coreport.Logger) *FapshiHandler {
	return &FapshiHandler{fapshi: fapshi, logger: logger}
}

// Payout handles POST /api/fapshi/payout
func (h *FapshiHandler) Payout(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.PayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.fapshi.Payout(c.Request.Context(), usecase.PayoutInput{
		UserID:  userID,
		Amount:  req.Amount,
		Phone:   req.Phone,
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, gin.H{
		"trans_id": result.ProviderReference,
		"status":   result.Status,
		"message":  result.Message,
	})
}

// Search handles GET /api/fapshi/transactions/search
func (h *FapshiHandler) Search(c *gin.Context) {
	filters := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}

	txs, err := h.fapshi.SearchTransactions(c.Request.Context(), filters)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, txs)
}

// UserTransactions handles GET /api/fapshi/transactions/user/:userId.
// Only operators may list another user's transactions.
func (h *FapshiHandler) UserTransactions(c *gin.Context) {
	callerID, ok := currentUser(c)
	if !ok {
		return
	}

	userID := c.Param("userId")
	if userID != strconv.FormatUint(callerID, 10) && !middleware.IsOperator(c) {
		respondError(c, h.logger, errs.ErrForbidden)
		return
	}

	txs, err := h.fapshi.GetUserTransactions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, txs)
}

// Expire handles POST /api/fapshi/expire/:transactionId
func (h *FapshiHandler) Expire(c *gin.Context) {
	result, err := h.fapshi.ExpirePayment(c.Request.Context(), c.Param("transactionId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, gin.H{
		"trans_id":  result.ProviderReference,
		"reference": result.Reference,
		"status":    result.Status,
	})
}
