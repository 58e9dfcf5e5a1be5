package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guidy-app/joblight/internal/domain/entity"
	errs "github.com/guidy-app/joblight/internal/domain/error"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/domain/port/gateway"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/dto"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/logger"
)

// maxCallbackBody bounds a provider callback body
const maxCallbackBody = 1 << 20

// WebhookHandler receives provider callbacks and payer returns
type WebhookHandler struct {
	payments usecase.PaymentUseCase
	logger   coreport.Logger
}

// NewWebhookHandler creates a new webhook handler instance
func NewWebhookHandler(payments usecase.PaymentUseCase, logger coreport.Logger) *WebhookHandler {
	return &WebhookHandler{payments: payments, logger: logger}
}

// Notify handles POST /payments/notify?provider=
func (h *WebhookHandler) Notify(c *gin.Context) {
	h.handle(c, c.Query("provider"))
}

// Provider returns a handler bound to one provider, for the per-provider webhook routes
func (h *WebhookHandler) Provider(name entity.ProviderName) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.handle(c, string(name))
	}
}

// CinetPayCallback handles ANY /api/cinetpay/callback. A GET is CinetPay's availability ping.
func (h *WebhookHandler) CinetPayCallback(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		c.JSON(http.StatusOK, dto.OK(gin.H{"status": "available"}))
		return
	}
	h.handle(c, string(entity.ProviderCinetPay))
}

// Return handles GET /payments/return?reference= and redirects the payer to the front end
func (h *WebhookHandler) Return(c *gin.Context) {
	reference := firstValue(c, "reference", "transaction_id", "cpm_trans_id", "transId", "trxref")

	target, err := h.payments.ReturnPage(c.Request.Context(), reference)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Redirect(http.StatusFound, target)
}

func (h *WebhookHandler) handle(c *gin.Context, provider string) {
	cb, err := readCallback(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errs.CodeValidation,
			Message: "Unreadable callback",
		})
		return
	}

	result, err := h.payments.HandleNotification(c.Request.Context(), provider, cb)
	switch {
	case err == nil:
	case errors.Is(err, errs.ErrInvalidSignature):
		h.logger.Warn("Provider callback with invalid signature", map[string]any{
			"provider":   provider,
			"client_ip":  c.ClientIP(),
			"request_id": logger.RequestID(c.Request.Context()),
		})
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    errs.CodeInvalidSignature,
			Message: "Invalid signature",
		})
		return
	default:
		respondError(c, h.logger, err)
		return
	}

	if !result.Known {
		c.JSON(http.StatusOK, dto.ErrorResponse{
			Code:    errs.CodeNotFound,
			Message: "Unknown transaction",
		})
		return
	}
	respondOK(c, gin.H{
		"provider":  result.Provider,
		"reference": result.Reference,
		"status":    result.Status,
		"duplicate": result.Duplicate,
	})
}

// readCallback captures everything a provider may have sent: query, form and raw body
func readCallback(c *gin.Context) (gateway.Callback, error) {
	cb := gateway.Callback{
		Method: c.Request.Method,
		Header: c.Request.Header.Clone(),
		Query:  c.Request.URL.Query(),
		Form:   url.Values{},
	}
	if c.Request.Body == nil {
		return cb, nil
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCallbackBody))
	if err != nil {
		return cb, err
	}
	cb.Body = body

	if strings.Contains(c.ContentType(), "application/x-www-form-urlencoded") {
		form, err := url.ParseQuery(string(body))
		if err != nil {
			return cb, err
		}
		cb.Form = form
	}
	if strings.Contains(c.ContentType(), "multipart/form-data") {
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		if err := c.Request.ParseMultipartForm(maxCallbackBody); err == nil && c.Request.MultipartForm != nil {
			cb.Form = url.Values(c.Request.MultipartForm.Value)
		}
	}
	return cb, nil
}

func firstValue(c *gin.Context, keys ...string) string {
	for _, key := range keys {
		if v := c.Query(key); v != "" {
			return v
		}
		if v := c.PostForm(key); v != "" {
			return v
		}
	}
	return ""
}
