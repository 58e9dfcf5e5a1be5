package handler

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/domain/port/usecase"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/dto"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/middleware"
)

// PortfolioHandler serves public portfolio pages and their owner endpoints
type PortfolioHandler struct {
	portfolios usecase.PortfolioUseCase
	stats      usecase.StatsUseCase
	logger     coreport.Logger
}

// NewPortfolioHandler creates a new portfolio handler instance
func NewPortfolioHandler(portfolios usecase.PortfolioUseCase, stats usecase.StatsUseCase, logger coreport.Logger) *PortfolioHandler {
	return &PortfolioHandler{portfolios: portfolios, stats: stats, logger: logger}
}

// Show handles GET /portfolio/:identifier and counts the visit
func (h *PortfolioHandler) Show(c *gin.Context) {
	ctx := c.Request.Context()
	identifier := c.Param("identifier")

	page, err := h.portfolios.Build(ctx, identifier)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	viewerID, _ := middleware.UserID(c)
	stats, err := h.stats.RecordView(ctx, identifier, visitorKey(c), viewerID)
	if err != nil {
		// counting is best-effort once the page is built
		h.logger.Warn("Failed to record portfolio view", map[string]any{
			"identifier": identifier,
			"error":      err.Error(),
		})
	} else {
		page.Stats = stats
	}

	respondOK(c, page)
}

// QRCode handles GET /portfolio/:identifier/qr
func (h *PortfolioHandler) QRCode(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))

	png, err := h.portfolios.QRCode(c.Request.Context(), c.Param("identifier"), size)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/png", png)
}

// OwnerPage handles GET /portfolio and GET /portfolio/edit
func (h *PortfolioHandler) OwnerPage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	page, err := h.portfolios.OwnerPage(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, page)
}

// Update handles PUT /portfolio
func (h *PortfolioHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	portfolio, err := h.portfolios.Update(c.Request.Context(), userID, usecase.UpdatePortfolioInput{
		Design:   req.Design,
		Slug:     req.Slug,
		IsPublic: req.IsPublic,
		Settings: req.Settings,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, portfolio)
}

// Share handles POST /api/portfolio/share
func (h *PortfolioHandler) Share(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	stats, err := h.stats.RecordShare(c.Request.Context(), userID, req.Platform, req.Metadata)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, stats)
}

// Stats handles GET /api/portfolio/stats
func (h *PortfolioHandler) Stats(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	stats, err := h.stats.GetStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, stats)
}

// visitorKey identifies an anonymous visitor without storing their address
func visitorKey(c *gin.Context) string {
	sum := sha256.Sum256([]byte(c.ClientIP() + "|" + c.Request.UserAgent()))
	return hex.EncodeToString(sum[:16])
}
