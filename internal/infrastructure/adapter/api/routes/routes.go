package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/guidy-app/joblight/internal/domain/entity"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/handler"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Payment   *handler.PaymentHandler
	Webhook   *handler.WebhookHandler
	Fapshi    *handler.FapshiHandler
	AI        *handler.AIHandler
	Portfolio *handler.PortfolioHandler
	Section   *handler.SectionHandler
	CV        *handler.CVHandler
	Health    *handler.HealthHandler
}

// Options carries the route-level middleware settings
type Options struct {
	Auth          middleware.AuthConfig
	CinetPayDebug bool
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, opts Options, logger coreport.Logger) {
	auth := middleware.Auth(opts.Auth, logger)
	verified := middleware.Verified()
	operator := middleware.Operator()

	router.GET("/health", h.Health.Live)
	router.GET("/health/ready", h.Health.Ready)

	// Provider callbacks are unauthenticated; signatures are checked per provider
	router.POST("/payments/notify", h.Webhook.Notify)
	router.GET("/payments/return", h.Webhook.Return)

	cinetpay := router.Group("/api/cinetpay")
	{
		cinetpay.Any("/callback", h.Webhook.CinetPayCallback)

		debug := cinetpay.Group("", middleware.CinetPayDebug(opts.CinetPayDebug, logger))
		debug.POST("/notify", h.Webhook.Provider(entity.ProviderCinetPay))
		debug.Any("/return", h.Webhook.Return)
	}
	router.POST("/api/fapshi/webhook", h.Webhook.Provider(entity.ProviderFapshi))
	router.POST("/api/notchpay/webhook", h.Webhook.Provider(entity.ProviderNotchPay))
	router.POST("/api/pluto/webhook", h.Webhook.Provider(entity.ProviderPluto))

	// Unified payments
	router.GET("/api/payments/providers", h.Payment.Providers)
	payments := router.Group("/api/payments", auth, verified)
	{
		payments.POST("/initiate", h.Payment.Initiate)
		payments.POST("/direct-mobile", h.Payment.DirectMobile)
		payments.GET("/status/:reference", h.Payment.Status)
		payments.POST("/recommend-provider", h.Payment.Recommend)
		payments.GET("/balance/:provider", operator, h.Payment.Balance)
	}

	// Fapshi operations act on the merchant account; users may only list their own transactions
	fapshi := router.Group("/api/fapshi", auth, verified)
	{
		fapshi.GET("/transactions/user/:userId", h.Fapshi.UserTransactions)
		fapshi.POST("/payout", operator, h.Fapshi.Payout)
		fapshi.GET("/transactions/search", operator, h.Fapshi.Search)
		fapshi.POST("/expire/:transactionId", operator, h.Fapshi.Expire)
	}

	ai := router.Group("/api/payment/ai", auth, verified)
	{
		ai.GET("/catalogue", h.AI.Catalogue)
		ai.POST("/check-access", h.AI.CheckAccess)
		ai.POST("/calculate-price", h.AI.CalculatePrice)
		ai.POST("/check-balance", h.AI.CheckBalance)
		ai.POST("/initiate-service", h.AI.InitiateService)
		ai.POST("/initiate-tokens", h.AI.InitiateTokens)
		ai.POST("/use-service", h.AI.UseService)
		ai.POST("/history", h.AI.History)
	}

	// Public portfolio pages; a bearer token is optional and only keeps owners out of the counters
	public := router.Group("/portfolio", middleware.OptionalAuth(opts.Auth, logger))
	{
		public.GET("/:identifier", h.Portfolio.Show)
		public.GET("/:identifier/qr", h.Portfolio.QRCode)
	}

	owner := router.Group("", auth)
	{
		owner.GET("/portfolio", h.Portfolio.OwnerPage)
		owner.PUT("/portfolio", h.Portfolio.Update)
		owner.GET("/portfolio/edit", h.Portfolio.OwnerPage)
	}

	portfolio := router.Group("/api/portfolio", auth)
	{
		portfolio.GET("/stats", h.Portfolio.Stats)
		portfolio.POST("/share", h.Portfolio.Share)

		// :kind is "sections" or "services"
		portfolio.GET("/:kind", h.Section.List)
		portfolio.POST("/:kind", h.Section.Create)
		portfolio.PUT("/:kind/order", h.Section.Reorder)
		portfolio.PUT("/:kind/:id", h.Section.Update)
		portfolio.DELETE("/:kind/:id", h.Section.Delete)
		portfolio.POST("/:kind/:id/toggle", h.Section.Toggle)
		portfolio.POST("/:kind/:id/move", h.Section.Move)
	}

	cv := router.Group("/api/cv", auth)
	{
		cv.GET("/templates", h.CV.Templates)
		cv.GET("/preview/:template", h.CV.Preview)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, allowedOrigins []string, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
}
