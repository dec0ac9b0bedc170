package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler the router serves
type Handlers struct {
	Credit     *handler.CreditHandler
	Generation *handler.GenerationHandler
	Payment    *handler.PaymentHandler
	Health     *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, handlers Handlers, verifier coreport.IdentityVerifier, logger coreport.Logger) {
	router.GET("/health", handlers.Health.Health)

	// Signature-verified, no user auth
	router.POST("/credits/webhook", handlers.Credit.Webhook)

	authed := router.Group("/", middleware.Auth(verifier, logger))
	{
		authed.GET("/credits", handlers.Credit.GetCredits)
		authed.GET("/credits/packages", handlers.Credit.ListPackages)
		authed.POST("/credits/purchase", handlers.Credit.Purchase)

		authed.POST("/generate", handlers.Generation.Generate)
		authed.POST("/generate-hd", handlers.Generation.GenerateHD)
		authed.GET("/generations", handlers.Generation.ListGenerations)
		authed.POST("/generations", handlers.Generation.CreateGeneration)

		authed.POST("/checkout", handlers.Payment.Checkout)
		authed.POST("/verify-payment", handlers.Payment.VerifyPayment)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	// Order matters: the request id must exist before logging and recovery read it
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
}
