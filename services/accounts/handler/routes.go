package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/gasline/gasline/internal/pkg/jwt"
	"github.com/gasline/gasline/internal/pkg/middleware"
	"github.com/gasline/gasline/internal/pkg/models"
	"github.com/gasline/gasline/services/accounts/handler/http"
)

// Handler coordinates the HTTP handlers for the account service
type Handler struct {
	accountHandler *http.AccountHandler
	verifier       *jwtpkg.Verifier
	redisClient    *redis.Client
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	accountHandler *http.AccountHandler,
	verifier *jwtpkg.Verifier,
	redisClient *redis.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		accountHandler: accountHandler,
		verifier:       verifier,
		redisClient:    redisClient,
		cfg:            cfg,
	}
}

// RegisterRoutes registers all routes of the account service. The
// unauthenticated OTP-issuing endpoints sit behind a redis rate limiter;
// everything touching an existing account requires a bearer token.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	limited := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: h.redisClient,
		Limit:       10,
		Period:      time.Minute,
	})

	// Onboarding state machine (public)
	e.POST("/account/register", h.accountHandler.Register, limited)
	e.POST("/confirm-token", h.accountHandler.ConfirmToken)
	e.POST("/add-information", h.accountHandler.AddInformation)
	e.POST("/add-pin", h.accountHandler.AddPIN)
	e.POST("/resend-token", h.accountHandler.ResendToken, limited)

	// Authentication (public)
	e.POST("/login", h.accountHandler.Login)
	e.POST("/refresh-token", h.accountHandler.RefreshToken)

	// Credential recovery (public, token-gated inside the core)
	e.POST("/forgot-password", h.accountHandler.ForgotPassword, limited)
	e.POST("/reset-password", h.accountHandler.ResetPassword)
	e.POST("/request-pin-process", h.accountHandler.RequestPinProcess, limited)
	e.POST("/request-reset-pin", h.accountHandler.RequestResetPin)
	e.POST("/reset-pin/:user_id", h.accountHandler.ResetPin)

	// Authenticated account operations: the bearer's principal must match
	// the path id on every one of them.
	auth := middleware.AuthMiddleware(h.verifier)
	self := middleware.RequireSelf("user_id")
	e.POST("/change-password/:user_id", h.accountHandler.ChangePassword, auth, self)
	e.POST("/request-phone-reset/:user_id", h.accountHandler.RequestPhoneReset, auth, self)
	e.POST("/reset-phone/:user_id", h.accountHandler.ResetPhone, auth, self)
	e.POST("/update-phone/:user_id", h.accountHandler.UpdatePhone, auth, self)

	accountGroup := e.Group("/accounts", auth, middleware.RequireSelf("customer_id"))
	accountGroup.GET("/:customer_id", h.accountHandler.GetAccount)
	accountGroup.PATCH("/:customer_id", h.accountHandler.UpdateAccount)
	accountGroup.DELETE("/:customer_id", h.accountHandler.DeleteAccount)
}
