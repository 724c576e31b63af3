package handlers

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/salestrackhq/salestrack_app/internal/core/domain"
	portssvc "github.com/salestrackhq/salestrack_app/internal/core/ports/services"
	"github.com/salestrackhq/salestrack_app/internal/dto"
	"github.com/salestrackhq/salestrack_app/internal/middleware"
	"github.com/salestrackhq/salestrack_app/internal/platform/config"
	"github.com/salestrackhq/salestrack_app/internal/utils"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	accountService portssvc.AccountSvcFacade
	jwtSecret      string
	jwtDuration    time.Duration
	jwtIssuer      string
	attempts       *attemptRegistry
}

// attemptRegistry keeps per-session login attempt counters. Sessions are
// keyed by client IP, the closest stable handle this stateless API has to
// the browser session of the original dashboard.
type attemptRegistry struct {
	mu       sync.Mutex
	counters map[string]*domain.LoginAttempts
}

func newAttemptRegistry() *attemptRegistry {
	return &attemptRegistry{counters: make(map[string]*domain.LoginAttempts)}
}

func (r *attemptRegistry) get(key string) *domain.LoginAttempts {
	r.mu.Lock()
	defer r.mu.Unlock()
	attempts, ok := r.counters[key]
	if !ok {
		attempts = &domain.LoginAttempts{}
		r.counters[key] = attempts
	}
	return attempts
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AccountSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		accountService: as,
		jwtSecret:      cfg.JWTSecret,
		jwtDuration:    cfg.JWTExpiryDuration,
		jwtIssuer:      cfg.JWTIssuer,
		attempts:       newAttemptRegistry(),
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, accountService portssvc.AccountSvcFacade) {
	h := NewAuthHandler(accountService, cfg)

	// IP rate limit on top of the per-session attempt counter
	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		// Config validates the rate at load time; if a bad value still gets
		// here, fall back instead of wiring a zero rate that blocks everyone.
		slog.Warn("Invalid login rate limit, using default",
			slog.String("value", cfg.LoginRateLimit),
			slog.String("default", config.DefaultLoginRateLimit))
		rate, _ = limiter.NewRateFromFormatted(config.DefaultLoginRateLimit)
	}
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
		auth.POST("/register", h.Register)
	}
}

// Login godoc
// @Summary Staff login
// @Description Authenticates a staff account and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	attempts := h.attempts.get(c.ClientIP())
	account, err := h.accountService.Authenticate(c.Request.Context(), req.Username, req.Password, attempts)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	expiresAt := time.Now().Add(h.jwtDuration)
	token, err := utils.GenerateJWT(account.AccountID, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   dto.ToAccountResponse(account),
	})
}

// Register godoc
// @Summary Register new staff account
// @Description Creates a new staff account with a strength-checked password.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration Info"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Conflict (username exists)"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	account, err := h.accountService.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}
