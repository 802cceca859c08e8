package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/SscSPs/counterparty_portal/internal/middleware"
	"github.com/SscSPs/counterparty_portal/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *AuthHandler {
	return &AuthHandler{
		userService:  us,
		tokenService: ts,
	}
}

// registerAuthRoutes sets up the public authentication routes. Login attempts
// are rate limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.TokenService)
	g := NewGoogleOAuthHandler(services.GoogleOAuthHandler, services.User, services.TokenService, cfg.FrontendBaseURL)

	auth := r.Group("/api/v1/auth")
	if loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit); err != nil {
		slog.Warn("Login rate limiting disabled", slog.String("error", err.Error()))
	} else {
		auth.Use(middleware.GinMiddlewarize(loginLimiter))
	}
	{
		auth.POST("/login", h.Login)
		auth.POST("/google", g.LoginWithIDToken)
		auth.GET("/google/login", g.RedirectToGoogle)
		auth.POST("/google/exchange-code", g.ExchangeCodeGoogle)
	}
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "log in")
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err, "log in")
		return
	}
	issueToken(c, h.tokenService, user)
}

func issueToken(c *gin.Context, tokens portssvc.TokenSvcFacade, user *domain.User) {
	token, expiresAt, err := tokens.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, apperrors.NewAppError(http.StatusInternalServerError, "failed to generate token", err), "generate token")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt, User: dto.ToUserResponse(user)})
}
