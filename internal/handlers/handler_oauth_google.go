package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/core/services"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/SscSPs/counterparty_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "portal_oauth_state"

// GoogleOAuthHandler handles Google sign-in. Both the ID token flow used by
// the SPA and the authorization code flow end with a portal JWT.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
	frontendBaseURL    string
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
	frontendBaseURL string,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		tokenService:       tokenService,
		frontendBaseURL:    frontendBaseURL,
	}
}

// ExchangeCodeRequest defines the expected JSON body for the /google/exchange-code endpoint.
type ExchangeCodeRequest struct {
	Code  string `json:"code" binding:"required"`
	State string `json:"state"`
}

// LoginWithIDToken godoc
// @Summary Sign in with a Google ID token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/google [post]
func (h *GoogleOAuthHandler) LoginWithIDToken(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "sign in with Google")
		return
	}
	h.signIn(c, req.IDToken)
}

// RedirectToGoogle godoc
// @Summary Start the Google authorization code flow
// @Tags auth
// @Success 307
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) RedirectToGoogle(c *gin.Context) {
	state, err := h.googleOAuthService.GenerateStateString(c.Request.Context())
	if err != nil {
		respondError(c, err, "start Google sign-in")
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/api/v1/auth/google", "", strings.HasPrefix(h.frontendBaseURL, "https://"), true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(c.Request.Context(), state))
}

// ExchangeCodeGoogle godoc
// @Summary Exchange a Google authorization code for a portal token
// @Tags auth
// @Accept json
// @Produce json
// @Param code body ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "exchange Google code")
		return
	}
	if cookie, err := c.Cookie(oauthStateCookie); err == nil && cookie != req.State {
		respondError(c, apperrors.NewValidationError("state", "does not match the sign-in request"), "exchange Google code")
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		lower := strings.ToLower(err.Error())
		if strings.Contains(lower, "invalid_grant") || strings.Contains(lower, "bad request") {
			respondError(c, apperrors.NewValidationError("code", "is invalid or expired"), "exchange Google code")
			return
		}
		respondError(c, apperrors.NewAppError(http.StatusBadGateway, "failed to communicate with Google", err), "exchange Google code")
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token not found in Google's token response")
		respondError(c, apperrors.NewAppError(http.StatusBadGateway, "Google returned no ID token", nil), "exchange Google code")
		return
	}
	h.signIn(c, idTokenString)
}

func (h *GoogleOAuthHandler) signIn(c *gin.Context, idTokenString string) {
	ctx := c.Request.Context()

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		respondError(c, errors.Join(apperrors.ErrUnauthorized, err), "sign in with Google")
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(ctx, services.GoogleUserInfoFromPayload(payload))
	if err != nil {
		respondError(c, err, "sign in with Google")
		return
	}
	issueToken(c, h.tokenService, user)
}
