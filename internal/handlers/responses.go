package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/SscSPs/counterparty_portal/internal/middleware"
	"github.com/SscSPs/counterparty_portal/internal/validators"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error to its HTTP status and writes the body.
func respondError(c *gin.Context, err error, action string) {
	status, body := errorResponse(err, action)

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("action", action), slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.String("action", action), slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, body)
}

// errorResponse classifies err. Infrastructure details never reach the body.
func errorResponse(err error, action string) (int, dto.ErrorResponse) {
	if fields, ok := apperrors.FieldErrors(err); ok {
		return http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Fields: fields}
	}

	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()}
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, dto.ErrorResponse{Error: err.Error()}
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.ErrorResponse{Error: "You may not change this record"}
	case errors.Is(err, apperrors.ErrRateNotFound), errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, dto.ErrorResponse{Error: err.Error()}
	case errors.Is(err, apperrors.ErrConversionUnavailable):
		return http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()}
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"}
	case errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code != http.StatusInternalServerError:
		return appErr.Code, dto.ErrorResponse{Error: appErr.Message}
	}
	return http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to " + action}
}

// respondBindError answers a failed ShouldBind* call with 400 and the field map.
func respondBindError(c *gin.Context, err error, action string) {
	respondError(c, validators.FromBindingError(err), action)
}

// requireActor returns the authenticated actor or answers 401.
func requireActor(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return domain.Actor{}, false
	}
	return actor, true
}

// bindList reads the includeInactive flag shared by list endpoints.
func bindList(c *gin.Context) (domain.Visibility, bool) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "list records")
		return domain.ActiveOnly, false
	}
	return params.Visibility(), true
}
