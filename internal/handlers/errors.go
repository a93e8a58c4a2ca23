package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusFor maps application errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrFetchFailed):
		return http.StatusBadGateway
	case errors.Is(err, apperrors.ErrMissingConfiguration):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a JSON error body. Internal errors are logged and hidden
// behind fallback; client errors carry their message.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusFor(err)
	switch {
	case status == http.StatusInternalServerError:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallback})
	case status >= http.StatusBadGateway:
		logger.Error(fallback, slog.String("error", err.Error()), slog.Int("status", status))
		c.JSON(status, gin.H{"error": err.Error()})
	default:
		logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", status))
		c.JSON(status, gin.H{"error": err.Error()})
	}
}

// bindError answers a malformed request body or query.
func bindError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}

// requireUserID reads the authenticated subject, answering 401 when it is absent.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// periodFromQuery parses the optional from/to query parameters.
func periodFromQuery(c *gin.Context) (domain.Period, bool) {
	from, err := dto.ParseDateParam(c.Query("from"), false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date. Use YYYY-MM-DD"})
		return domain.Period{}, false
	}
	to, err := dto.ParseDateParam(c.Query("to"), true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date. Use YYYY-MM-DD"})
		return domain.Period{}, false
	}
	if from != nil && to != nil && to.Before(*from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must not be before from"})
		return domain.Period{}, false
	}
	return domain.Period{From: from, To: to}, true
}
