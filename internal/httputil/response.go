// Package httputil maps wallet errors onto HTTP responses.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/walletkeys/internal/errors"
)

// AuthenticationFailedMessage is the only message returned for a failed PIN check, so a
// wrong PIN and a tampered or foreign record cannot be told apart.
const AuthenticationFailedMessage = "invalid PIN or wallet"

// storageRetryAfter is the Retry-After value, in seconds, sent with storage failures.
const storageRetryAfter = "1"

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// errorMapping ties a sentinel to its response. An empty message echoes the error text.
type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// errorMappings is checked in order; the first sentinel found in the chain wins.
var errorMappings = []errorMapping{
	{apperrors.ErrNotFound, http.StatusNotFound, "not_found", "The requested wallet key was not found"},
	{apperrors.ErrConflict, http.StatusConflict, "conflict", "The wallet key was changed concurrently or already exists"},
	{apperrors.ErrInvalidInput, http.StatusUnprocessableEntity, "invalid_input", ""},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized", AuthenticationFailedMessage},
	{apperrors.ErrForbidden, http.StatusForbidden, "forbidden", "You don't have permission to access this resource"},
	{apperrors.ErrStorage, http.StatusServiceUnavailable, "storage_unavailable", "The key store is temporarily unavailable"},
}

// HandleErrorGin writes the response for err. Unknown errors become a 500 without details.
// Storage failures carry Retry-After since they are transient.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	status := http.StatusInternalServerError
	response := ErrorResponse{Error: "internal_error", Message: "An internal error occurred"}
	for _, m := range errorMappings {
		if !apperrors.Is(err, m.target) {
			continue
		}
		status = m.status
		response = ErrorResponse{Error: m.code, Message: m.message}
		if m.message == "" {
			response.Message = err.Error()
		}
		break
	}

	if status == http.StatusServiceUnavailable {
		c.Header("Retry-After", storageRetryAfter)
	}

	if logger != nil {
		attrs := []any{
			slog.Int("status_code", status),
			slog.String("error_code", response.Error),
			slog.Any("error", err),
		}
		if status >= http.StatusInternalServerError {
			logger.Error("request failed", attrs...)
		} else {
			logger.Warn("request failed", attrs...)
		}
	}

	c.JSON(status, response)
}

// HandleBadRequestGin writes a 400 for a body that could not be decoded.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "bad_request", Message: err.Error()})
}

// HandleValidationErrorGin writes a 422 for a request that decoded but failed validation.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation_error", Message: err.Error()})
}
