package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/evento-live/evento-gateway/internal/domain"
	"github.com/evento-live/evento-gateway/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest       ErrorCode = "bad_request"
	errCodeNotFound         ErrorCode = "not_found"
	errCodeValidationFailed ErrorCode = "validation_failed"
	errCodeNotConnected     ErrorCode = "not_connected"
	errCodeRejected         ErrorCode = "rejected"
	errCodeConflict         ErrorCode = "conflict"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
	errCodeUpstreamError ErrorCode = "upstream_error"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", details)
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, fields...)
	respondWithError(c, http.StatusInternalServerError, errCodeInternalError, message)
}

// respondDomainError maps well-known domain errors to HTTP responses. Errors
// outside the mapping are treated as internal.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidDiscountCode),
		errors.Is(err, domain.ErrInvalidAddress),
		errors.Is(err, domain.ErrInvalidPercentage):
		respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", err.Error())

	case errors.Is(err, domain.ErrUnknownTicket):
		respondWithError(c, http.StatusNotFound, errCodeNotFound, "Ticket type not found", err.Error())

	case errors.Is(err, domain.ErrNotConnected),
		errors.Is(err, domain.ErrProviderMissing):
		respondWithError(c, http.StatusConflict, errCodeNotConnected, "No wallet session", err.Error())

	case errors.Is(err, domain.ErrUserRejected):
		respondWithError(c, http.StatusConflict, errCodeRejected, "Connection request declined", err.Error())

	case errors.Is(err, domain.ErrPurchasingClosed),
		errors.Is(err, domain.ErrTicketUnavailable):
		respondWithError(c, http.StatusConflict, errCodeConflict, "Purchasing is closed for this request", err.Error())

	case errors.Is(err, domain.ErrTransactionRejected),
		errors.Is(err, domain.ErrTransactionReverted),
		errors.Is(err, domain.ErrHandleInvalidated):
		respondWithError(c, http.StatusConflict, errCodeRejected, "Transaction did not succeed", err.Error())

	case errors.Is(err, domain.ErrCatalogFetchFailed):
		logger.Error(err)
		respondWithError(c, http.StatusBadGateway, errCodeUpstreamError, "Catalog fetch failed")

	default:
		respondInternalError(c, err, "Internal server error")
	}
}
