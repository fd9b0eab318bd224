package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the body of every error response: {"error": APIError}.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
}

// NewAPIError creates a new APIError instance
func NewAPIError(statusCode int, code string, message string, details string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Details:    details,
	}
}

// RespondWithError sends a standardized JSON error response and aborts the chain.
func RespondWithError(c *gin.Context, err *APIError) {
	c.JSON(err.StatusCode, gin.H{"error": err})
	c.Abort()
}

const (
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeConflict            = "CONFLICT"
	ErrCodeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
)

// RespondValidationFailed answers 400 with the validation error code.
func RespondValidationFailed(c *gin.Context, message string, details string) {
	RespondWithError(c, NewAPIError(http.StatusBadRequest, ErrCodeValidationFailed, message, details))
}

// RespondInternalError answers 500 without leaking the underlying error.
func RespondInternalError(c *gin.Context, message string) {
	RespondWithError(c, NewAPIError(http.StatusInternalServerError, ErrCodeInternalServerError, message, "Internal error"))
}
