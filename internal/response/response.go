// Package response defines the shared HTTP response envelope and error codes.
package response

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// Error codes shared between services and handlers
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeInternal      = "INTERNAL_ERROR"

	// Upload-specific codes
	ErrCodeInvalidFileType = "INVALID_FILE_TYPE"
	ErrCodeFileTooLarge    = "FILE_TOO_LARGE"
)

// AppError is an application error carrying a stable code for HTTP mapping
type AppError struct {
	Code    string
	Message string
	Details string

	// Fields maps field names to validation messages; set for validation
	// errors so the client receives a field-keyed error map.
	Fields map[string]string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// NewNotFoundError creates a NOT_FOUND AppError
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// NewValidationError creates a VALIDATION_ERROR AppError with a field-keyed
// error map
func NewValidationError(fields map[string]string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: "Validation failed",
		Fields:  fields,
	}
}

// NewFieldError creates a VALIDATION_ERROR AppError for a single field
func NewFieldError(field, message string) *AppError {
	return NewValidationError(map[string]string{field: message})
}

// ErrorDetail is the error body inside ErrorResponse
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// ErrorResponse is the envelope for error responses
type ErrorResponse struct {
	Error interface{} `json:"error"`
}

// SuccessResponse is the envelope for success responses
type SuccessResponse struct {
	Data interface{} `json:"data"`
}

// SendSuccess writes a success envelope
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{Data: data})
}

// SendError writes an error envelope
func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error: ErrorDetail{Code: code, Message: message},
	})
}

// SendValidationError writes a 400 error envelope with a field-keyed error map
func SendValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(400, ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrCodeValidation,
			Message: "Validation failed",
			Errors:  fields,
		},
	})
}
