// Package errors provides the structured error type shared by the onboarding
// pipeline and the signup API. Every failure that crosses a package boundary
// is an *AppError so callers can branch on Code and render Fields without
// parsing messages.
package errors

import "net/http"

// FieldError is a single per-field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, optional per-field failures and
// an optional internal error.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	Fields     []FieldError `json:"fields,omitempty"`
	StatusCode int          `json:"-"`
	Internal   error        `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an *AppError with the same code, so sentinels
// keep matching after Wrap or WithMessage.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// FieldMessage returns the message recorded for field, or "".
func (e *AppError) FieldMessage(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Fields:     sentinel.Fields,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		Fields:     sentinel.Fields,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Validation builds a VALIDATION_FAILED error carrying every failed field.
func Validation(fields []FieldError) *AppError {
	return &AppError{
		Code:       ErrValidation.Code,
		Message:    ErrValidation.Message,
		Fields:     fields,
		StatusCode: ErrValidation.StatusCode,
	}
}

// Persistence builds a PERSISTENCE_FAILED error whose message is the remote
// failure text, unchanged.
func Persistence(message string, internal error) *AppError {
	return &AppError{
		Code:       ErrPersistence.Code,
		Message:    message,
		StatusCode: ErrPersistence.StatusCode,
		Internal:   internal,
	}
}

// Onboarding errors.
var (
	ErrValidation      = &AppError{Code: "VALIDATION_FAILED", Message: "Some fields need your attention", StatusCode: http.StatusBadRequest}
	ErrConsentRequired = &AppError{
		Code:       "CONSENT_REQUIRED",
		Message:    "consent required",
		Fields:     []FieldError{{Field: "consent", Message: "consent required"}},
		StatusCode: http.StatusBadRequest,
	}
	ErrPersistence = &AppError{Code: "PERSISTENCE_FAILED", Message: "Signup failed", StatusCode: http.StatusBadGateway}
	ErrTimeout     = &AppError{Code: "TIMEOUT", Message: "The request timed out", StatusCode: http.StatusGatewayTimeout}
	ErrInvalidStep = &AppError{Code: "INVALID_STEP", Message: "This step is not available yet", StatusCode: http.StatusConflict}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Account errors.
var (
	ErrAccountNotFound   = &AppError{Code: "ACCOUNT_NOT_FOUND", Message: "Account not found", StatusCode: http.StatusNotFound}
	ErrDuplicateAccount  = &AppError{Code: "DUPLICATE_ACCOUNT", Message: "An account with this email or phone already exists", StatusCode: http.StatusConflict}
	ErrAccountIncomplete = &AppError{Code: "INVALID_INPUT", Message: "Either email or phone is required", StatusCode: http.StatusBadRequest}
	ErrAccountCreation   = &AppError{Code: "INTERNAL_ERROR", Message: "User creation failed", StatusCode: http.StatusInternalServerError}
)
