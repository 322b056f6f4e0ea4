package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Input Validation (VAL) ----

// Validation reports malformed or missing required input.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Catalog Business Logic (CAT) ----

// ErrNotFound reports an operation addressed to a nonexistent merchant or
// offer id.
func ErrNotFound(entity string) *AppError {
	return New("CAT_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ErrUnknownMerchant reports an offer create naming a merchant id that does
// not resolve to an existing merchant.
func ErrUnknownMerchant(merchantID string) *AppError {
	return New("CAT_002", fmt.Sprintf("merchant %q does not exist", merchantID), http.StatusUnprocessableEntity)
}

// ErrMerchantNameExists reports a merchant name collision on add or rename.
func ErrMerchantNameExists(name string) *AppError {
	return New("CAT_003", fmt.Sprintf("merchant with name %q already exists", name), http.StatusConflict)
}

// ---- Security (SEC) ----

func ErrInvalidSignature() *AppError {
	return New("SEC_001", "Invalid signature", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

// ErrStorage wraps a failure to read or write a backing table.
func ErrStorage(err error) *AppError {
	return Wrap("SYS_001", "Storage error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
