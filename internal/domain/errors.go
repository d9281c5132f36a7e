package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes classifying every failure the gateway can produce.
const (
	CodeValidation    = 1 // caller omitted or malformed a required input
	CodeNotFound      = 2 // a lookup resolved to zero results
	CodeNetwork       = 3 // no response received from the remote host
	CodeUpstream      = 4 // a provider answered with a non-2xx status
	CodeSchema        = 5 // a provider body did not match its documented shape
	CodeConfiguration = 6 // a required provider credential is not configured
)

// AppError is the single error type that crosses package boundaries.
// Status carries the HTTP status associated with the failure; for upstream
// errors it is the provider's original status code.
type AppError struct {
	Code    int    `json:"code"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidation reports a bad caller input, surfaced before any network call.
func NewValidation(message string) *AppError {
	return &AppError{Code: CodeValidation, Status: http.StatusBadRequest, Message: message}
}

// NewNotFound reports a lookup that resolved to zero results.
func NewNotFound(message string) *AppError {
	return &AppError{Code: CodeNotFound, Status: http.StatusNotFound, Message: message}
}

// NewNetwork wraps a transport-level failure. No HTTP status was received,
// so the synthetic status 500 is carried instead.
func NewNetwork(err error) *AppError {
	return &AppError{Code: CodeNetwork, Status: http.StatusInternalServerError, Message: "network error", Err: err}
}

// NewUpstream reports a non-2xx provider response, preserving its status.
func NewUpstream(status int, message string) *AppError {
	return &AppError{Code: CodeUpstream, Status: status, Message: message}
}

// NewSchema reports a provider body that could not be decoded into the
// expected shape.
func NewSchema(message string, err error) *AppError {
	return &AppError{Code: CodeSchema, Status: http.StatusBadGateway, Message: message, Err: err}
}

// NewConfiguration reports a missing server-side credential. Modeled as a
// 400 so the relay surface matches the original proxy contract.
func NewConfiguration(message string) *AppError {
	return &AppError{Code: CodeConfiguration, Status: http.StatusBadRequest, Message: message}
}

// IsValidation reports whether err is or wraps an AppError with CodeValidation.
func IsValidation(err error) bool { return hasCode(err, CodeValidation) }

// IsNotFound reports whether err is or wraps an AppError with CodeNotFound.
func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

// IsNetwork reports whether err is or wraps an AppError with CodeNetwork.
func IsNetwork(err error) bool { return hasCode(err, CodeNetwork) }

// IsUpstream reports whether err is or wraps an AppError with CodeUpstream.
func IsUpstream(err error) bool { return hasCode(err, CodeUpstream) }

// IsSchema reports whether err is or wraps an AppError with CodeSchema.
func IsSchema(err error) bool { return hasCode(err, CodeSchema) }

// IsConfiguration reports whether err is or wraps an AppError with CodeConfiguration.
func IsConfiguration(err error) bool { return hasCode(err, CodeConfiguration) }

func hasCode(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// UpstreamStatus returns the HTTP status carried by an upstream error, or 0
// when err is not an upstream failure.
func UpstreamStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code == CodeUpstream {
		return appErr.Status
	}
	return 0
}

// HTTPStatusCode maps an error to the HTTP status the server should answer
// with. Errors that are not *AppError map to 500.
func HTTPStatusCode(err error) int {
	var appErr *AppError
	if err != nil && errors.As(err, &appErr) {
		if appErr.Status != 0 {
			return appErr.Status
		}
	}
	return http.StatusInternalServerError
}

// Wrap annotates err with a message while keeping its classification intact.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Status:  appErr.Status,
			Message: fmt.Sprintf("%s: %s", message, appErr.Message),
			Err:     appErr.Err,
		}
	}
	return fmt.Errorf("%s: %w", message, err)
}
