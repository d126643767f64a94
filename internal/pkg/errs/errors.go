package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies the class of failure surfaced to API clients.
type Kind string

const (
	KindValidation     Kind = "ValidationException"
	KindBadRequest     Kind = "BadRequest"
	KindExpiredToken   Kind = "ExpiredToken"
	KindUnauthorized   Kind = "Unauthorized"
	KindForbidden      Kind = "Forbidden"
	KindNotFound       Kind = "NotFound"
	KindResourceExists Kind = "ResourceExists"
	KindIAM            Kind = "IAMError"
	KindOperation      Kind = "OperationError"
	KindInternal       Kind = "InternalServerError"
)

// AppError is the typed error carried between the core and the HTTP boundary.
// Status is only set explicitly for IAM errors, which forward the upstream
// status code; every other kind maps to a fixed status.
type AppError struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the status code the boundary should render.
func (e *AppError) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	switch e.Kind {
	case KindValidation, KindBadRequest, KindExpiredToken:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindResourceExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Validation reports an input-shape violation.
func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

// BadRequest reports semantically invalid input or a malformed transition.
func BadRequest(message string) *AppError {
	return &AppError{Kind: KindBadRequest, Message: message}
}

// ExpiredToken reports a token that is expired or already consumed.
func ExpiredToken(message string) *AppError {
	return &AppError{Kind: KindExpiredToken, Message: message}
}

// Unauthorized reports a missing or invalid bearer credential.
func Unauthorized(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

// Forbidden reports an authenticated principal acting outside its own
// resources.
func Forbidden(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

// NotFound reports an absent principal or resource.
func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

// ResourceExists reports a uniqueness conflict.
func ResourceExists(message string) *AppError {
	return &AppError{Kind: KindResourceExists, Message: message}
}

// IAM wraps a non-2xx response from the identity service, forwarding the
// upstream status code.
func IAM(status int, message string) *AppError {
	return &AppError{Kind: KindIAM, Status: status, Message: message}
}

// Operation wraps an unclassified failure (database, messaging, crypto).
func Operation(message string, err error) *AppError {
	return &AppError{Kind: KindOperation, Message: message, Err: err}
}

// Internal is the last-resort error.
func Internal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// As extracts an *AppError from an error chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	if appErr, ok := As(err); ok {
		return appErr.Kind == kind
	}
	return false
}
