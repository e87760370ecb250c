package authres

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeInvalidRequest           ErrorCode = "invalid_request"
	ErrorCodeUnauthorizedClient       ErrorCode = "unauthorized_client"
	ErrorCodeAccessDenied             ErrorCode = "access_denied"
	ErrorCodeUnsupportedResponseType  ErrorCode = "unsupported_response_type"
	ErrorCodeInvalidScope             ErrorCode = "invalid_scope"
	ErrorCodeServerError              ErrorCode = "server_error"
	ErrorCodeTemporarilyUnavailable   ErrorCode = "temporarily_unavailable"
	ErrorCodeInteractionRequired      ErrorCode = "interaction_required"
	ErrorCodeLoginRequired            ErrorCode = "login_required"
	ErrorCodeAccountSelectionRequired ErrorCode = "account_selection_required"
	ErrorCodeConsentRequired          ErrorCode = "consent_required"
	ErrorCodeInvalidRequestURI        ErrorCode = "invalid_request_uri"
	ErrorCodeInvalidRequestObject     ErrorCode = "invalid_request_object"
	ErrorCodeRequestNotSupported      ErrorCode = "request_not_supported"
	ErrorCodeRequestURINotSupported   ErrorCode = "request_uri_not_supported"
	ErrorCodeRegistrationNotSupported ErrorCode = "registration_not_supported"
)

func (c ErrorCode) StatusCode() int {
	switch c {
	case ErrorCodeAccessDenied:
		return http.StatusForbidden
	case ErrorCodeServerError:
		return http.StatusInternalServerError
	case ErrorCodeTemporarilyUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

// Error is the wire level authorization error carried by a Result and
// delivered to clients as the error and error_description parameters.
type Error struct {
	Code        ErrorCode `json:"error,omitempty"`
	Description string    `json:"error_description,omitempty"`
}

func NewError(code ErrorCode, desc string) *Error {
	return &Error{
		Code:        code,
		Description: desc,
	}
}

func (err Error) Error() string {
	return fmt.Sprintf("%s %s", err.Code, err.Description)
}

// ErrStoreUnavailable indicates that the error context store could not
// persist or load a record. Store implementations wrap backend failures
// with it so that callers can test for it with errors.Is.
var ErrStoreUnavailable = errors.New("error context store unavailable")

// UnsupportedResponseModeError indicates that a result carries a response
// mode the engine cannot deliver. It is a server fault, not something the
// client can be redirected with.
type UnsupportedResponseModeError struct {
	Mode ResponseMode
}

func (err UnsupportedResponseModeError) Error() string {
	return fmt.Sprintf("unsupported response mode %q", err.Mode)
}

// AugmentationError aborts a dispatch when one of the registered response
// augmenters fails. It identifies the augmenter and wraps its error.
type AugmentationError struct {
	AugmenterID string
	wrapped     error
}

func NewAugmentationError(augmenterID string, err error) AugmentationError {
	return AugmentationError{
		AugmenterID: augmenterID,
		wrapped:     err,
	}
}

func (err AugmentationError) Error() string {
	return fmt.Sprintf("augmenter %s failed: %v", err.AugmenterID, err.wrapped)
}

func (err AugmentationError) Unwrap() error {
	return err.wrapped
}
