// Package errors defines custom error types for better error handling and debugging.
// APIError carries a kind that decides how a failure is reported to clients.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// APIError represents a classified failure
type APIError struct {
	Type    string
	Message string
	Cause   error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// Error type constants
const (
	ErrorTypeCollaboratorUnavailable = "COLLABORATOR_UNAVAILABLE"
	ErrorTypeNotFound                = "NOT_FOUND"
	ErrorTypeFetchFailure            = "FETCH_FAILURE"
	ErrorTypeParseFailure            = "PARSE_FAILURE"
	ErrorTypeInvalidRequest          = "INVALID_REQUEST"
	ErrorTypeUnexpected              = "UNEXPECTED"
)

// NewAPIError creates a new APIError
func NewAPIError(errorType, message string, cause error) *APIError {
	return &APIError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewUnavailableError reports that a remote service is missing or unreachable
func NewUnavailableError(service string, cause error) *APIError {
	return NewAPIError(ErrorTypeCollaboratorUnavailable, fmt.Sprintf("%s service not available", service), cause)
}

// NewNotFoundError reports that the requested item does not exist
func NewNotFoundError(what string) *APIError {
	return NewAPIError(ErrorTypeNotFound, fmt.Sprintf("%s not found", what), nil)
}

// NewFetchError wraps a failed page or API fetch
func NewFetchError(url string, cause error) *APIError {
	return NewAPIError(ErrorTypeFetchFailure, fmt.Sprintf("failed to fetch %s", url), cause)
}

// NewParseError wraps a response that could not be decoded
func NewParseError(what string, cause error) *APIError {
	return NewAPIError(ErrorTypeParseFailure, fmt.Sprintf("failed to parse %s", what), cause)
}

// NewInvalidRequestError reports bad client input
func NewInvalidRequestError(message string) *APIError {
	return NewAPIError(ErrorTypeInvalidRequest, message, nil)
}

// NewUnexpectedError wraps anything that has no better classification
func NewUnexpectedError(message string, cause error) *APIError {
	return NewAPIError(ErrorTypeUnexpected, message, cause)
}

// Kind returns the type of the first APIError in err's chain, or ErrorTypeUnexpected.
func Kind(err error) string {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.Type
	}
	return ErrorTypeUnexpected
}

// IsKind reports whether err carries the given error type.
func IsKind(err error, errorType string) bool {
	return err != nil && Kind(err) == errorType
}

// HTTPStatus maps an error to the status code returned to clients.
func HTTPStatus(err error) int {
	switch Kind(err) {
	case ErrorTypeCollaboratorUnavailable:
		return http.StatusServiceUnavailable
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the text a client may see. Internal failures get a generic message.
func PublicMessage(err error) string {
	var apiErr *APIError
	if !stderrors.As(err, &apiErr) {
		return "Internal server error"
	}
	switch apiErr.Type {
	case ErrorTypeCollaboratorUnavailable, ErrorTypeNotFound, ErrorTypeInvalidRequest:
		return apiErr.Message
	default:
		return "Internal server error"
	}
}
