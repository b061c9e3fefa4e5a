// Package errors defines typed errors for upstream API failures.
// CatalogError classifies failures so callers can degrade to an empty
// catalog instead of failing the request.
package errors

import "fmt"

// CatalogError represents errors raised while assembling catalog data.
type CatalogError struct {
	Type    string
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// Error type constants.
const (
	ErrorTypeUpstreamFailure      = "UPSTREAM_FAILURE"
	ErrorTypeProtocol             = "PROTOCOL_ERROR"
	ErrorTypeNotFound             = "NOT_FOUND"
	ErrorTypeConfigurationInvalid = "CONFIGURATION_INVALID"
)

// NewUpstreamError wraps a transient upstream failure (network error,
// timeout, 5xx). Callers treat it as "no data" for that call.
func NewUpstreamError(message string, cause error) *CatalogError {
	return &CatalogError{Type: ErrorTypeUpstreamFailure, Message: message, Cause: cause}
}

// NewProtocolError wraps a malformed or erroring API response outside
// the tolerated allowlist. Fatal for the call that raised it.
func NewProtocolError(message string, cause error) *CatalogError {
	return &CatalogError{Type: ErrorTypeProtocol, Message: message, Cause: cause}
}

// NewNotFoundError records an identifier the upstream no longer knows.
func NewNotFoundError(id string) *CatalogError {
	return &CatalogError{Type: ErrorTypeNotFound, Message: fmt.Sprintf("identifier not found: %s", id)}
}

// NewConfigurationError wraps an invalid addon configuration.
func NewConfigurationError(message string, cause error) *CatalogError {
	return &CatalogError{Type: ErrorTypeConfigurationInvalid, Message: message, Cause: cause}
}
