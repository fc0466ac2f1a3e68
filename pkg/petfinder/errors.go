package petfinder

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrCredentialsRequired = errors.New("API key and secret are required")
)

// Violation records a single failed filter dimension together with the
// human-readable message describing the offending values and the
// accepted set.
type Violation struct {
	Dimension string
	Message   string
}

// ValidationError aggregates every filter violation found during a
// validation pass, in the order the dimensions were checked. It is
// raised before any request is sent.
type ValidationError struct {
	Violations []Violation
}

// Error implements the error interface. Each per-dimension message is
// terminated by a newline, in check order.
func (e *ValidationError) Error() string {
	var builder strings.Builder
	for _, v := range e.Violations {
		builder.WriteString(v.Message)
		builder.WriteString("\n")
	}

	return builder.String()
}

// Dimension returns the message recorded for the given dimension, if any.
func (e *ValidationError) Dimension(name string) (string, bool) {
	for _, v := range e.Violations {
		if v.Dimension == name {
			return v.Message, true
		}
	}

	return "", false
}

// ArgumentError reports a filter argument whose shape is unsupported,
// such as a collection containing empty tokens or a negative page count.
type ArgumentError struct {
	Argument string
	Reason   string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s argument: %s", e.Argument, e.Reason)
}

// InvalidParam describes one query parameter the API rejected.
type InvalidParam struct {
	In      string `json:"in"      yaml:"in"`
	Path    string `json:"path"    yaml:"path"`
	Message string `json:"message" yaml:"message"`
}

// APIError represents a non-2xx response from the pet adoption API.
// InvalidParams is populated on 400 responses from the API's
// invalid-params detail block.
type APIError struct {
	StatusCode    int
	Title         string
	Detail        string
	InvalidParams []InvalidParam
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (status: %d)", e.Title, e.Detail, e.StatusCode)
	}

	return fmt.Sprintf("%s (status: %d)", e.Title, e.StatusCode)
}

// IsValidation checks if the error is a pre-request validation error.
func IsValidation(err error) bool {
	validationErr := &ValidationError{}

	return errors.As(err, &validationErr)
}

// IsInvalidParameters checks if the error is a 400 invalid-parameters
// rejection from the API.
func IsInvalidParameters(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusBadRequest
	}

	return false
}

// IsUnauthorized checks if the error is a 401 invalid-credentials error.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsForbidden checks if the error is a 403 insufficient-access error.
func IsForbidden(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusForbidden
	}

	return false
}

// IsNotFound checks if the error is a 404 resource-not-found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}
