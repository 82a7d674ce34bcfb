package airtable

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/airtable-client/internal/constants"
)

// APIError is a failure response from the API: a valid HTTP response with a
// non-success status. Type and Message mirror the wire payload.
type APIError struct {
	Status  int    `json:"-"       yaml:"-"`
	Type    string `json:"type"    yaml:"type"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("API error %d (%s): %s", e.Status, e.Type, e.Message)
	}

	return fmt.Sprintf("API error %d: %s", e.Status, e.Message)
}

// errorEnvelope is the wire shape of an error response.
type errorEnvelope struct {
	Error APIError `json:"error"`
}

// ParseAPIError builds an APIError from a failure response body. Bodies that
// do not match the documented envelope degrade to a generic message carrying
// the status code.
func ParseAPIError(status int, body []byte) *APIError {
	var envelope errorEnvelope

	err := json.Unmarshal(body, &envelope)
	if err != nil || envelope.Error.Message == "" {
		return &APIError{Status: status, Message: fmt.Sprintf("HTTP %d", status)}
	}

	envelope.Error.Status = status

	return &envelope.Error
}

// BatchSizeError reports a batch whose size violates the API bounds. It is
// raised locally, before any network call.
type BatchSizeError struct {
	Size int
}

// Error implements the error interface.
func (e *BatchSizeError) Error() string {
	return fmt.Sprintf("invalid batch of %d records: batches must contain between 1 and %d records",
		e.Size, constants.MaxBatchSize)
}

// Static errors raised before any network I/O.
var (
	ErrConfigRequired    = errors.New("config is required")
	ErrAPIKeyRequired    = errors.New("API key is required")
	ErrBaseIDRequired    = errors.New("base ID is required")
	ErrTableNameRequired = errors.New("table name is required")
)

// ErrRecordNotFound is returned when a lookup that requires a record found
// none, e.g. First on a query with zero matches.
var ErrRecordNotFound = errors.New("record not found")

// ErrIteratorDone is returned by PageIterator.Next after exhaustion.
var ErrIteratorDone = errors.New("iterator is exhausted")

// IsNotFound checks if the error is a 404 API error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusNotFound
	}

	return errors.Is(err, ErrRecordNotFound)
}

// IsUnauthorized checks if the error is a 401 API error.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized
	}

	return false
}

// IsRateLimited checks if the error is a 429 API error. The transport has
// already exhausted its read-side retries by the time callers see this.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusTooManyRequests
	}

	return false
}
