package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError represents a structured error response from the trustgraph API.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	RequestID  string `json:"request_id,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("trustgraph: %d %s: %s (request_id=%s)", e.StatusCode, e.Code, e.Message, e.RequestID)
	}
	return fmt.Sprintf("trustgraph: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// IsBadRequest returns true if the server rejected the query parameters.
func IsBadRequest(err error) bool {
	var e *APIError
	return errors.As(err, &e) && e.StatusCode == 400
}

// parseAPIError attempts to decode a JSON error body; falls back to raw text.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
		apiErr.Code = "unknown"
		apiErr.Message = string(body)
	}
	return apiErr
}
