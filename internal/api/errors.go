package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody bounds how much of an error response body is read when
// extracting a message.
const maxErrorBody = 64 << 10

const genericErrorMessage = "request failed"

// AuthError is returned when credentials are rejected or a request
// stays unauthorized after the refresh-and-retry path.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// APIError is any non-2xx response other than the handled 401 path. It
// carries the server-provided message when one was present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// NetworkError is returned when a request could not be sent or its
// response could not be received.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// errorMessage extracts a human-readable message from an error body.
// The backend reports under "detail" or "message"; absence of both
// yields a generic fallback.
func errorMessage(body []byte) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Detail != "" {
			return payload.Detail
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return genericErrorMessage
}

// errorFromResponse drains resp and converts it to the typed error for
// its status. The response body is consumed.
func errorFromResponse(resp *http.Response) error {
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := errorMessage(body)

	if resp.StatusCode == http.StatusUnauthorized {
		return &AuthError{Message: msg}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
