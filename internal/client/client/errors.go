package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

// ValidationFallback is shown when the backend returns a validation array
// without any message.
const ValidationFallback = "Validation error on payload"

// APIError is a non-2xx backend response.
type APIError struct {
	StatusCode int
	// Message is the backend's detail text, empty when none was recognized.
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode >= http.StatusInternalServerError:
		return ErrUnavailable
	default:
		return nil
	}
}

// errorBody is the backend error envelope. Detail is either a string or an
// array of validation objects carrying msg.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type validationItem struct {
	Msg string `json:"msg"`
}

// detailMessage extracts the first usable message from an error body. The
// second result reports a validation array, which has its own fallback.
func detailMessage(body []byte) (msg string, isArray bool) {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return "", false
	}

	var s string
	if err := json.Unmarshal(eb.Detail, &s); err == nil {
		return s, false
	}

	var items []json.RawMessage
	if err := json.Unmarshal(eb.Detail, &items); err != nil {
		return "", false
	}
	if len(items) > 0 {
		var it validationItem
		if err := json.Unmarshal(items[0], &it); err == nil && it.Msg != "" {
			return it.Msg, true
		}
	}
	return ValidationFallback, true
}

func newAPIError(status int, body []byte) *APIError {
	msg, _ := detailMessage(body)
	return &APIError{StatusCode: status, Message: strings.TrimSpace(msg)}
}

// UserMessage returns the text to show for err: the backend's message when it
// sent one, otherwise fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
