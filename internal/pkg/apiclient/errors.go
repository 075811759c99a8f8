package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"sms-admin/internal/core/domain"
)

// Error is a non-2xx backend reply. The backend sends either
// {"message": "..."} or {"message": ["...", "..."]}.
type Error struct {
	StatusCode int
	Message    string
	Messages   []string
	Body       []byte
}

func newError(status int, body []byte) *Error {
	e := &Error{StatusCode: status, Body: body}

	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		var one string
		var many []string
		switch {
		case json.Unmarshal(payload.Message, &one) == nil:
			e.Message = one
		case json.Unmarshal(payload.Message, &many) == nil:
			e.Messages = many
			e.Message = strings.Join(many, ", ")
		}
		if e.Message == "" {
			e.Message = payload.Error
		}
	}
	return e
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap maps the status onto the domain sentinels so callers can use errors.Is
func (e *Error) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case e.StatusCode == http.StatusForbidden:
		return domain.ErrForbidden
	case e.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case e.StatusCode == http.StatusConflict:
		return domain.ErrConflict
	case e.StatusCode == http.StatusBadRequest, e.StatusCode == http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	default:
		return domain.ErrBackend
	}
}

// Messager is implemented by errors that carry user-facing text
type Messager interface {
	UserMessage() string
}

// UserMessage implements Messager
func (e *Error) UserMessage() string { return e.Message }

// MessageOf returns the text to show the user for err, or fallback when the
// error carries none.
func MessageOf(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var m Messager
	if errors.As(err, &m) {
		if msg := m.UserMessage(); msg != "" {
			return msg
		}
	}
	return fallback
}

// StatusOf returns the backend status code carried by err, or 0
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
