package api

import (
	"errors"
	"fmt"
	"strings"

	"carfleet/internal/jsonutil"
)

// ErrInvalidResponse is the cause of an *Error whose body did not match the
// endpoint's response schema.
var ErrInvalidResponse = errors.New("invalid response body")

// ErrUnexpectedStatus is the cause of an *Error for non-2xx responses.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Error is returned by every Client operation that fails.
type Error struct {
	Endpoint   string
	StatusCode int    // 0 when the request never got a response
	Message    string // server-provided message, if any
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Endpoint)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// MessageOr returns the server message carried by err, or fallback when
// there is none.
func MessageOr(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// extractMessage reads a human message from an error payload. Spring
// handlers answer {"message": ...}; FastAPI answers {"detail": "..."} or a
// list of {"msg": ...} for validation failures.
func extractMessage(body []byte) string {
	var payload map[string]interface{}
	if err := jsonutil.UnmarshalWithContext(body, &payload, "error payload"); err != nil {
		return ""
	}
	if msg := jsonutil.GetString(payload, "detail"); msg != "" {
		return msg
	}
	if msg := jsonutil.GetString(payload, "message"); msg != "" {
		return msg
	}
	return strings.Join(jsonutil.CollectStrings(payload["detail"], "msg"), "; ")
}
