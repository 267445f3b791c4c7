package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Kind classifies a failed call
type Kind int

const (
	KindNetwork Kind = iota
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindValidation
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not found"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	default:
		return "network"
	}
}

// Error is returned for every failed API call. StatusCode is zero for
// transport failures.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (%d)", e.StatusCode)
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

func (e *Error) Unwrap() error { return e.Err }

// Is matches the kind sentinels below, so errors.Is(err, ErrNotFound) holds
// for any 404.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.StatusCode != 0 || t.Message != "" || t.Err != nil {
		return false
	}
	return t.Kind == e.Kind
}

// Kind sentinels for errors.Is
var (
	ErrNetwork        = &Error{Kind: KindNetwork}
	ErrAuthentication = &Error{Kind: KindAuthentication}
	ErrAuthorization  = &Error{Kind: KindAuthorization}
	ErrNotFound       = &Error{Kind: KindNotFound}
	ErrValidation     = &Error{Kind: KindValidation}
	ErrConflict       = &Error{Kind: KindConflict}
)

// ErrSessionExpired is returned when a 401 could not be recovered by
// refreshing the access token. The stored tokens have been cleared.
var ErrSessionExpired = &Error{Kind: KindAuthentication, Message: "session expired, log in again"}

// KindOf returns the kind of err, KindNetwork when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNetwork
}

func kindForStatus(status int) Kind {
	switch status {
	case http.StatusBadRequest:
		return KindValidation
	case http.StatusUnauthorized:
		return KindAuthentication
	case http.StatusForbidden:
		return KindAuthorization
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	default:
		return KindNetwork
	}
}

// errorFromResponse builds an *Error from a non-2xx body. It understands
// {"detail": "..."} and field error maps such as {"nome": ["required"]}.
func errorFromResponse(status int, body []byte) *Error {
	return &Error{Kind: kindForStatus(status), StatusCode: status, Message: extractMessage(status, body)}
}

func extractMessage(status int, body []byte) string {
	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
		return detail.Detail
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err == nil && len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			var msgs []string
			if err := json.Unmarshal(fields[k], &msgs); err == nil {
				parts = append(parts, k+": "+strings.Join(msgs, " "))
				continue
			}
			var msg string
			if err := json.Unmarshal(fields[k], &msg); err == nil {
				parts = append(parts, k+": "+msg)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, "; ")
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" && len(text) < 200 {
		return text
	}
	return http.StatusText(status)
}
