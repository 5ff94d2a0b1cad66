// ABOUTME: Error type surfaced by the API layer
// ABOUTME: Parses detail and per-field validation messages from backend error bodies

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// Error is a non-2xx backend response. Fields holds validation messages keyed
// by form field (e.g. "username" -> ["A user with that username already exists."]).
type Error struct {
	Status int
	Detail string
	Fields map[string][]string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Detail)
	}
	if len(e.Fields) > 0 {
		var parts []string
		for field, msgs := range e.Fields {
			parts = append(parts, field+": "+strings.Join(msgs, "; "))
		}
		return fmt.Sprintf("backend returned %d: %s", e.Status, strings.Join(parts, ", "))
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

// HasField reports whether the backend rejected a specific field.
func (e *Error) HasField(name string) bool {
	_, ok := e.Fields[name]
	return ok
}

// IsUnauthorized reports whether err is a 401 response, i.e. the session is
// invalid or expired.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// parseError builds an *Error from a non-2xx response. The backend emits
// error bodies in several shapes ({"detail": ...}, {"error": ...}, or a
// field -> [messages] map), so extraction is tolerant.
func parseError(resp *http.Response) *Error {
	apiErr := &Error{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil || len(body) == 0 {
		apiErr.Detail = http.StatusText(resp.StatusCode)
		return apiErr
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		// Plain-text bodies from proxies and gateways land here.
		apiErr.Detail = strings.TrimSpace(parsed.String())
		if apiErr.Detail == "" {
			apiErr.Detail = strings.TrimSpace(string(body))
		}
		return apiErr
	}

	parsed.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		switch {
		case name == "detail" || name == "error":
			apiErr.Detail = value.String()
		case value.IsArray():
			var msgs []string
			for _, item := range value.Array() {
				msgs = append(msgs, item.String())
			}
			addField(apiErr, name, msgs)
		case value.Type == gjson.String:
			addField(apiErr, name, []string{value.String()})
		}
		return true
	})

	if apiErr.Detail == "" && len(apiErr.Fields) == 0 {
		apiErr.Detail = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

func addField(e *Error, name string, msgs []string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[name] = append(e.Fields[name], msgs...)
}
