package api

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

func errResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
		wantField  string
	}{
		{
			name:       "detail message",
			status:     401,
			body:       `{"detail":"Given token not valid for any token type"}`,
			wantDetail: "Given token not valid for any token type",
		},
		{
			name:       "error key",
			status:     400,
			body:       `{"error":"No symptoms provided"}`,
			wantDetail: "No symptoms provided",
		},
		{
			name:      "field errors",
			status:    400,
			body:      `{"username":["A user with that username already exists."],"email":["Enter a valid email address."]}`,
			wantField: "username",
		},
		{
			name:       "empty body",
			status:     500,
			body:       "",
			wantDetail: "Internal Server Error",
		},
		{
			name:       "non-json body",
			status:     502,
			body:       "Bad Gateway",
			wantDetail: "Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := parseError(errResponse(tt.status, tt.body))
			if apiErr.Status != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, apiErr.Status)
			}
			if tt.wantDetail != "" && apiErr.Detail != tt.wantDetail {
				t.Errorf("Expected detail %q, got %q", tt.wantDetail, apiErr.Detail)
			}
			if tt.wantField != "" && !apiErr.HasField(tt.wantField) {
				t.Errorf("Expected field error for %q in %v", tt.wantField, apiErr.Fields)
			}
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	if !IsUnauthorized(&Error{Status: 401}) {
		t.Error("Expected 401 to be unauthorized")
	}
	if IsUnauthorized(&Error{Status: 400}) {
		t.Error("Expected 400 not to be unauthorized")
	}
	if IsUnauthorized(io.EOF) {
		t.Error("Expected plain error not to be unauthorized")
	}
}

func TestError_Message(t *testing.T) {
	e := &Error{Status: 400, Fields: map[string][]string{"username": {"already exists"}}}
	if !strings.Contains(e.Error(), "username") {
		t.Errorf("Expected field name in message, got %q", e.Error())
	}
}
