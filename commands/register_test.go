package commands

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/doctalk/doctalk-cli/config"
	"github.com/doctalk/doctalk-cli/models"
)

func newTestRunner(t *testing.T, serverURL string, demoFallback bool) (*Runner, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{
		APIBaseURL:     serverURL,
		RequestTimeout: 5,
		StateDir:       t.TempDir(),
		DemoFallback:   demoFallback,
		DoctorsTTL:     300,
		ChatRPS:        100,
	}
	var out bytes.Buffer
	return NewRunner(cfg, strings.NewReader(""), &out), &out
}

func validRegistration() *models.RegisterRequest {
	return &models.RegisterRequest{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Age:             25,
		Weight:          70,
	}
}

func TestRegister_PasswordMismatch(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	runner, _ := newTestRunner(t, server.URL, true)

	req := validRegistration()
	req.ConfirmPassword = "different"

	err := runner.Register(context.Background(), req)
	if err == nil || !strings.Contains(err.Error(), "passwords do not match") {
		t.Fatalf("Expected mismatch error, got %v", err)
	}
	if n := requests.Load(); n != 0 {
		t.Errorf("Expected no network call for local validation failure, got %d", n)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	runner, _ := newTestRunner(t, "http://unused.invalid", true)

	req := validRegistration()
	req.Username = ""

	if err := runner.Register(context.Background(), req); err == nil {
		t.Error("Expected error for missing username")
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"username":["A user with that username already exists."]}`))
	}))
	defer server.Close()

	runner, _ := newTestRunner(t, server.URL, true)

	err := runner.Register(context.Background(), validRegistration())
	if err == nil || err.Error() != "username already exists" {
		t.Fatalf("Expected duplicate-username error, got %v", err)
	}
}

func TestRegister_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/register/" || r.Method != "POST" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"User registered successfully"}`))
	}))
	defer server.Close()

	runner, _ := newTestRunner(t, server.URL, true)

	if err := runner.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}
