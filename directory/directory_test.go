package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/doctalk/doctalk-cli/api"
)

const rosterJSON = `[{"id":1,"user":{"first_name":"Sarah","last_name":"Johnson"},"specialization":"Cardiologist","experience_years":12,"hospital_affiliation":"City Heart Center","consultation_fee":1500,"rating":4.8}]`

func newTestDirectory(t *testing.T, handler http.HandlerFunc, fallback bool) (*Directory, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := api.New(server.URL, 5*time.Second, 100)
	return New(client, time.Minute, fallback), server
}

func TestDoctors_Backend(t *testing.T) {
	dir, _ := newTestDirectory(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(rosterJSON))
	}, true)

	doctors, demo, err := dir.Doctors(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if demo {
		t.Error("Expected backend data, not demo")
	}
	if len(doctors) != 1 || doctors[0].Specialization != "Cardiologist" {
		t.Errorf("Unexpected doctors %+v", doctors)
	}
}

func TestDoctors_Cached(t *testing.T) {
	var requests atomic.Int64
	dir, _ := newTestDirectory(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(rosterJSON))
	}, true)

	if _, _, err := dir.Doctors(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, _, err := dir.Doctors(context.Background()); err != nil {
		t.Fatal(err)
	}
	if n := requests.Load(); n != 1 {
		t.Errorf("Expected one backend call, got %d", n)
	}
}

func TestDoctors_FallbackOnError(t *testing.T) {
	dir, _ := newTestDirectory(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, true)

	doctors, demo, err := dir.Doctors(context.Background())
	if err != nil {
		t.Fatalf("Expected fallback, got error %v", err)
	}
	if !demo {
		t.Error("Expected demo roster")
	}
	if len(doctors) == 0 || doctors[0].User.LastName != "Johnson" {
		t.Errorf("Unexpected demo roster %+v", doctors)
	}
}

func TestDoctors_FallbackOnEmptyList(t *testing.T) {
	dir, _ := newTestDirectory(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}, true)

	doctors, demo, err := dir.Doctors(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !demo || len(doctors) == 0 {
		t.Errorf("Expected demo roster for empty listing, got demo=%v doctors=%v", demo, doctors)
	}
}

func TestDoctors_ErrorWhenFallbackDisabled(t *testing.T) {
	dir, _ := newTestDirectory(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, false)

	doctors, demo, err := dir.Doctors(context.Background())
	if err == nil {
		t.Fatal("Expected error")
	}
	if demo || doctors != nil {
		t.Errorf("Expected bare failure, got demo=%v doctors=%v", demo, doctors)
	}
}
