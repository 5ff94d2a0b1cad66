package commands

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/doctalk/doctalk-cli/models"
)

func TestCheckSymptoms_Backend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"disease_name":"Influenza","match_score":72,"severity":"Medium","recommendation":"Rest and fluids","specialist":"General Physician"}]}`))
	}))
	defer server.Close()

	runner, _ := newTestRunner(t, server.URL, true)

	results, demo := runner.checkSymptoms(context.Background(), models.SymptomCheckRequest{
		Symptoms: []string{"fever"},
		Age:      25,
	})
	if demo {
		t.Error("Expected real results, not demo")
	}
	if len(results) != 1 || results[0].DiseaseName != "Influenza" {
		t.Fatalf("Unexpected results %+v", results)
	}
}

func TestCheckSymptoms_FallbackOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	runner, _ := newTestRunner(t, server.URL, true)

	results, demo := runner.checkSymptoms(context.Background(), models.SymptomCheckRequest{
		Symptoms: []string{"fever"},
		Age:      25,
	})
	if !demo {
		t.Error("Expected demo substitution")
	}
	if len(results) != 1 || results[0].DiseaseName != "Viral Fever (Demo)" {
		t.Fatalf("Expected demo candidate, got %+v", results)
	}
}

func TestCheckSymptoms_FallbackDisabled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	runner, _ := newTestRunner(t, server.URL, false)

	results, demo := runner.checkSymptoms(context.Background(), models.SymptomCheckRequest{
		Symptoms: []string{"fever"},
		Age:      25,
	})
	if results != nil || demo {
		t.Errorf("Expected unmasked failure, got results=%v demo=%v", results, demo)
	}
}

func TestRenderCandidates(t *testing.T) {
	runner, out := newTestRunner(t, "http://unused.invalid", true)

	renderCandidates(runner, []models.CandidateCondition{{
		DiseaseName:         "Influenza",
		MatchScore:          72,
		Severity:            "Medium",
		Recommendation:      "Rest and fluids",
		Specialist:          "General Physician",
		AllopathicMedicines: []string{"Oseltamivir"},
		HomeRemedies:        []string{"Ginger Tea"},
	}})

	for _, want := range []string{"Influenza", "Medium Severity | 72% Match", "General Physician", "Oseltamivir", "Ginger Tea", "Disclaimer"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out.String())
		}
	}
}

func TestSplitSymptoms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "fever, cough", []string{"fever", "cough"}},
		{"extra whitespace", "  fever ,  cough  ", []string{"fever", "cough"}},
		{"empty segments", "fever,,cough,", []string{"fever", "cough"}},
		{"order preserved", "headache, fever, cough", []string{"headache", "fever", "cough"}},
		{"empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitSymptoms(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitSymptoms(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
