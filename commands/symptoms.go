// ABOUTME: Stepped symptom checker command
// ABOUTME: Collects patient details, calls the inference backend, renders ranked candidates

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/doctalk/doctalk-cli/models"
)

func (r *Runner) symptomsFlow(ctx context.Context) error {
	fmt.Fprintln(r.out, "Who is this check for? [1] Myself  [2] Someone else")

	var req models.SymptomCheckRequest
	if r.prompt("Choice") != "2" {
		// Prefill from the stored profile; a failed fetch is not fatal,
		// the user just fills the fields in by hand.
		if user, err := r.client.GetProfile(ctx); err == nil && user.Profile != nil {
			req.Age = user.Profile.Age
			req.Weight = user.Profile.Weight
		}
	}

	req.Age = r.promptInt(fmt.Sprintf("Age [%d]", req.Age), req.Age)
	req.Weight = r.promptFloat(fmt.Sprintf("Weight (kg) [%.0f]", req.Weight), req.Weight)
	req.Symptoms = splitSymptoms(r.prompt("Symptoms (comma separated, e.g. fever, headache, cough)"))

	if len(req.Symptoms) == 0 {
		return fmt.Errorf("at least one symptom is required")
	}
	if req.Age == 0 {
		return fmt.Errorf("age is required")
	}

	fmt.Fprintln(r.out, "Dr. AI is analyzing your symptoms...")
	results, demo := r.checkSymptoms(ctx, req)
	if results == nil {
		return fmt.Errorf("symptom check failed and demo fallback is disabled")
	}
	if demo {
		fmt.Fprintln(r.out, "(backend unreachable, showing demo assessment)")
	}
	renderCandidates(r, results)
	return nil
}

// checkSymptoms calls the backend and substitutes the demo candidate on
// failure when fallback is enabled. A nil result means a real, unmasked error.
func (r *Runner) checkSymptoms(ctx context.Context, req models.SymptomCheckRequest) ([]models.CandidateCondition, bool) {
	results, err := r.client.CheckSymptoms(ctx, req)
	if err != nil {
		if !r.cfg.DemoFallback {
			return nil, false
		}
		return []models.CandidateCondition{models.DemoCandidate()}, true
	}
	return results, false
}

func renderCandidates(r *Runner, results []models.CandidateCondition) {
	fmt.Fprintln(r.out, "\nAnalysis Complete")
	for _, res := range results {
		fmt.Fprintf(r.out, "\n%s\n", res.DiseaseName)
		fmt.Fprintf(r.out, "  %s Severity | %.0f%% Match\n", res.Severity, res.MatchScore)
		fmt.Fprintf(r.out, "  Suggested specialist: %s\n", res.Specialist)
		fmt.Fprintf(r.out, "  Recommended action:   %s\n", res.Recommendation)
		if len(res.AllopathicMedicines) > 0 {
			fmt.Fprintf(r.out, "  Medicines:    %s\n", strings.Join(res.AllopathicMedicines, ", "))
		}
		if len(res.HomeRemedies) > 0 {
			fmt.Fprintf(r.out, "  Home remedies: %s\n", strings.Join(res.HomeRemedies, ", "))
		}
	}
	fmt.Fprintln(r.out, "\nDisclaimer: this is an AI-generated assessment, not a medical diagnosis. Please consult a certified doctor.")
}

// splitSymptoms turns "fever, cough" into an ordered list, preserving the
// order the user entered.
func splitSymptoms(input string) []string {
	var symptoms []string
	for _, s := range strings.Split(input, ",") {
		if s = strings.TrimSpace(s); s != "" {
			symptoms = append(symptoms, s)
		}
	}
	return symptoms
}
