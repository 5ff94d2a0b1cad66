// ABOUTME: Profile view and edit commands
// ABOUTME: Shows the health profile and PATCHes an edited form buffer

package commands

import (
	"context"
	"fmt"

	"github.com/doctalk/doctalk-cli/models"
)

func (r *Runner) showProfile(ctx context.Context) error {
	user, err := r.client.GetProfile(ctx)
	if err != nil {
		return err
	}
	renderProfile(r, user)
	return nil
}

func renderProfile(r *Runner, user *models.UserProfile) {
	fmt.Fprintf(r.out, "%s <%s>\n", user.Username, user.Email)
	p := user.Profile
	if p == nil {
		fmt.Fprintln(r.out, "No health profile on record.")
		return
	}
	fmt.Fprintf(r.out, "  Mobile:        %s\n", orDash(p.MobileNumber))
	fmt.Fprintf(r.out, "  Age:           %d\n", p.Age)
	fmt.Fprintf(r.out, "  Weight:        %.1f kg\n", p.Weight)
	fmt.Fprintf(r.out, "  Gender:        %s\n", orDash(p.Gender))
	fmt.Fprintf(r.out, "  Blood group:   %s\n", orDash(p.BloodGroup))
	fmt.Fprintf(r.out, "  Diabetes:      %s\n", yesNo(p.HasDiabetes))
	fmt.Fprintf(r.out, "  Blood pressure: %s\n", yesNo(p.HasBloodPressure))
	fmt.Fprintf(r.out, "  Cancer history: %s\n", yesNo(p.HasCancer))
	if p.AnyHarmfulDisease != "" {
		fmt.Fprintf(r.out, "  Other diseases: %s\n", p.AnyHarmfulDisease)
	}
	if p.MedicalHistory != "" {
		fmt.Fprintf(r.out, "  History:        %s\n", p.MedicalHistory)
	}
}

// updateProfileFlow edits a local buffer seeded from the current profile and
// PATCHes only what the user touched.
func (r *Runner) updateProfileFlow(ctx context.Context) error {
	user, err := r.client.GetProfile(ctx)
	if err != nil {
		return err
	}
	current := user.Profile
	if current == nil {
		current = &models.PatientProfile{}
	}

	fmt.Fprintln(r.out, "Update profile (enter to keep the current value)")

	patch := map[string]any{}
	if v := r.promptDefault("Mobile number", current.MobileNumber); v != current.MobileNumber {
		patch["mobile_number"] = v
	}
	if v := r.promptInt(fmt.Sprintf("Age [%d]", current.Age), current.Age); v != current.Age {
		patch["age"] = v
	}
	if v := r.promptFloat(fmt.Sprintf("Weight (kg) [%.1f]", current.Weight), current.Weight); v != current.Weight {
		patch["weight"] = v
	}
	if v := r.promptDefault("Blood group", current.BloodGroup); v != current.BloodGroup {
		patch["blood_group"] = v
	}
	if v := r.promptBool("Diabetes", current.HasDiabetes); v != current.HasDiabetes {
		patch["has_diabetes"] = v
	}
	if v := r.promptBool("Blood pressure", current.HasBloodPressure); v != current.HasBloodPressure {
		patch["has_blood_pressure"] = v
	}
	if v := r.promptBool("Cancer history", current.HasCancer); v != current.HasCancer {
		patch["has_cancer"] = v
	}
	if v := r.promptDefault("Other chronic diseases", current.AnyHarmfulDisease); v != current.AnyHarmfulDisease {
		patch["any_harmful_disease"] = v
	}

	if len(patch) == 0 {
		fmt.Fprintln(r.out, "Nothing changed.")
		return nil
	}

	updated, err := r.client.UpdateProfile(ctx, patch)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, "Profile updated successfully!")
	renderProfile(r, updated)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
