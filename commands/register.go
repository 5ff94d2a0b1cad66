// ABOUTME: Account registration command
// ABOUTME: Two-step prompted form with local validation before any network call

package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/doctalk/doctalk-cli/api"
	"github.com/doctalk/doctalk-cli/models"
)

func (r *Runner) registerFlow(ctx context.Context) error {
	fmt.Fprintln(r.out, "Create your DocTalk account")
	fmt.Fprintln(r.out, "-- Step 1 of 2: Account --")

	req := &models.RegisterRequest{
		Username:        r.prompt("Username"),
		Email:           r.prompt("Email"),
		MobileNumber:    r.prompt("Phone number"),
		Password:        r.prompt("Password"),
		ConfirmPassword: r.prompt("Confirm password"),
	}

	fmt.Fprintln(r.out, "-- Step 2 of 2: Health profile --")
	req.Age = r.promptInt("Age", 0)
	req.Weight = r.promptFloat("Weight (kg)", 0)
	req.Gender = r.promptDefault("Gender (Male/Female/Other)", "")
	req.BloodGroup = r.promptDefault("Blood group", "")
	req.HasDiabetes = r.promptBool("Diabetes", false)
	req.HasBloodPressure = r.promptBool("Blood pressure", false)
	req.HasCancer = r.promptBool("Cancer history", false)
	req.AnyHarmfulDisease = r.prompt("Other chronic diseases")
	req.MedicalHistory = r.prompt("Medical history")

	if err := r.Register(ctx, req); err != nil {
		return err
	}

	fmt.Fprintln(r.out, "Account created. Run 'doctalk login' to get started.")
	return nil
}

// Register validates the form buffer locally and submits it. The password
// confirmation check happens before any request leaves the client.
func (r *Runner) Register(ctx context.Context, req *models.RegisterRequest) error {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return fmt.Errorf("username, email, and password are required")
	}
	if req.Password != req.ConfirmPassword {
		return fmt.Errorf("passwords do not match")
	}

	if err := r.client.Register(ctx, req); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.HasField("username") {
			return fmt.Errorf("username already exists")
		}
		return err
	}
	return nil
}
