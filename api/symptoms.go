// ABOUTME: Symptom check call against POST /symptom-check/
// ABOUTME: The matching logic lives entirely behind the backend

package api

import (
	"context"
	"fmt"

	"github.com/doctalk/doctalk-cli/models"
)

type symptomCheckResponse struct {
	Results []models.CandidateCondition `json:"results"`
}

// CheckSymptoms submits an ordered symptom list with age and weight and
// returns the backend's ranked candidate conditions.
func (c *Client) CheckSymptoms(ctx context.Context, req models.SymptomCheckRequest) ([]models.CandidateCondition, error) {
	if len(req.Symptoms) == 0 {
		return nil, fmt.Errorf("no symptoms provided")
	}
	var resp symptomCheckResponse
	if err := c.doJSON(ctx, "POST", "/symptom-check/", req, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}
