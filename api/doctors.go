// ABOUTME: Doctor directory and appointment booking calls
// ABOUTME: GET /doctors/ listing and POST /appointments/book/

package api

import (
	"context"

	"github.com/doctalk/doctalk-cli/models"
)

// ListDoctors fetches the doctor directory. Read-only.
func (c *Client) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := c.doJSON(ctx, "GET", "/doctors/", nil, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

type bookingRequest struct {
	DoctorID        int    `json:"doctor_id"`
	DateTime        string `json:"date_time,omitempty"`
	SymptomsSummary string `json:"symptoms_summary,omitempty"`
}

// BookAppointment requests an appointment with a doctor.
func (c *Client) BookAppointment(ctx context.Context, doctorID int, dateTime, symptomsSummary string) (*models.BookingConfirmation, error) {
	req := bookingRequest{DoctorID: doctorID, DateTime: dateTime, SymptomsSummary: symptomsSummary}
	var conf models.BookingConfirmation
	if err := c.doJSON(ctx, "POST", "/appointments/book/", req, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}
