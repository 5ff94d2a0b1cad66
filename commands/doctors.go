// ABOUTME: Doctor directory listing and appointment booking commands
// ABOUTME: Renders the directory service's roster and posts bookings

package commands

import (
	"context"
	"fmt"
)

func (r *Runner) listDoctors(ctx context.Context) error {
	doctors, demo, err := r.dir.Doctors(ctx)
	if err != nil {
		return err
	}
	if demo {
		fmt.Fprintln(r.out, "(backend unreachable, showing demo roster)")
	}

	fmt.Fprintln(r.out, "Find Expert Doctors")
	for _, d := range doctors {
		fmt.Fprintf(r.out, "\n[%d] Dr. %s %s - %s\n", d.ID, d.User.FirstName, d.User.LastName, d.Specialization)
		fmt.Fprintf(r.out, "    %d years experience | %s\n", d.ExperienceYears, orDash(d.HospitalAffiliation))
		fmt.Fprintf(r.out, "    Fee: %.0f | Rating: %.1f\n", d.ConsultationFee, d.Rating)
	}
	fmt.Fprintln(r.out, "\nBook with 'doctalk book <id>'.")
	return nil
}

func (r *Runner) bookAppointment(ctx context.Context, doctorID int) error {
	dateTime := r.prompt("Preferred date/time (e.g. 2026-09-03 15:00)")
	summary := r.prompt("Symptoms summary (optional)")

	conf, err := r.client.BookAppointment(ctx, doctorID, dateTime, summary)
	if err != nil {
		return err
	}

	if conf.Message != "" {
		fmt.Fprintln(r.out, conf.Message)
	}
	if conf.AppointmentID != 0 {
		fmt.Fprintf(r.out, "Appointment ID: %d\n", conf.AppointmentID)
	}
	return nil
}
