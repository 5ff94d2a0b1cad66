// ABOUTME: Dashboard command shown after the root redirect
// ABOUTME: Fetches profile and doctor directory concurrently

package commands

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/doctalk/doctalk-cli/models"
)

func (r *Runner) home(ctx context.Context) error {
	var (
		user    *models.UserProfile
		doctors []models.Doctor
		demo    bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := r.client.GetProfile(gctx)
		if err != nil {
			return err
		}
		user = u
		return nil
	})
	g.Go(func() error {
		d, dm, err := r.dir.Doctors(gctx)
		if err != nil {
			return err
		}
		doctors, demo = d, dm
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(r.out, "Welcome back, %s!\n\n", user.Username)
	if p := user.Profile; p != nil {
		fmt.Fprintf(r.out, "Your vitals: age %d, %.1f kg", p.Age, p.Weight)
		if p.BloodGroup != "" {
			fmt.Fprintf(r.out, ", blood group %s", p.BloodGroup)
		}
		fmt.Fprintln(r.out)
	}

	fmt.Fprintf(r.out, "%d doctors available", len(doctors))
	if demo {
		fmt.Fprint(r.out, " (demo roster)")
	}
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, "\nTry: doctalk symptoms | doctalk doctors | doctalk chat | doctalk report <file>")
	return nil
}
