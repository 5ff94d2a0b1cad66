// ABOUTME: Login and session status commands
// ABOUTME: Prompted credential entry and token expiry inspection

package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/doctalk/doctalk-cli/api"
)

func (r *Runner) loginFlow(ctx context.Context) error {
	username := r.prompt("Username")
	password := r.prompt("Password")
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}

	if err := r.session.Login(ctx, username, password); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Status == 401 {
			return fmt.Errorf("invalid username or password")
		}
		return err
	}

	user := r.session.User()
	fmt.Fprintf(r.out, "Welcome back, %s!\n", user.Username)
	return nil
}

func (r *Runner) status(ctx context.Context) error {
	r.session.Initialize(ctx)

	if !r.session.IsAuthenticated() {
		fmt.Fprintln(r.out, "Not logged in.")
		return nil
	}

	user := r.session.User()
	fmt.Fprintf(r.out, "Logged in as %s <%s>\n", user.Username, user.Email)

	if expiry, ok := tokenExpiry(r.client.Token()); ok {
		if time.Now().After(expiry) {
			fmt.Fprintf(r.out, "Access token expired at %s (requests will fail until you log in again)\n", expiry.Format(time.RFC3339))
		} else {
			fmt.Fprintf(r.out, "Access token valid until %s\n", expiry.Format(time.RFC3339))
		}
	}
	return nil
}

// tokenExpiry reads the exp claim without verifying the signature; the
// backend is the authority on validity, this is display only.
func tokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
