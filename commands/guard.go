// ABOUTME: Navigation guard for protected commands
// ABOUTME: Three-way decision over (authenticated, loading) plus the root redirect

package commands

// Outcome is the guard's decision for a protected view.
type Outcome int

const (
	// OutcomeLoading: startup resolution pending, show a placeholder.
	OutcomeLoading Outcome = iota
	// OutcomeLogin: resolved and unauthenticated, send the user to login.
	OutcomeLogin
	// OutcomeAllow: render the requested view.
	OutcomeAllow
)

// Resolve applies the same three-way decision every protected view uses.
func Resolve(authenticated, loading bool) Outcome {
	if loading {
		return OutcomeLoading
	}
	if !authenticated {
		return OutcomeLogin
	}
	return OutcomeAllow
}

// Root dispatch targets.
const (
	TargetLoading = "loading"
	TargetLogin   = "login"
	TargetHome    = "home"
)

// RootTarget decides where the bare root invocation lands.
func RootTarget(authenticated, loading bool) string {
	if loading {
		return TargetLoading
	}
	if authenticated {
		return TargetHome
	}
	return TargetLogin
}
