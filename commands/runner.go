// ABOUTME: Command dispatch for the DocTalk terminal client
// ABOUTME: Wires config, API client, session store, and directory into command flows

package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/doctalk/doctalk-cli/api"
	"github.com/doctalk/doctalk-cli/config"
	"github.com/doctalk/doctalk-cli/directory"
	"github.com/doctalk/doctalk-cli/session"
	"github.com/doctalk/doctalk-cli/tokenstore"
)

const usage = `DocTalk - your healthcare assistant

Usage: doctalk [command]

Commands:
  login             Log in and start a session
  logout            Log out and clear stored credentials
  register          Create a new account
  status            Show the current session
  home              Dashboard: profile summary and available doctors
  profile           Show your health profile
  profile update    Edit your health profile
  symptoms          Run a symptom check
  report <file>     Upload a medical report (PDF/image) for analysis
  doctors           List available doctors
  book <doctor-id>  Book an appointment
  chat              Talk to the DocTalk assistant
  chat history      Show the saved chat transcript

Run without a command to land on home (or login when logged out).`

// Runner holds the wired client stack and executes one command per process.
type Runner struct {
	cfg     *config.Config
	client  *api.Client
	session *session.Store
	dir     *directory.Directory
	in      *bufio.Scanner
	out     io.Writer
}

func NewRunner(cfg *config.Config, in io.Reader, out io.Writer) *Runner {
	client := api.New(cfg.APIBaseURL, time.Duration(cfg.RequestTimeout)*time.Second, cfg.ChatRPS)
	tokens := tokenstore.New(cfg.TokenPath())

	return &Runner{
		cfg:     cfg,
		client:  client,
		session: session.NewStore(client, tokens),
		dir:     directory.New(client, time.Duration(cfg.DoctorsTTL)*time.Second, cfg.DemoFallback),
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run dispatches one command and returns the process exit code.
func (r *Runner) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		return r.root(ctx)
	}

	var err error
	switch args[0] {
	case "login":
		err = r.loginFlow(ctx)
	case "logout":
		r.session.Logout()
		fmt.Fprintln(r.out, "Logged out.")
	case "register":
		err = r.registerFlow(ctx)
	case "status":
		err = r.status(ctx)
	case "home":
		err = r.guarded(ctx, r.home)
	case "profile":
		if len(args) > 1 && args[1] == "update" {
			err = r.guarded(ctx, r.updateProfileFlow)
		} else {
			err = r.guarded(ctx, r.showProfile)
		}
	case "symptoms":
		err = r.guarded(ctx, r.symptomsFlow)
	case "report":
		if len(args) < 2 {
			err = fmt.Errorf("usage: doctalk report <file>")
			break
		}
		path := args[1]
		err = r.guarded(ctx, func(ctx context.Context) error {
			return r.analyzeReport(ctx, path)
		})
	case "doctors":
		err = r.guarded(ctx, r.listDoctors)
	case "book":
		if len(args) < 2 {
			err = fmt.Errorf("usage: doctalk book <doctor-id>")
			break
		}
		id, convErr := strconv.Atoi(args[1])
		if convErr != nil {
			err = fmt.Errorf("invalid doctor id %q", args[1])
			break
		}
		err = r.guarded(ctx, func(ctx context.Context) error {
			return r.bookAppointment(ctx, id)
		})
	case "chat":
		if len(args) > 1 && args[1] == "history" {
			err = r.showChatHistory(ctx)
		} else {
			err = r.chatFlow(ctx)
		}
	case "help", "-h", "--help":
		fmt.Fprintln(r.out, usage)
	default:
		fmt.Fprintf(r.out, "Unknown command %q\n\n%s\n", args[0], usage)
		return 1
	}

	if err != nil {
		fmt.Fprintln(r.out, "Error:", err)
		return 1
	}
	return 0
}

// root mirrors the original client's root redirect: home when authenticated,
// login when not.
func (r *Runner) root(ctx context.Context) int {
	r.session.Initialize(ctx)
	switch RootTarget(r.session.IsAuthenticated(), r.session.Loading()) {
	case TargetHome:
		if err := r.home(ctx); err != nil {
			fmt.Fprintln(r.out, "Error:", err)
			return 1
		}
	default:
		fmt.Fprintln(r.out, "Welcome to DocTalk. Please log in.")
		if err := r.loginFlow(ctx); err != nil {
			fmt.Fprintln(r.out, "Error:", err)
			return 1
		}
	}
	return 0
}

// guarded runs fn only when the resolved session allows it.
func (r *Runner) guarded(ctx context.Context, fn func(context.Context) error) error {
	r.session.Initialize(ctx)
	switch Resolve(r.session.IsAuthenticated(), r.session.Loading()) {
	case OutcomeAllow:
		return fn(ctx)
	case OutcomeLoading:
		return fmt.Errorf("session is still resolving, try again")
	default:
		return fmt.Errorf("not logged in; run 'doctalk login' first")
	}
}

// ===== prompt helpers =====

func (r *Runner) prompt(label string) string {
	fmt.Fprintf(r.out, "%s: ", label)
	if !r.in.Scan() {
		return ""
	}
	return strings.TrimSpace(r.in.Text())
}

func (r *Runner) promptDefault(label, def string) string {
	if def != "" {
		label = fmt.Sprintf("%s [%s]", label, def)
	}
	if v := r.prompt(label); v != "" {
		return v
	}
	return def
}

func (r *Runner) promptBool(label string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	switch strings.ToLower(r.prompt(fmt.Sprintf("%s (%s)", label, hint))) {
	case "y", "yes", "true":
		return true
	case "n", "no", "false":
		return false
	default:
		return def
	}
}

func (r *Runner) promptInt(label string, def int) int {
	v := r.prompt(label)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	fmt.Fprintf(r.out, "Not a number, keeping %d\n", def)
	return def
}

func (r *Runner) promptFloat(label string, def float64) float64 {
	v := r.prompt(label)
	if v == "" {
		return def
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	fmt.Fprintf(r.out, "Not a number, keeping %v\n", def)
	return def
}
