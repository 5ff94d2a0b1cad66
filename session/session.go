// ABOUTME: Client-side session store, the single authority for auth state
// ABOUTME: Initialize/Login/Logout lifecycle over the API client and token store

package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/doctalk/doctalk-cli/api"
	"github.com/doctalk/doctalk-cli/models"
	"github.com/doctalk/doctalk-cli/tokenstore"
)

// Store holds the current authentication state. All mutation funnels through
// Initialize, Login, and Logout; everything else is read-only.
//
// Invariant: authenticated is true only after a successful profile fetch, and
// never while no credential is attached.
type Store struct {
	client *api.Client
	tokens *tokenstore.Store

	initOnce sync.Once

	mu            sync.RWMutex
	authenticated bool
	user          *models.UserProfile
	loading       bool
}

func NewStore(client *api.Client, tokens *tokenstore.Store) *Store {
	return &Store{
		client:  client,
		tokens:  tokens,
		loading: true,
	}
}

// Initialize resolves the startup state: if a persisted credential exists it
// is attached and validated with a profile fetch; otherwise the session
// resolves to logged-out without touching the network. Runs at most once per
// process; later calls are no-ops.
func (s *Store) Initialize(ctx context.Context) {
	s.initOnce.Do(func() {
		defer s.setLoading(false)

		pair, ok, err := s.tokens.Load()
		if err != nil {
			slog.Warn("Failed to load persisted tokens", "error", err)
			return
		}
		if !ok {
			slog.Debug("No persisted credential, starting logged out")
			return
		}

		s.client.SetToken(pair.Access)
		user, err := s.client.GetProfile(ctx)
		if err != nil {
			// Network failure and invalid token both degrade to logged-out.
			slog.Warn("Persisted credential rejected, clearing", "error", err)
			s.client.ClearToken()
			if err := s.tokens.Clear(); err != nil {
				slog.Warn("Failed to clear persisted tokens", "error", err)
			}
			return
		}

		s.setUser(user)
		slog.Debug("Session restored", "username", user.Username)
	})
}

// Login exchanges credentials for tokens, persists them, and validates the
// pair with a profile fetch. The session flips to authenticated only after
// the profile fetch succeeds; if it fails, the freshly issued credential is
// rolled back and the error propagates with state unchanged.
func (s *Store) Login(ctx context.Context, username, password string) error {
	pair, err := s.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := s.tokens.Save(pair); err != nil {
		s.client.ClearToken()
		return err
	}

	user, err := s.client.GetProfile(ctx)
	if err != nil {
		s.client.ClearToken()
		if clearErr := s.tokens.Clear(); clearErr != nil {
			slog.Warn("Failed to clear persisted tokens", "error", clearErr)
		}
		return err
	}

	s.setUser(user)
	slog.Info("Logged in", "username", user.Username)
	return nil
}

// Logout clears the persisted and attached credentials and resets state.
// Never fails; storage errors are logged and swallowed.
func (s *Store) Logout() {
	if err := s.tokens.Clear(); err != nil {
		slog.Warn("Failed to clear persisted tokens", "error", err)
	}
	s.client.Logout()

	s.mu.Lock()
	s.authenticated = false
	s.user = nil
	s.mu.Unlock()
	slog.Info("Logged out")
}

// IsAuthenticated reports whether a profile fetch has confirmed the session.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// User returns the fetched profile, or nil when logged out.
func (s *Store) User() *models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Loading reports whether startup resolution is still pending.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) setUser(user *models.UserProfile) {
	s.mu.Lock()
	s.authenticated = true
	s.user = user
	s.mu.Unlock()
}

func (s *Store) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}
