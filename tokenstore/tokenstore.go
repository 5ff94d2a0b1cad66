// ABOUTME: Durable storage for the access/refresh token pair
// ABOUTME: JSON file under the state directory, owner-only permissions

package tokenstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/doctalk/doctalk-cli/models"
)

// Store persists one token pair at a fixed path. It is the CLI's stand-in
// for the browser's localStorage: survives restarts, cleared on logout.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Save writes the pair, creating the state directory if needed. The file is
// 0600 and its directory 0700; tokens are credentials.
func (s *Store) Save(pair models.TokenPair) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := json.MarshalIndent(pair, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write tokens: %w", err)
	}
	return nil
}

// Load returns the persisted pair. ok is false when no credential is
// stored. An unreadable or corrupt file is an error; callers degrade it to
// logged-out.
func (s *Store) Load() (pair models.TokenPair, ok bool, err error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.TokenPair{}, false, nil
	}
	if err != nil {
		return models.TokenPair{}, false, fmt.Errorf("read tokens: %w", err)
	}
	if err := json.Unmarshal(data, &pair); err != nil {
		return models.TokenPair{}, false, fmt.Errorf("decode tokens: %w", err)
	}
	if pair.Access == "" {
		return models.TokenPair{}, false, nil
	}
	return pair, true, nil
}

// Clear deletes the persisted pair. Missing file is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove tokens: %w", err)
	}
	return nil
}
