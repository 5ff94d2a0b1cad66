// ABOUTME: Chat transcript persistence in a local SQLite database
// ABOUTME: Append-only message log under the state directory

package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/doctalk/doctalk-cli/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS messages (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	sender     TEXT NOT NULL,
	text       TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// Store keeps the chat transcript across runs. The chat itself is stateless
// on the wire; this log is purely a local convenience.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Append records one transcript entry.
func (s *Store) Append(ctx context.Context, msg models.ChatMessage) error {
	_, err := s.db.ExecContext(ctx, "INSERT INTO messages (sender, text) VALUES (?, ?)", msg.Sender, msg.Text)
	if err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	return nil
}

// Recent returns the last n messages in chronological order.
func (s *Store) Recent(ctx context.Context, n int) ([]models.ChatMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT sender, text FROM (SELECT id, sender, text FROM messages ORDER BY id DESC LIMIT ?) ORDER BY id ASC", n)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var msgs []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.Sender, &m.Text); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
