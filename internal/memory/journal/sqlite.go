// Package journal archives conversation exchanges in SQLite.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"jarvis-assistant/internal/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS exchanges (
    id         TEXT PRIMARY KEY,
    session_id TEXT NOT NULL DEFAULT '',
    role       TEXT NOT NULL,
    content    TEXT NOT NULL,
    language   TEXT NOT NULL DEFAULT '',
    intent     TEXT NOT NULL DEFAULT '',
    topic      TEXT NOT NULL DEFAULT '',
    action     TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_exchanges_session ON exchanges(session_id, created_at);
`

// timeLayout is fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore is an append-only exchange archive.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and ensures the schema exists.
// Paths starting with "file:" are passed through untouched.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Append stores one exchange. Re-appending an ID is a no-op.
func (s *SQLiteStore) Append(ctx context.Context, e model.Exchange) error {
	if s.db == nil {
		return ErrClosed
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO exchanges
			(id, session_id, role, content, language, intent, topic, action, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.SessionID, string(e.Role), e.Content, e.Language,
		e.Intent, e.Topic, string(e.Action), e.Timestamp.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("append exchange: %w", err)
	}
	return nil
}

// Recent returns the last n exchanges of a session, oldest first.
func (s *SQLiteStore) Recent(ctx context.Context, sessionID string, n int) ([]model.Exchange, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	if n <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, role, content, language, intent, topic, action, created_at
		FROM exchanges WHERE session_id = ?
		ORDER BY created_at DESC, rowid DESC LIMIT ?`, sessionID, n)
	if err != nil {
		return nil, fmt.Errorf("query exchanges: %w", err)
	}
	defer rows.Close()

	var out []model.Exchange
	for rows.Next() {
		var (
			e                model.Exchange
			role, action, ts string
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &role, &e.Content, &e.Language,
			&e.Intent, &e.Topic, &action, &ts); err != nil {
			return nil, fmt.Errorf("scan exchange: %w", err)
		}
		e.Role = model.Role(role)
		e.Action = model.Action(action)
		e.Timestamp, _ = time.Parse(timeLayout, ts)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exchanges: %w", err)
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// Count returns how many exchanges a session has archived.
func (s *SQLiteStore) Count(ctx context.Context, sessionID string) (int, error) {
	if s.db == nil {
		return 0, ErrClosed
	}
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM exchanges WHERE session_id = ?`, sessionID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count exchanges: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
