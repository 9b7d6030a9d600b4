package audit

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store provides durable storage for the reject log.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path and applies
// pragmas and schema. Idempotent - safe to call on an existing database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent writes.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// NewRunToken returns a fresh UUIDv7 run token. UUIDv7 embeds a timestamp
// in the most significant bits, so tokens sort by creation time.
func NewRunToken() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Reject is one rejected sample.
type Reject struct {
	ID        string `json:"id"`
	RunToken  string `json:"run_token"`
	Manifest  string `json:"manifest"`
	Series    string `json:"series"`
	SampleIdx int    `json:"sample_idx"`
	Value     string `json:"value"`
	Code      string `json:"code"`
	CreatedAt string `json:"created_at"`
}

// WriteReject appends one reject record. The record's ID is assigned here;
// duplicate IDs are silently ignored for idempotency.
func (s *Store) WriteReject(ctx context.Context, r Reject) error {
	if r.ID == "" {
		r.ID = uuid.Must(uuid.NewV7()).String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO rejects (id, run_token, manifest, series, sample_idx, value, code)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		r.ID,
		r.RunToken,
		r.Manifest,
		r.Series,
		r.SampleIdx,
		r.Value,
		r.Code,
	)
	if err != nil {
		return fmt.Errorf("write reject: %w", err)
	}

	return nil
}

// ListRejects returns rejects for a run token, or all rejects when the
// token is empty. Ordered by id, which for UUIDv7 means creation order.
// Returns an empty slice (not nil) when nothing matches.
func (s *Store) ListRejects(ctx context.Context, runToken string) ([]Reject, error) {
	query := `
		SELECT id, run_token, manifest, series, sample_idx, value, code, created_at
		FROM rejects
		ORDER BY id COLLATE BINARY ASC
	`
	args := []any{}
	if runToken != "" {
		query = `
			SELECT id, run_token, manifest, series, sample_idx, value, code, created_at
			FROM rejects
			WHERE run_token = ?
			ORDER BY id COLLATE BINARY ASC
		`
		args = append(args, runToken)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query rejects: %w", err)
	}
	defer rows.Close()

	rejects := []Reject{}
	for rows.Next() {
		var r Reject
		if err := rows.Scan(&r.ID, &r.RunToken, &r.Manifest, &r.Series, &r.SampleIdx, &r.Value, &r.Code, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reject: %w", err)
		}
		rejects = append(rejects, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rejects: %w", err)
	}

	return rejects, nil
}
