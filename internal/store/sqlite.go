package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists palettes in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	mu   sync.RWMutex
	opts options
}

// NewSQLiteStore opens the database at dbPath, creating the parent directory
// and the schema when missing. ":memory:" opens a private in-memory database.
func NewSQLiteStore(dbPath string, opts ...Option) (*SQLiteStore, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and serialises writes.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &SQLiteStore{db: db, opts: buildOptions(opts)}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS palettes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		colors TEXT NOT NULL,
		share_id TEXT UNIQUE,
		is_public INTEGER NOT NULL DEFAULT 0,
		metadata TEXT,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_palettes_created_at ON palettes(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Create implements Store.
func (s *SQLiteStore) Create(ctx context.Context, p NewPalette) (StoredPalette, error) {
	colors, err := json.Marshal(nonNil(p.Colors))
	if err != nil {
		return StoredPalette{}, fmt.Errorf("encode colors: %w", err)
	}
	var metadata sql.NullString
	if len(p.Metadata) > 0 {
		metadata = sql.NullString{String: string(p.Metadata), Valid: true}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	shareID, err := s.pickShareID(ctx, p.ShareID)
	if err != nil {
		return StoredPalette{}, err
	}

	createdAt := s.opts.now()
	res, err := s.db.ExecContext(ctx, `
	INSERT INTO palettes (name, colors, share_id, is_public, metadata, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`, p.Name, string(colors), shareID, p.IsPublic, metadata, createdAt.UnixNano())
	if err != nil {
		return StoredPalette{}, fmt.Errorf("insert palette: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return StoredPalette{}, fmt.Errorf("read palette id: %w", err)
	}

	return clonePalette(StoredPalette{
		ID:        id,
		Name:      p.Name,
		Colors:    nonNil(p.Colors),
		ShareID:   &shareID,
		IsPublic:  p.IsPublic,
		Metadata:  p.Metadata,
		CreatedAt: time.Unix(0, createdAt.UnixNano()),
	}), nil
}

func (s *SQLiteStore) shareIDExists(ctx context.Context, id string) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM palettes WHERE share_id = ?`, id).Scan(&n); err != nil {
		return false, fmt.Errorf("check share id: %w", err)
	}
	return n > 0, nil
}

// pickShareID validates a requested id or generates an unused one. Callers hold mu.
func (s *SQLiteStore) pickShareID(ctx context.Context, requested string) (string, error) {
	if requested != "" {
		taken, err := s.shareIDExists(ctx, requested)
		if err != nil {
			return "", err
		}
		if taken {
			return "", ErrShareIDTaken
		}
		return requested, nil
	}
	for range maxShareIDAttempts {
		id, err := NewShareID()
		if err != nil {
			return "", err
		}
		taken, err := s.shareIDExists(ctx, id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
	return "", ErrShareIDTaken
}

const selectColumns = `SELECT id, name, colors, share_id, is_public, metadata, created_at FROM palettes`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPalette(row rowScanner) (StoredPalette, error) {
	var (
		p         StoredPalette
		colors    string
		shareID   sql.NullString
		metadata  sql.NullString
		createdAt int64
	)
	if err := row.Scan(&p.ID, &p.Name, &colors, &shareID, &p.IsPublic, &metadata, &createdAt); err != nil {
		return StoredPalette{}, err
	}
	if err := json.Unmarshal([]byte(colors), &p.Colors); err != nil {
		return StoredPalette{}, fmt.Errorf("decode colors: %w", err)
	}
	if shareID.Valid {
		id := shareID.String
		p.ShareID = &id
	}
	if metadata.Valid {
		p.Metadata = json.RawMessage(metadata.String)
	}
	p.CreatedAt = time.Unix(0, createdAt)
	return p, nil
}

// GetByShareID implements Store.
func (s *SQLiteStore) GetByShareID(ctx context.Context, shareID string) (StoredPalette, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, err := scanPalette(s.db.QueryRowContext(ctx, selectColumns+` WHERE share_id = ?`, shareID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StoredPalette{}, ErrNotFound
		}
		return StoredPalette{}, fmt.Errorf("load palette: %w", err)
	}
	return p, nil
}

// List implements Store.
func (s *SQLiteStore) List(ctx context.Context) ([]StoredPalette, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, selectColumns+` ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list palettes: %w", err)
	}
	defer rows.Close()

	out := []StoredPalette{}
	for rows.Next() {
		p, err := scanPalette(rows)
		if err != nil {
			return nil, fmt.Errorf("scan palette: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate palettes: %w", err)
	}
	return out, nil
}

// Delete implements Store.
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM palettes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete palette: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
