// Package store persists shared palettes.
package store

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"
)

var (
	// ErrNotFound is returned when no palette matches the lookup.
	ErrNotFound = errors.New("palette not found")
	// ErrShareIDTaken is returned when a caller-supplied share id already exists.
	ErrShareIDTaken = errors.New("share id already in use")
)

// StoredPalette is a persisted palette.
type StoredPalette struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Colors    []string        `json:"colors"`
	ShareID   *string         `json:"shareId"`
	IsPublic  bool            `json:"isPublic"`
	Metadata  json.RawMessage `json:"metadata"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NewPalette is the input to Create. An empty ShareID asks the store to
// generate one.
type NewPalette struct {
	Name     string
	Colors   []string
	ShareID  string
	IsPublic bool
	Metadata json.RawMessage
}

// Store is a palette repository. Implementations are safe for concurrent use.
type Store interface {
	// Create persists p and returns the stored record.
	Create(ctx context.Context, p NewPalette) (StoredPalette, error)
	// GetByShareID returns the palette with the given share id or ErrNotFound.
	GetByShareID(ctx context.Context, shareID string) (StoredPalette, error)
	// List returns every palette, newest first.
	List(ctx context.Context) ([]StoredPalette, error)
	// Delete removes the palette with the given id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id int64) error
	// Close releases any resources held by the store.
	Close() error
}

// Option configures a store.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the clock used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// shareIDAlphabet is the 64-symbol URL-safe alphabet used by nanoid.
const shareIDAlphabet = "useandom-26T198340PX75pxJACKVERYMINDBUSHWOLF_GQZbfghjklqvwyzrict"

// ShareIDLength is the length of generated share ids.
const ShareIDLength = 10

// NewShareID returns a random URL-safe share id.
func NewShareID() (string, error) {
	buf := make([]byte, ShareIDLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate share id: %w", err)
	}
	for i, b := range buf {
		buf[i] = shareIDAlphabet[b&63]
	}
	return string(buf), nil
}

// maxShareIDAttempts bounds retries on generated share id collisions.
const maxShareIDAttempts = 5

// clonePalette returns a copy that shares no mutable state with p.
func clonePalette(p StoredPalette) StoredPalette {
	p.Colors = slices.Clone(p.Colors)
	if p.ShareID != nil {
		id := *p.ShareID
		p.ShareID = &id
	}
	if p.Metadata != nil {
		p.Metadata = slices.Clone(p.Metadata)
	}
	return p
}

func nonNil(colors []string) []string {
	if colors == nil {
		return []string{}
	}
	return colors
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Open creates the store for backend. path is only used by the SQLite backend.
func Open(backend, path string, opts ...Option) (Store, error) {
	switch backend {
	case BackendMemory, "":
		return NewMemoryStore(opts...), nil
	case BackendSQLite:
		return NewSQLiteStore(path, opts...)
	}
	return nil, fmt.Errorf("unknown store backend %q", backend)
}
