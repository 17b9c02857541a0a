package store

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps palettes in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	palettes map[int64]StoredPalette
	byShare  map[string]int64
	nextID   int64
	opts     options
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(opts ...Option) *MemoryStore {
	return &MemoryStore{
		palettes: make(map[int64]StoredPalette),
		byShare:  make(map[string]int64),
		nextID:   1,
		opts:     buildOptions(opts),
	}
}

// Create implements Store.
func (s *MemoryStore) Create(ctx context.Context, p NewPalette) (StoredPalette, error) {
	if err := ctx.Err(); err != nil {
		return StoredPalette{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	shareID, err := s.pickShareID(p.ShareID)
	if err != nil {
		return StoredPalette{}, err
	}

	stored := clonePalette(StoredPalette{
		ID:        s.nextID,
		Name:      p.Name,
		Colors:    nonNil(p.Colors),
		ShareID:   &shareID,
		IsPublic:  p.IsPublic,
		Metadata:  p.Metadata,
		CreatedAt: s.opts.now(),
	})
	s.nextID++

	s.palettes[stored.ID] = stored
	s.byShare[shareID] = stored.ID
	return clonePalette(stored), nil
}

// pickShareID validates a requested id or generates an unused one. Callers hold mu.
func (s *MemoryStore) pickShareID(requested string) (string, error) {
	if requested != "" {
		if _, taken := s.byShare[requested]; taken {
			return "", ErrShareIDTaken
		}
		return requested, nil
	}
	for range maxShareIDAttempts {
		id, err := NewShareID()
		if err != nil {
			return "", err
		}
		if _, taken := s.byShare[id]; !taken {
			return id, nil
		}
	}
	return "", ErrShareIDTaken
}

// GetByShareID implements Store.
func (s *MemoryStore) GetByShareID(ctx context.Context, shareID string) (StoredPalette, error) {
	if err := ctx.Err(); err != nil {
		return StoredPalette{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byShare[shareID]
	if !ok {
		return StoredPalette{}, ErrNotFound
	}
	return clonePalette(s.palettes[id]), nil
}

// List implements Store.
func (s *MemoryStore) List(ctx context.Context) ([]StoredPalette, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := make([]StoredPalette, 0, len(s.palettes))
	for _, p := range s.palettes {
		out = append(out, clonePalette(p))
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b StoredPalette) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})
	return out, nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.palettes[id]; ok {
		if p.ShareID != nil {
			delete(s.byShare, *p.ShareID)
		}
		delete(s.palettes, id)
	}
	return nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	return nil
}
