// Package history keeps a bounded linear undo/redo log of palette snapshots.
package history

import (
	"time"
)

// DefaultCapacity is the number of snapshots kept when New is given a
// non-positive capacity.
const DefaultCapacity = 50

// Entry is a single recorded palette state.
type Entry struct {
	Palette   []string  `json:"palette"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
}

// History is a linear undo/redo log. Pushing after an undo discards the
// redo branch. It is not safe for concurrent use.
type History struct {
	entries  []Entry
	cursor   int
	capacity int
	now      func() time.Time
}

// Option configures a History.
type Option func(*History)

// WithClock overrides the clock used to timestamp entries.
func WithClock(now func() time.Time) Option {
	return func(h *History) {
		h.now = now
	}
}

// New creates an empty history holding at most capacity entries.
func New(capacity int, opts ...Option) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	h := &History{
		cursor:   -1,
		capacity: capacity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Push records palette as the newest state. Entries after the cursor are
// dropped and the oldest entries are evicted beyond capacity.
func (h *History) Push(palette []string, action string) {
	h.entries = append(h.entries[:h.cursor+1], Entry{
		Palette:   append([]string(nil), palette...),
		Timestamp: h.now(),
		Action:    action,
	})
	if over := len(h.entries) - h.capacity; over > 0 {
		h.entries = append([]Entry(nil), h.entries[over:]...)
	}
	h.cursor = len(h.entries) - 1
}

// Undo steps back one entry and returns its palette.
func (h *History) Undo() ([]string, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.cursor--
	return h.snapshot(), true
}

// Redo steps forward one entry and returns its palette.
func (h *History) Redo() ([]string, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.cursor++
	return h.snapshot(), true
}

// CanUndo reports whether an earlier entry exists.
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether a later entry exists.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.entries)-1
}

// Current returns the entry at the cursor.
func (h *History) Current() (Entry, bool) {
	if h.cursor < 0 {
		return Entry{}, false
	}
	e := h.entries[h.cursor]
	e.Palette = append([]string(nil), e.Palette...)
	return e, true
}

// Entries returns the visible history, oldest first, up to and including
// the cursor.
func (h *History) Entries() []Entry {
	out := make([]Entry, h.cursor+1)
	for i := range out {
		out[i] = h.entries[i]
		out[i].Palette = append([]string(nil), h.entries[i].Palette...)
	}
	return out
}

// Len returns the number of stored entries, including redo entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Index returns the cursor position, or -1 when empty.
func (h *History) Index() int {
	return h.cursor
}

// Capacity returns the maximum number of entries kept.
func (h *History) Capacity() int {
	return h.capacity
}

// Clear removes every entry.
func (h *History) Clear() {
	h.entries = nil
	h.cursor = -1
}

func (h *History) snapshot() []string {
	return append([]string(nil), h.entries[h.cursor].Palette...)
}
