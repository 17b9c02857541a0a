package palette

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/jmylchreest/palettecraft/internal/colour"
	"github.com/jmylchreest/palettecraft/internal/harmony"
	"github.com/jmylchreest/palettecraft/internal/history"
	"github.com/jmylchreest/palettecraft/internal/mood"
)

var (
	// ErrSlotOutOfRange is returned for a slot index outside the palette.
	ErrSlotOutOfRange = errors.New("slot index out of range")
	// ErrLengthMismatch is returned when colours and lock flags differ in length.
	ErrLengthMismatch = errors.New("colors and locks differ in length")
)

// History action labels.
const (
	ActionInitial    = "Initial palette"
	ActionRandom     = "Random generation"
	ActionLoaded     = "Palette loaded"
	ActionUpdated    = "Palette updated"
	ActionReordered  = "Colors reordered"
	actionMoodPrefix = "Mood: "
	actionHarmony    = "Harmony: "
)

// RandomColor returns a colour with each channel drawn uniformly from 0-255.
func RandomColor(rng *rand.Rand) string {
	return colour.RGB{
		R: uint8(rng.IntN(256)),
		G: uint8(rng.IntN(256)),
		B: uint8(rng.IntN(256)),
	}.Hex()
}

// RandomPalette returns n random colours.
func RandomPalette(rng *rand.Rand, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = RandomColor(rng)
	}
	return out
}

// Session is a palette being edited. Every mutation that changes colours is
// recorded in its history; lock changes are not. A Session is not safe for
// concurrent use.
type Session struct {
	palette *Palette
	rng     *rand.Rand
	history *history.History
}

// SessionOption configures a Session.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	rng     *rand.Rand
	history *history.History
	size    int
	initial []string
}

// WithRand sets the random source used for generation.
func WithRand(rng *rand.Rand) SessionOption {
	return func(c *sessionConfig) {
		c.rng = rng
	}
}

// WithHistory sets the history the session records into.
func WithHistory(h *history.History) SessionOption {
	return func(c *sessionConfig) {
		c.history = h
	}
}

// WithSize sets the number of slots of the initial random palette.
func WithSize(n int) SessionOption {
	return func(c *sessionConfig) {
		c.size = n
	}
}

// WithColors starts the session from the given colours instead of a random palette.
func WithColors(colors []string) SessionOption {
	return func(c *sessionConfig) {
		c.initial = colors
	}
}

// NewSession starts a session with a random palette, unlocked, and records
// it as the first history entry.
func NewSession(opts ...SessionOption) *Session {
	cfg := sessionConfig{size: DefaultSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.history == nil {
		cfg.history = history.New(history.DefaultCapacity)
	}
	if cfg.size <= 0 {
		cfg.size = DefaultSize
	}

	colors := cfg.initial
	if colors == nil {
		colors = RandomPalette(cfg.rng, cfg.size)
	}

	s := &Session{
		palette: New(colors),
		rng:     cfg.rng,
		history: cfg.history,
	}
	s.record(ActionInitial)
	return s
}

// Colors returns a copy of the current colours.
func (s *Session) Colors() []string {
	return append([]string(nil), s.palette.Colors...)
}

// Locked returns a copy of the current lock flags.
func (s *Session) Locked() []bool {
	return append([]bool(nil), s.palette.Locked...)
}

// Palette returns a snapshot of the current palette.
func (s *Session) Palette() *Palette {
	return &Palette{Colors: s.Colors(), Locked: s.Locked()}
}

// History returns the session's history.
func (s *Session) History() *history.History {
	return s.history
}

func (s *Session) record(action string) {
	s.history.Push(s.palette.Colors, action)
}

// Regenerate replaces every unlocked slot with a random colour.
func (s *Session) Regenerate() []string {
	for i := range s.palette.Colors {
		if !s.palette.Locked[i] {
			s.palette.Colors[i] = RandomColor(s.rng)
		}
	}
	s.record(ActionRandom)
	return s.Colors()
}

// ApplyMood resolves query against the mood catalog and copies the result
// into the unlocked slots. Mood palettes shorter than DefaultSize are padded
// from the default mood. The resolution is returned so callers can report
// an unmatched query.
func (s *Session) ApplyMood(query string) mood.Resolution {
	res := mood.Resolve(query)
	fallback := mood.Default().Colors

	full := make([]string, DefaultSize)
	for i := range full {
		switch {
		case i < len(res.Colors) && res.Colors[i] != "":
			full[i] = res.Colors[i]
		case i < len(fallback):
			full[i] = fallback[i]
		}
	}

	for i := range s.palette.Colors {
		if s.palette.Locked[i] || i >= len(full) || full[i] == "" {
			continue
		}
		s.palette.Colors[i] = full[i]
	}
	s.record(actionMoodPrefix + query)
	return res
}

// ApplyHarmony derives a palette for scheme and copies it into the unlocked
// slots. An empty base uses the first locked colour, or the first slot when
// nothing is locked. The colour the harmony was built from is returned.
func (s *Session) ApplyHarmony(scheme harmony.Scheme, base string) (string, error) {
	if base == "" {
		base = s.harmonyBase()
	}
	colors, err := harmony.Generate(scheme, base, len(s.palette.Colors))
	if err != nil {
		return "", err
	}
	for i := range s.palette.Colors {
		if !s.palette.Locked[i] {
			s.palette.Colors[i] = colors[i]
		}
	}
	s.record(actionHarmony + string(scheme))
	return base, nil
}

func (s *Session) harmonyBase() string {
	for i, locked := range s.palette.Locked {
		if locked {
			return s.palette.Colors[i]
		}
	}
	if len(s.palette.Colors) == 0 {
		return ""
	}
	return s.palette.Colors[0]
}

// EditSlot sets slot i to hex. Malformed input leaves the palette unchanged.
func (s *Session) EditSlot(i int, hex string) error {
	if i < 0 || i >= len(s.palette.Colors) {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, i)
	}
	if !colour.ValidHex(hex) {
		return fmt.Errorf("%w: %q", colour.ErrInvalidHex, hex)
	}
	normalised, err := colour.NormalizeHex(hex)
	if err != nil {
		return err
	}
	s.palette.Colors[i] = normalised
	s.record(fmt.Sprintf("Color %d edited", i+1))
	return nil
}

// ToggleLock flips the lock on slot i and returns the new state.
func (s *Session) ToggleLock(i int) (bool, error) {
	if i < 0 || i >= len(s.palette.Locked) {
		return false, fmt.Errorf("%w: %d", ErrSlotOutOfRange, i)
	}
	s.palette.Locked[i] = !s.palette.Locked[i]
	return s.palette.Locked[i], nil
}

// SetLocked sets the lock on slot i.
func (s *Session) SetLocked(i int, locked bool) error {
	if i < 0 || i >= len(s.palette.Locked) {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, i)
	}
	s.palette.Locked[i] = locked
	return nil
}

// Reorder replaces the palette with a permutation supplied by the caller
// along with the matching lock flags.
func (s *Session) Reorder(colors []string, locked []bool) error {
	if len(colors) != len(locked) {
		return fmt.Errorf("%w: %d colors, %d locks", ErrLengthMismatch, len(colors), len(locked))
	}
	s.palette.Colors = append([]string(nil), colors...)
	s.palette.Locked = append([]bool(nil), locked...)
	s.record(ActionReordered)
	return nil
}

// Load replaces the palette and clears every lock.
func (s *Session) Load(colors []string) {
	s.palette = New(colors)
	s.record(ActionLoaded)
}

// Set replaces the colours and keeps locks for the slots that remain.
func (s *Session) Set(colors []string) {
	s.setColors(colors)
	s.record(ActionUpdated)
}

// Undo restores the previous palette. Locks are kept.
func (s *Session) Undo() ([]string, bool) {
	colors, ok := s.history.Undo()
	if !ok {
		return nil, false
	}
	s.setColors(colors)
	return s.Colors(), true
}

// Redo re-applies the next palette. Locks are kept.
func (s *Session) Redo() ([]string, bool) {
	colors, ok := s.history.Redo()
	if !ok {
		return nil, false
	}
	s.setColors(colors)
	return s.Colors(), true
}

// setColors replaces the colours and resizes the locks to match.
func (s *Session) setColors(colors []string) {
	locked := make([]bool, len(colors))
	copy(locked, s.palette.Locked)
	s.palette.Colors = append([]string(nil), colors...)
	s.palette.Locked = locked
}
