package settings

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync"

	"github.com/AubakirovAzamat/Dragon-Dice/internal/persistence"

	"go.uber.org/zap"
)

// Store is the single source of truth for the current preferences.
// Reads never fail: absent or unreadable data yields Defaults.
// A failed write leaves the in-memory value untouched.
type Store struct {
	kv     persistence.KV
	logger *zap.Logger

	// writeMu serializes read-merge-save so concurrent updates of
	// different fields never drop each other.
	writeMu sync.Mutex

	mu        sync.RWMutex
	current   Settings
	observers []func(Settings)
}

// NewStore wraps kv. The in-memory value starts at Defaults until Load runs.
func NewStore(kv persistence.KV, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		kv:      kv,
		logger:  logger,
		current: Defaults(),
	}
}

// Current returns the in-memory preferences.
func (s *Store) Current() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Subscribe registers fn to run after every successful save.
func (s *Store) Subscribe(fn func(Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Load reads the persisted blob into memory and returns it.
func (s *Store) Load(ctx context.Context) Settings {
	loaded := Defaults()

	raw, err := s.kv.Get(ctx, Key)
	switch {
	case errors.Is(err, persistence.ErrNotFound):
		s.logger.Debug("no saved settings, using defaults")
	case err != nil:
		s.logger.Error("failed to load settings", zap.Error(err))
	default:
		// Fields missing from the blob keep their defaults.
		saved := Defaults()
		if err := json.Unmarshal(raw, &saved); err != nil {
			s.logger.Error("failed to decode settings", zap.Error(err), zap.ByteString("raw", raw))
		} else if err := saved.Validate(); err != nil {
			s.logger.Error("invalid saved settings, using defaults", zap.Error(err), zap.ByteString("raw", raw))
		} else {
			loaded = saved
		}
	}

	s.mu.Lock()
	s.current = loaded
	s.mu.Unlock()
	return loaded
}

// Save persists next and, only if that succeeded, makes it current.
func (s *Store) Save(ctx context.Context, next Settings) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.save(ctx, next)
}

// update applies fn to the current preferences and saves the result
// while holding writeMu.
func (s *Store) update(ctx context.Context, fn func(*Settings)) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next := s.Current()
	fn(&next)
	return s.save(ctx, next)
}

func (s *Store) save(ctx context.Context, next Settings) error {
	data, err := json.Marshal(next)
	if err != nil {
		s.logger.Error("failed to encode settings", zap.Error(err))
		return err
	}
	if err := s.kv.Set(ctx, Key, data); err != nil {
		s.logger.Error("failed to save settings", zap.Error(err), zap.Any("settings", next))
		return err
	}

	s.mu.Lock()
	s.current = next
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(next)
	}
	return nil
}

// UpdateDiceCount saves the current preferences with a new dice count.
func (s *Store) UpdateDiceCount(ctx context.Context, count int) error {
	return s.update(ctx, func(next *Settings) { next.DiceCount = count })
}

// UpdateDiceSize saves the current preferences with a new die size.
func (s *Store) UpdateDiceSize(ctx context.Context, size int) error {
	return s.update(ctx, func(next *Settings) { next.DiceSize = size })
}

// UpdateAnimationSpeed saves the current preferences with a new speed multiplier.
func (s *Store) UpdateAnimationSpeed(ctx context.Context, speed float64) error {
	return s.update(ctx, func(next *Settings) { next.AnimationSpeed = speed })
}

// ResetToDefaults writes each default as its own update. The writes are
// independent: if one fails the others still apply, leaving a mixed record.
func (s *Store) ResetToDefaults(ctx context.Context) error {
	return errors.Join(
		s.UpdateDiceCount(ctx, DefaultDiceCount),
		s.UpdateDiceSize(ctx, DefaultDiceSize),
		s.UpdateAnimationSpeed(ctx, DefaultAnimationSpeed),
	)
}
