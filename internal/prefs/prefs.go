package prefs

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/verte-zerg/akshara/internal/model"
)

// Key is the backend key holding the typing configuration.
const Key = "typing-prefs"

// Store loads and saves the typing configuration. Every failure is treated
// as a cache miss and logged, never returned.
type Store struct {
	backend Backend
}

// New wraps a backend.
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load returns the stored configuration, or false when nothing usable is
// stored.
func (s *Store) Load(ctx context.Context) (model.Config, bool) {
	if s == nil || s.backend == nil {
		return model.Config{}, false
	}
	raw, ok, err := s.backend.Get(ctx, Key)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load preferences")
		return model.Config{}, false
	}
	if !ok {
		return model.Config{}, false
	}
	var cfg model.Config
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		log.Warn().Err(err).Msg("ignoring unreadable preferences")
		return model.Config{}, false
	}
	return cfg.Normalize(), true
}

// LoadOr returns the stored configuration or fallback.
func (s *Store) LoadOr(ctx context.Context, fallback model.Config) model.Config {
	if cfg, ok := s.Load(ctx); ok {
		return cfg
	}
	return fallback
}

// Save stores cfg.
func (s *Store) Save(ctx context.Context, cfg model.Config) {
	if s == nil || s.backend == nil {
		return
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("failed to encode preferences")
		return
	}
	if err := s.backend.Set(ctx, Key, string(raw)); err != nil {
		log.Warn().Err(err).Msg("failed to save preferences")
	}
}

// Clear removes the stored configuration.
func (s *Store) Clear(ctx context.Context) error {
	if s == nil || s.backend == nil {
		return nil
	}
	return s.backend.Delete(ctx, Key)
}

// Close closes the backend.
func (s *Store) Close() error {
	if s == nil || s.backend == nil {
		return nil
	}
	return s.backend.Close()
}
