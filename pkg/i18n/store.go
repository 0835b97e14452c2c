package i18n

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
)

// Store owns the single active translation bundle and the current language.
// Both are swapped together, only after a load succeeds, so the bundle and
// the current language are never observably inconsistent: a failed load
// leaves the previous state untouched.
//
// Overlapping loads race at the transport level; the store assigns every load
// a monotonically increasing sequence token and discards any completion that
// is no longer the latest issued, so the last requested language wins
// regardless of response order.
type Store struct {
	fetcher Fetcher
	logger  *slog.Logger

	mu      sync.RWMutex
	bundle  Bundle
	current string
	seq     uint64
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStoreLogger sets the logger for load diagnostics. Nil loggers are
// ignored.
func WithStoreLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates a Store with an empty bundle. The first successful Load
// populates it.
func NewStore(fetcher Fetcher, opts ...StoreOption) *Store {
	s := &Store{
		fetcher: fetcher,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches and activates the bundle for lang. On failure the active
// bundle and current language are left unchanged and the error is both
// logged and returned wrapped in ErrLoadFailed; the caller decides whether
// to surface it. A load outrun by a newer one returns ErrLoadSuperseded and
// changes nothing.
func (s *Store) Load(ctx context.Context, lang string) error {
	if s.fetcher == nil {
		return errors.Join(ErrLoadFailed, errNilFetcher)
	}

	s.mu.Lock()
	s.seq++
	token := s.seq
	s.mu.Unlock()

	bundle, err := s.fetcher.Fetch(ctx, lang)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.seq {
		s.logger.DebugContext(ctx, "discarding superseded bundle load", "lang", lang)
		return ErrLoadSuperseded
	}

	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load translation bundle", "lang", lang, "error", err)
		return errors.Join(ErrLoadFailed, err)
	}

	s.bundle = bundle
	s.current = lang
	s.logger.InfoContext(ctx, "translation bundle loaded", "lang", lang)
	return nil
}

// CurrentLang returns the last successfully applied language, or "" before
// the first load completes.
func (s *Store) CurrentLang() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Bundle returns the active bundle. Callers must treat it as read-only; the
// store replaces it wholesale on the next successful load.
func (s *Store) Bundle() Bundle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bundle
}

// Resolve resolves a dotted key path against the active bundle, falling back
// to the key itself. Safe to call at any point in the lifecycle, including
// before the first load completes.
func (s *Store) Resolve(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bundle.Resolve(key)
}
