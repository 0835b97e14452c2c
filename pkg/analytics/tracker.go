package analytics

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"github.com/google/uuid"
)

// Event names emitted by the site. The i18n engine emits EventLangSwitch;
// the page widgets emit the rest.
const (
	EventLangSwitch      = "lang_switch"
	EventFormSubmit      = "form_submit"
	EventFAQOpen         = "faq_open"
	EventPortfolioFilter = "portfolio_filter"
	EventSectionView     = "section_view"
)

// Tracker receives named events with a flat parameter map. Implementations
// must not panic and must not surface errors to the caller.
type Tracker interface {
	Track(ctx context.Context, event string, params map[string]string)
}

// TrackerFunc adapts a plain function to the Tracker interface.
type TrackerFunc func(ctx context.Context, event string, params map[string]string)

// Track implements the Tracker interface.
func (f TrackerFunc) Track(ctx context.Context, event string, params map[string]string) {
	f(ctx, event, params)
}

// Noop returns a tracker that discards every event.
func Noop() Tracker {
	return TrackerFunc(func(context.Context, string, map[string]string) {})
}

// LogTracker writes one structured log record per event. Each event gets a
// generated id so downstream aggregation can deduplicate records.
type LogTracker struct {
	logger *slog.Logger
}

// NewLogTracker creates a LogTracker. A nil logger falls back to slog.Default.
func NewLogTracker(logger *slog.Logger) *LogTracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogTracker{logger: logger}
}

// Track implements the Tracker interface.
func (t *LogTracker) Track(ctx context.Context, event string, params map[string]string) {
	t.logger.InfoContext(ctx, "analytics event",
		"event_id", uuid.NewString(),
		"event", event,
		"params", params,
	)
}

// Event is a captured analytics event.
type Event struct {
	ID     string
	Name   string
	Params map[string]string
}

// MemoryTracker captures events in memory. Intended for tests.
type MemoryTracker struct {
	mu     sync.Mutex
	events []Event
}

// NewMemoryTracker creates an empty MemoryTracker.
func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{}
}

// Track implements the Tracker interface.
func (t *MemoryTracker) Track(_ context.Context, event string, params map[string]string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, Event{
		ID:     uuid.NewString(),
		Name:   event,
		Params: maps.Clone(params),
	})
}

// Events returns a snapshot of the captured events.
func (t *MemoryTracker) Events() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}
