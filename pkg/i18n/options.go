package i18n

import (
	"log/slog"

	"github.com/webglot/webglot/pkg/analytics"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLanguages sets the supported language set. Empty calls are ignored.
func WithLanguages(langs ...string) Option {
	return func(e *Engine) {
		if len(langs) > 0 {
			e.supported = langs
		}
	}
}

// WithLogger sets the logger for engine and store diagnostics. Nil loggers
// are ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithPreferences sets the store for the visitor's persisted language choice.
// Nil stores are ignored.
func WithPreferences(prefs PreferenceStore) Option {
	return func(e *Engine) {
		if prefs != nil {
			e.prefs = prefs
		}
	}
}

// WithTracker sets the analytics sink notified on successful switches. Nil
// trackers are ignored.
func WithTracker(tracker analytics.Tracker) Option {
	return func(e *Engine) {
		if tracker != nil {
			e.tracker = tracker
		}
	}
}

// WithHTMLSanitizer replaces the hook applied to HTML-fragment translations
// before insertion. Passing nil disables sanitization for bundles whose HTML
// is authored pre-sanitized.
func WithHTMLSanitizer(fn func(string) string) Option {
	return func(e *Engine) {
		e.sanitize = fn
	}
}

// WithFAQScriptID overrides the id of the structured-data script element the
// FAQ synchronizer rewrites. Empty ids are ignored.
func WithFAQScriptID(id string) Option {
	return func(e *Engine) {
		if id != "" {
			e.faqScriptID = id
		}
	}
}
