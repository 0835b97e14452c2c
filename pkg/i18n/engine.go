package i18n

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/webglot/webglot/pkg/analytics"
	"github.com/webglot/webglot/pkg/htmldoc"
	"github.com/webglot/webglot/pkg/sanitizer"
)

// Engine ties the pieces together: detection seeds the store, the store owns
// the active bundle, and the applier rewrites documents from it. An Engine
// holds no document state, so one engine can rewrite any number of documents
// and independent instances can coexist (one per test, one per request).
type Engine struct {
	store       *Store
	prefs       PreferenceStore
	tracker     analytics.Tracker
	sanitize    func(string) string
	logger      *slog.Logger
	supported   []string
	faqScriptID string
}

// New creates an Engine around the given fetcher. Defaults: ru/en language
// set, in-memory preferences, discarded analytics and logs, and the
// sanitizer package's HTML hook.
func New(fetcher Fetcher, opts ...Option) *Engine {
	e := &Engine{
		prefs:       NewMemoryPreferences(),
		tracker:     analytics.Noop(),
		sanitize:    sanitizer.SanitizeHTML,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		supported:   defaultLanguages(),
		faqScriptID: DefaultFAQScriptID,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.store = NewStore(fetcher, WithStoreLogger(e.logger))
	return e
}

// Store returns the engine's translation store.
func (e *Engine) Store() *Store {
	return e.store
}

// CurrentLang returns the last successfully applied language.
func (e *Engine) CurrentLang() string {
	return e.store.CurrentLang()
}

// T resolves a dotted key path against the active bundle. This is the only
// surface the page widgets (form status, accordion labels) consume.
func (e *Engine) T(key string) string {
	return e.store.Resolve(key)
}

// SupportedLanguages returns the configured language set.
func (e *Engine) SupportedLanguages() []string {
	return e.supported
}

// Init runs the startup pipeline: detect the language from the persisted
// preference and the browser locale, load its bundle, and synchronize the
// document. Unlike a runtime switch, a failed initial load does not touch the
// document at all; the page keeps its authored content instead of being
// stomped with raw keys.
func (e *Engine) Init(ctx context.Context, doc htmldoc.Document, browserLocale string) error {
	stored, _ := e.prefs.Preferred()
	lang := DetectLanguage(stored, browserLocale, e.supported)

	if err := e.store.Load(ctx, lang); err != nil {
		return err
	}

	e.Apply(doc)
	e.refreshSwitcher(doc)
	return nil
}

// SetLanguage performs a user-initiated switch. It is a no-op when lang is
// already the current language. Otherwise it loads the bundle and re-applies
// the document on success and failure alike (on failure the unchanged old
// bundle is reapplied, which is wasted work but not a correctness issue).
// Only on success does it persist the choice, refresh the switcher controls
// and emit the lang_switch analytics event.
//
// A switch outrun by a newer one returns ErrLoadSuperseded without touching
// the document; the newer switch owns the pipeline.
func (e *Engine) SetLanguage(ctx context.Context, doc htmldoc.Document, lang string) error {
	if lang == e.store.CurrentLang() {
		return nil
	}

	err := e.store.Load(ctx, lang)
	if errors.Is(err, ErrLoadSuperseded) {
		return err
	}

	e.Apply(doc)

	if err != nil {
		return err
	}

	if perr := e.prefs.SetPreferred(lang); perr != nil {
		e.logger.WarnContext(ctx, "failed to persist language preference", "lang", lang, "error", perr)
	}

	e.refreshSwitcher(doc)
	e.tracker.Track(ctx, analytics.EventLangSwitch, map[string]string{"lang": lang})
	return nil
}

// refreshSwitcher marks the control matching the current language active and
// all others inactive.
func (e *Engine) refreshSwitcher(doc htmldoc.Document) {
	current := e.store.CurrentLang()
	for _, el := range doc.TaggedElements(AttrLang) {
		v, _ := el.Attr(AttrLang)
		el.SetClass("active", v == current)
	}
}
