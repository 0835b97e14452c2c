package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/webglot/webglot/pkg/analytics"
	"github.com/webglot/webglot/pkg/htmldoc"
	"github.com/webglot/webglot/pkg/httpserver"
	"github.com/webglot/webglot/pkg/i18n"
	"github.com/webglot/webglot/pkg/logger"
)

// site serves the marketing site: static assets as-is, HTML pages rewritten
// by the i18n engine into the visitor's language, and the raw translation
// bundles for clients that want them.
type site struct {
	siteFS      fs.FS
	fetcher     i18n.Fetcher
	tracker     analytics.Tracker
	logger      *slog.Logger
	languages   []string
	defaultLang string
	cookieName  string
}

func (s *site) routes(ctx context.Context) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	// The middleware negotiates Accept-Language only; the persisted cookie
	// choice goes through the engine's preference store so that detection
	// priority (stored choice first) stays in one place.
	r.Use(i18n.Middleware(func(r *http.Request) string {
		return i18n.ParseAcceptLanguage(r.Header.Get("Accept-Language"), s.languages, s.defaultLang)
	}))

	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, s.logger))
	r.Get("/lang/{code}.json", s.serveBundle)
	r.Get("/*", s.servePage)
	return r
}

// serveBundle answers GET /lang/<code>.json with the bundle for a supported
// language.
func (s *site) serveBundle(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if !slices.Contains(s.languages, code) {
		http.NotFound(w, r)
		return
	}

	bundle, err := s.fetcher.Fetch(r.Context(), code)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "failed to fetch bundle", "lang", code, logger.Error(err))
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(bundle); err != nil {
		s.logger.ErrorContext(r.Context(), "failed to encode bundle", "lang", code, logger.Error(err))
	}
}

// servePage serves site files. HTML pages run through the i18n pipeline:
// detect (cookie choice, then negotiated browser locale), load the bundle,
// rewrite the document; an explicit ?lang= switch persists the choice in the
// cookie and reports it to analytics. When the pipeline fails the page is
// served untouched in its authored language.
func (s *site) servePage(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
	if name == "" || name == "." {
		name = "index.html"
	}
	if path.Ext(name) == "" {
		name += ".html"
	}

	if path.Ext(name) != ".html" {
		r.URL.Path = "/" + name
		http.FileServer(http.FS(s.siteFS)).ServeHTTP(w, r)
		return
	}

	content, err := fs.ReadFile(s.siteFS, name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	doc, err := htmldoc.Parse(bytes.NewReader(content))
	if err != nil {
		s.logger.ErrorContext(r.Context(), "failed to parse page", "page", name, logger.Error(err))
		s.serveRaw(w, content)
		return
	}

	prefs := &cookiePrefs{r: r, w: w, name: s.cookieName}
	eng := i18n.New(s.fetcher,
		i18n.WithLanguages(s.languages...),
		i18n.WithLogger(s.logger),
		i18n.WithTracker(s.tracker),
		i18n.WithPreferences(prefs),
	)

	if err := eng.Init(r.Context(), doc, i18n.GetLocale(r.Context())); err != nil {
		s.logger.ErrorContext(r.Context(), "i18n init failed, serving page untranslated", "page", name, logger.Error(err))
		s.serveRaw(w, content)
		return
	}

	if q := r.URL.Query().Get("lang"); q != "" && q != eng.CurrentLang() && slices.Contains(s.languages, q) {
		if err := eng.SetLanguage(r.Context(), doc, q); err != nil {
			s.logger.WarnContext(r.Context(), "language switch failed", "lang", q, logger.Error(err))
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := doc.Render(w); err != nil {
		s.logger.ErrorContext(r.Context(), "failed to render page", "page", name, logger.Error(err))
	}
}

func (s *site) serveRaw(w http.ResponseWriter, content []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(content)
}
