// Package i18n implements the internationalization engine behind a
// two-language marketing site: language detection, bundle loading with atomic
// replacement, dotted-key resolution with key fallback, and synchronized
// application of translations to a page document (visible text, HTML
// fragments, input placeholders, metadata and an embedded JSON-LD FAQ block).
//
// The package allows you to:
//
//   - Detect the visitor's language from a persisted preference or a browser
//     locale, with pluggable HTTP extractors (cookie, query parameter,
//     Accept-Language negotiation).
//   - Load translation bundles from HTTP endpoints, any fs.FS (including
//     embed.FS) or in-memory maps, in JSON or YAML form.
//   - Resolve dot-separated key paths against the active bundle; unresolved
//     keys fall back to the key itself so the page never shows blank text.
//   - Rewrite a parsed HTML document in place and keep its <title>, meta
//     tags, Open Graph/Twitter cards and structured-data FAQ in sync with the
//     active language.
//   - Switch languages at runtime, persisting the explicit choice and
//     reporting the switch to an analytics sink.
//
// # Architecture
//
// The Engine owns a Store which holds the single active Bundle. The Store
// delegates transport to a Fetcher implementation and swaps the bundle and
// current language together, only after a load succeeds; a failed load leaves
// both untouched. Overlapping loads are serialized by a sequence token: a
// response that is no longer the latest issued request is discarded, so the
// last requested language always wins.
//
// The Engine mutates pages through the htmldoc.Document interface and never
// touches rendering concerns directly, which keeps it testable headlessly.
//
// # Usage
//
//	eng := i18n.New(i18n.NewHTTPFetcher("https://example.com/lang"),
//		i18n.WithLanguages("ru", "en"),
//		i18n.WithLogger(log),
//	)
//
//	doc, err := htmldoc.ParseString(pageHTML)
//	if err != nil {
//		return err
//	}
//	if err := eng.Init(ctx, doc, r.Header.Get("Accept-Language")); err != nil {
//		return err
//	}
//	doc.Render(w)
//
// A user-initiated switch goes through the same pipeline:
//
//	if err := eng.SetLanguage(ctx, doc, "en"); err != nil {
//		// the page keeps its previous language; only the log records why
//	}
package i18n
