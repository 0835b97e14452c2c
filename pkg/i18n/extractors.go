package i18n

import (
	"net/http"
	"slices"
	"strings"
)

// maxLangCodeLength bounds language codes; RFC 5646 recommends 35 characters.
const maxLangCodeLength = 35

// LangExtractor extracts a language code from an HTTP request. It is the
// server-side face of language detection: where a browser would consult
// localStorage and navigator.language, a server consults cookies, query
// parameters and the Accept-Language header.
type LangExtractor func(r *http.Request) string

// langValidator validates and normalizes language codes against a supported
// set.
type langValidator struct {
	supportedLangs []string
}

func newLangValidator(supportedLangs []string) *langValidator {
	normalized := make([]string, len(supportedLangs))
	for i, lang := range supportedLangs {
		normalized[i] = strings.ToLower(lang)
	}
	return &langValidator{supportedLangs: normalized}
}

// validate returns the normalized code when it is supported (directly or via
// its base language), or "" otherwise.
func (v *langValidator) validate(lang string) string {
	if lang == "" || len(lang) > maxLangCodeLength {
		return ""
	}

	normalized := strings.ToLower(lang)

	if len(v.supportedLangs) == 0 {
		return normalized
	}
	if slices.Contains(v.supportedLangs, normalized) {
		return normalized
	}
	if idx := strings.Index(normalized, "-"); idx > 0 {
		if base := normalized[:idx]; slices.Contains(v.supportedLangs, base) {
			return base
		}
	}
	return ""
}

// ExtractorConfig holds configuration for the language extractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
}

// ExtractorOption configures the language extractor.
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie checked for a persisted language choice.
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// WithQueryParamName sets the query parameter checked for a language code.
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupportedLanguages sets the language set candidates are validated
// against.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// DefaultLangExtractor checks sources in priority order: the persisted cookie
// choice first, then an explicit query parameter, then the Accept-Language
// header with RFC 7231 q-value negotiation. The first valid candidate wins;
// "" means no source produced a supported language.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	config := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(config)
	}

	validator := newLangValidator(config.SupportedLangs)

	return func(r *http.Request) string {
		if config.CookieName != "" {
			if cookie, err := r.Cookie(config.CookieName); err == nil {
				if lang := validator.validate(strings.TrimSpace(cookie.Value)); lang != "" {
					return lang
				}
			}
		}

		if config.QueryParamName != "" {
			if lang := validator.validate(strings.TrimSpace(r.URL.Query().Get(config.QueryParamName))); lang != "" {
				return lang
			}
		}

		if header := r.Header.Get("Accept-Language"); header != "" {
			if len(config.SupportedLangs) > 0 {
				return ParseAcceptLanguage(header, config.SupportedLangs, "")
			}
			if langs := parseAcceptLanguageHeader(header); len(langs) > 0 {
				return langs[0].lang
			}
		}

		return ""
	}
}
