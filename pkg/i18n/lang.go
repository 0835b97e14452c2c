package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Supported language codes. The design targets a small closed set; adding a
// language means shipping its bundle and listing it via WithLanguages.
const (
	LangRU = "ru"
	LangEN = "en"
)

// DefaultLanguage is the fallback when neither a stored preference nor the
// browser locale selects a supported language.
const DefaultLanguage = LangEN

// defaultLanguages returns the supported set for the stock two-language site.
func defaultLanguages() []string {
	return []string{LangRU, LangEN}
}

// DetectLanguage resolves the initial language. A stored preference wins when
// it is a member of the supported set. Otherwise the primary subtag of the
// browser locale is matched against the supported set, and anything
// unrecognized falls back to DefaultLanguage.
//
// The function is pure: no network, no document access.
func DetectLanguage(stored, browserLocale string, supported []string) string {
	if len(supported) == 0 {
		supported = defaultLanguages()
	}

	if stored != "" {
		stored = strings.ToLower(strings.TrimSpace(stored))
		if slices.Contains(supported, stored) {
			return stored
		}
	}

	if tag, err := language.Parse(browserLocale); err == nil {
		base, _ := tag.Base()
		if lang := base.String(); slices.Contains(supported, lang) {
			return lang
		}
	}

	return DefaultLanguage
}

// OGLocale maps a language code to the Open Graph locale tag written into the
// og:locale meta slot.
func OGLocale(lang string) string {
	if lang == LangRU {
		return "ru_RU"
	}
	return "en_US"
}

// maxAcceptLanguageLength bounds header parsing work; RFC 7231 sets no limit
// but legitimate headers never come close to 4KB.
const maxAcceptLanguageLength = 4096

// langWithQ is a language tag paired with its quality value.
type langWithQ struct {
	lang string
	q    float64
}

// parseAcceptLanguageHeader parses Accept-Language per RFC 7231, tolerating
// malformed entries and returning tags sorted by quality descending.
func parseAcceptLanguageHeader(header string) []langWithQ {
	if header == "" {
		return nil
	}

	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var languages []langWithQ

	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		langAndQ := strings.Split(part, ";")
		lang := strings.ToLower(strings.TrimSpace(langAndQ[0]))
		q := 1.0

		if len(langAndQ) > 1 {
			qPart := strings.TrimSpace(langAndQ[1])
			if strings.HasPrefix(qPart, "q=") {
				if qVal, err := strconv.ParseFloat(qPart[2:], 64); err == nil && qVal >= 0 && qVal <= 1 {
					q = qVal
				}
			}
		}

		if lang != "" {
			languages = append(languages, langWithQ{lang: lang, q: q})
		}
	}

	slices.SortFunc(languages, func(a, b langWithQ) int {
		return cmp.Compare(b.q, a.q)
	})

	return languages
}

// ParseAcceptLanguage negotiates the best supported language for an
// Accept-Language header. Exact matches are tried first in quality order
// (en-US matches en-US), then base language matches (en-US matches en). When
// nothing matches it returns defaultLang.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}

	normalizedSupported := make([]string, len(supportedLangs))
	for i, lang := range supportedLangs {
		normalizedSupported[i] = strings.ToLower(lang)
	}

	languages := parseAcceptLanguageHeader(header)

	for _, lq := range languages {
		if slices.Contains(normalizedSupported, lq.lang) {
			return lq.lang
		}
	}

	for _, lq := range languages {
		if idx := strings.Index(lq.lang, "-"); idx > 0 {
			if base := lq.lang[:idx]; slices.Contains(normalizedSupported, base) {
				return base
			}
		}
	}

	return defaultLang
}
