package i18n

import "strings"

// Bundle is the full translation tree for one language: nested string-keyed
// maps whose leaves are strings, addressed by dot-separated key paths such as
// "form.success". A Bundle is replaced wholesale on a successful load and is
// never merged or patched in place.
type Bundle map[string]any

// PageMeta holds the metadata written into the document head. Optional
// OG/Twitter fields fall back to Title/Description when absent.
type PageMeta struct {
	Title              string
	Description        string
	Keywords           string
	OGTitle            string
	OGDescription      string
	TwitterTitle       string
	TwitterDescription string
}

// FaqEntry is one translated question/answer pair for the structured-data
// FAQ block.
type FaqEntry struct {
	Question string
	Answer   string
}

// Resolve walks the bundle along the dot-separated key path and returns the
// string leaf at its end. Any missing segment, non-map intermediate or
// non-string leaf resolves to the key itself, so callers never render blank
// text. Safe on a nil bundle.
func (b Bundle) Resolve(key string) string {
	val, ok := b.lookup(key)
	if !ok {
		return key
	}
	s, ok := val.(string)
	if !ok {
		return key
	}
	return s
}

// lookup returns the raw value at a dot path.
func (b Bundle) lookup(key string) (any, bool) {
	if len(b) == 0 || key == "" {
		return nil, false
	}

	current := map[string]any(b)
	parts := strings.Split(key, ".")

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		current, ok = asStringMap(val)
		if !ok {
			return nil, false
		}
	}

	return nil, false
}

// section returns the map value at a dot path.
func (b Bundle) section(key string) (map[string]any, bool) {
	val, ok := b.lookup(key)
	if !ok {
		return nil, false
	}
	return asStringMap(val)
}

// PageMeta selects the metadata for a page: the per-page override under
// pages.<pageID>.meta when present, otherwise the bundle's global meta block.
// The second result is false when neither exists.
func (b Bundle) PageMeta(pageID string) (PageMeta, bool) {
	if pageID != "" {
		if m, ok := b.section("pages." + pageID + ".meta"); ok {
			return decodePageMeta(m), true
		}
	}
	if m, ok := b.section("meta"); ok {
		return decodePageMeta(m), true
	}
	return PageMeta{}, false
}

// PageFAQ returns the translated FAQ pairs for a page from
// pages.<pageID>.jsonld.faq, or nil when the page has none. Entries that are
// not objects with string question/answer fields are skipped.
func (b Bundle) PageFAQ(pageID string) []FaqEntry {
	if pageID == "" {
		return nil
	}

	raw, ok := b.lookup("pages." + pageID + ".jsonld.faq")
	if !ok {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil
	}

	entries := make([]FaqEntry, 0, len(items))
	for _, item := range items {
		m, ok := asStringMap(item)
		if !ok {
			continue
		}
		q, qok := m["question"].(string)
		a, aok := m["answer"].(string)
		if !qok || !aok {
			continue
		}
		entries = append(entries, FaqEntry{Question: q, Answer: a})
	}
	if len(entries) == 0 {
		return nil
	}
	return entries
}

func decodePageMeta(m map[string]any) PageMeta {
	str := func(key string) string {
		s, _ := m[key].(string)
		return s
	}
	return PageMeta{
		Title:              str("title"),
		Description:        str("description"),
		Keywords:           str("keywords"),
		OGTitle:            str("ogTitle"),
		OGDescription:      str("ogDescription"),
		TwitterTitle:       str("twitterTitle"),
		TwitterDescription: str("twitterDescription"),
	}
}

// asStringMap normalizes nested maps; YAML decoding may yield map[any]any.
func asStringMap(val any) (map[string]any, bool) {
	switch m := val.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		converted := make(map[string]any, len(m))
		for k, v := range m {
			if ks, ok := k.(string); ok {
				converted[ks] = v
			}
		}
		return converted, true
	default:
		return nil, false
	}
}
