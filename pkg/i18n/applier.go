package i18n

import (
	"encoding/json"

	"github.com/webglot/webglot/pkg/htmldoc"
)

// Marker attributes owned by the page markup. Elements carrying one get the
// resolved value of the key in the attribute written into them on Apply.
const (
	// AttrText marks elements whose text content is translated.
	AttrText = "data-i18n"
	// AttrHTML marks elements whose HTML content is translated.
	AttrHTML = "data-i18n-html"
	// AttrPlaceholder marks inputs whose placeholder is translated.
	AttrPlaceholder = "data-i18n-placeholder"
	// AttrLang marks language-switch controls with the code they select.
	AttrLang = "data-lang"
)

// DefaultFAQScriptID is the id of the structured-data script element the FAQ
// synchronizer rewrites.
const DefaultFAQScriptID = "jsonld-faq"

// Apply re-synchronizes the document against the active bundle: tagged text,
// HTML and placeholder elements first, then document metadata, then the
// structured-data FAQ block. Calling it repeatedly with the same bundle
// produces the same document state.
func (e *Engine) Apply(doc htmldoc.Document) {
	for _, el := range doc.TaggedElements(AttrText) {
		if key, ok := el.Attr(AttrText); ok {
			el.SetText(e.store.Resolve(key))
		}
	}

	for _, el := range doc.TaggedElements(AttrHTML) {
		key, ok := el.Attr(AttrHTML)
		if !ok {
			continue
		}
		content := e.store.Resolve(key)
		if e.sanitize != nil {
			content = e.sanitize(content)
		}
		if err := el.SetHTML(content); err != nil {
			e.logger.Warn("failed to apply HTML translation", "key", key, "error", err)
		}
	}

	for _, el := range doc.TaggedElements(AttrPlaceholder) {
		if key, ok := el.Attr(AttrPlaceholder); ok {
			el.SetAttr("placeholder", e.store.Resolve(key))
		}
	}

	e.syncMeta(doc)
	e.syncJSONLD(doc)
}

// syncMeta writes page metadata: the per-page override when the page declares
// one, the global meta block otherwise, nothing when the bundle has neither.
// Every target slot is independently guarded; metadata tags absent from the
// document are skipped.
func (e *Engine) syncMeta(doc htmldoc.Document) {
	meta, ok := e.store.Bundle().PageMeta(doc.PageID())
	if !ok {
		return
	}

	lang := e.store.CurrentLang()
	doc.SetLang(lang)
	doc.SetTitle(meta.Title)

	writeContent(doc.MetaByName("description"))(meta.Description)
	writeContent(doc.MetaByName("keywords"))(meta.Keywords)
	writeContent(doc.MetaByProperty("og:title"))(fallback(meta.OGTitle, meta.Title))
	writeContent(doc.MetaByProperty("og:description"))(fallback(meta.OGDescription, meta.Description))
	writeContent(doc.MetaByProperty("og:locale"))(OGLocale(lang))
	writeContent(doc.MetaByName("twitter:title"))(fallback(meta.TwitterTitle, meta.Title))
	writeContent(doc.MetaByName("twitter:description"))(fallback(meta.TwitterDescription, meta.Description))
}

// syncJSONLD merges the page's translated FAQ pairs into the pre-existing
// JSON-LD script block, replacing only its mainEntity field. A missing block
// or unparseable content is skipped silently; the block is cosmetic and must
// never break the page.
func (e *Engine) syncJSONLD(doc htmldoc.Document) {
	faq := e.store.Bundle().PageFAQ(doc.PageID())
	if len(faq) == 0 {
		return
	}

	el, ok := doc.ElementByID(e.faqScriptID)
	if !ok {
		return
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(el.Text()), &data); err != nil {
		e.logger.Debug("skipping malformed structured-data block", "id", e.faqScriptID, "error", err)
		return
	}

	entities := make([]any, 0, len(faq))
	for _, entry := range faq {
		entities = append(entities, map[string]any{
			"@type": "Question",
			"name":  entry.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  entry.Answer,
			},
		})
	}
	data["mainEntity"] = entities

	out, err := json.Marshal(data)
	if err != nil {
		return
	}
	el.SetText(string(out))
}

// writeContent returns a setter for a meta element's content attribute that
// does nothing when the element is absent.
func writeContent(el htmldoc.Element, ok bool) func(string) {
	return func(value string) {
		if ok {
			el.SetAttr("content", value)
		}
	}
}

func fallback(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
