// Package htmldoc provides a small document manipulation layer over parsed
// HTML. It exposes the Document and Element interfaces that higher-level code
// (such as the i18n engine) programs against, plus a concrete implementation
// backed by golang.org/x/net/html.
//
// The interfaces cover exactly the capabilities a page rewriter needs:
// querying elements by marker attribute or id, reading and writing text, HTML
// content, attributes and class toggles, and accessing document-level slots
// (title, root lang attribute, named meta tags, the page identifier).
//
// # Usage
//
//	doc, err := htmldoc.ParseString(`<html><body data-page="home">...</body></html>`)
//	if err != nil {
//		return err
//	}
//
//	for _, el := range doc.TaggedElements("data-i18n") {
//		key, _ := el.Attr("data-i18n")
//		el.SetText(translate(key))
//	}
//
//	var buf bytes.Buffer
//	if err := doc.Render(&buf); err != nil {
//		return err
//	}
//
// Because consumers depend only on the interfaces, tests can drive the engine
// against real parsed markup without a browser.
package htmldoc
