package htmldoc

import "io"

// PageAttr is the attribute on <body> that carries the page identifier used
// to select per-page metadata and structured-data overrides.
const PageAttr = "data-page"

// Element is a single mutable element of a document.
type Element interface {
	// Attr returns the value of the named attribute and whether it is set.
	Attr(name string) (string, bool)

	// SetAttr sets the named attribute, replacing any existing value.
	SetAttr(name, value string)

	// Text returns the concatenated text content of the element.
	Text() string

	// SetText replaces the element's content with a single text node.
	SetText(text string)

	// SetHTML replaces the element's content with the parsed fragment.
	SetHTML(fragment string) error

	// SetClass adds or removes a single class token.
	SetClass(name string, on bool)
}

// Document is the capability surface a page rewriter needs. Implementations
// are not safe for concurrent mutation.
type Document interface {
	// TaggedElements returns every element carrying the given attribute, in
	// document order.
	TaggedElements(attr string) []Element

	// ElementByID returns the first element whose id attribute equals id.
	ElementByID(id string) (Element, bool)

	// MetaByName returns the first <meta> tag whose name attribute matches.
	MetaByName(name string) (Element, bool)

	// MetaByProperty returns the first <meta> tag whose property attribute
	// matches (Open Graph style tags).
	MetaByProperty(property string) (Element, bool)

	// Title returns the current document title, or "" when absent.
	Title() string

	// SetTitle sets the document title, creating the <title> element in
	// <head> when it does not exist yet.
	SetTitle(title string)

	// Lang returns the lang attribute of the root element.
	Lang() string

	// SetLang sets the lang attribute on the root element.
	SetLang(lang string)

	// PageID returns the page identifier from the body's data-page
	// attribute, or "" when the page does not declare one.
	PageID() string

	// Render serializes the document as HTML.
	Render(w io.Writer) error
}
