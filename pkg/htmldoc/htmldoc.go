package htmldoc

import (
	"errors"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrParseFailed wraps parser errors for malformed input streams.
var ErrParseFailed = errors.New("failed to parse HTML document")

// HTMLDocument implements Document over a tree parsed by golang.org/x/net/html.
type HTMLDocument struct {
	root *html.Node
}

// Parse reads and parses a full HTML document.
func Parse(r io.Reader) (*HTMLDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Join(ErrParseFailed, err)
	}
	return &HTMLDocument{root: root}, nil
}

// ParseString parses a document from a string.
func ParseString(s string) (*HTMLDocument, error) {
	return Parse(strings.NewReader(s))
}

// Render implements Document.
func (d *HTMLDocument) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// HTML serializes the document into a string.
func (d *HTMLDocument) HTML() (string, error) {
	var sb strings.Builder
	if err := d.Render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// TaggedElements implements Document.
func (d *HTMLDocument) TaggedElements(attr string) []Element {
	var els []Element
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if _, ok := getAttr(n, attr); ok {
				els = append(els, &element{n: n})
			}
		}
		return true
	})
	return els
}

// ElementByID implements Document.
func (d *HTMLDocument) ElementByID(id string) (Element, bool) {
	n := d.findFirst(func(n *html.Node) bool {
		v, ok := getAttr(n, "id")
		return ok && v == id
	})
	if n == nil {
		return nil, false
	}
	return &element{n: n}, true
}

// MetaByName implements Document.
func (d *HTMLDocument) MetaByName(name string) (Element, bool) {
	return d.meta("name", name)
}

// MetaByProperty implements Document.
func (d *HTMLDocument) MetaByProperty(property string) (Element, bool) {
	return d.meta("property", property)
}

func (d *HTMLDocument) meta(attr, value string) (Element, bool) {
	n := d.findFirst(func(n *html.Node) bool {
		if n.DataAtom != atom.Meta {
			return false
		}
		v, ok := getAttr(n, attr)
		return ok && v == value
	})
	if n == nil {
		return nil, false
	}
	return &element{n: n}, true
}

// Title implements Document.
func (d *HTMLDocument) Title() string {
	if n := d.elementNode(atom.Title); n != nil {
		return (&element{n: n}).Text()
	}
	return ""
}

// SetTitle implements Document.
func (d *HTMLDocument) SetTitle(title string) {
	n := d.elementNode(atom.Title)
	if n == nil {
		head := d.elementNode(atom.Head)
		if head == nil {
			return
		}
		n = &html.Node{Type: html.ElementNode, DataAtom: atom.Title, Data: "title"}
		head.AppendChild(n)
	}
	(&element{n: n}).SetText(title)
}

// Lang implements Document.
func (d *HTMLDocument) Lang() string {
	if n := d.elementNode(atom.Html); n != nil {
		v, _ := getAttr(n, "lang")
		return v
	}
	return ""
}

// SetLang implements Document.
func (d *HTMLDocument) SetLang(lang string) {
	if n := d.elementNode(atom.Html); n != nil {
		setAttr(n, "lang", lang)
	}
}

// PageID implements Document.
func (d *HTMLDocument) PageID() string {
	if n := d.elementNode(atom.Body); n != nil {
		v, _ := getAttr(n, PageAttr)
		return v
	}
	return ""
}

func (d *HTMLDocument) elementNode(a atom.Atom) *html.Node {
	return d.findFirst(func(n *html.Node) bool { return n.DataAtom == a })
}

func (d *HTMLDocument) findFirst(match func(*html.Node) bool) *html.Node {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && match(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// walk visits nodes depth-first until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

func getAttr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, name, value string) {
	for i, a := range n.Attr {
		if a.Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

type element struct {
	n *html.Node
}

func (e *element) Attr(name string) (string, bool) {
	return getAttr(e.n, name)
}

func (e *element) SetAttr(name, value string) {
	setAttr(e.n, name, value)
}

func (e *element) Text() string {
	var sb strings.Builder
	walk(e.n, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		return true
	})
	return sb.String()
}

func (e *element) SetText(text string) {
	e.removeChildren()
	e.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func (e *element) SetHTML(fragment string) error {
	// The fragment is parsed in a neutral div context; the element's own tag
	// only matters for table-scoped content, which translations never carry.
	ctx := &html.Node{Type: html.ElementNode, DataAtom: atom.Div, Data: "div"}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return errors.Join(ErrParseFailed, err)
	}
	e.removeChildren()
	for _, n := range nodes {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		e.n.AppendChild(n)
	}
	return nil
}

func (e *element) SetClass(name string, on bool) {
	current, _ := getAttr(e.n, "class")
	classes := strings.Fields(current)
	has := slices.Contains(classes, name)
	switch {
	case on && !has:
		classes = append(classes, name)
	case !on && has:
		classes = slices.DeleteFunc(classes, func(c string) bool { return c == name })
	default:
		return
	}
	setAttr(e.n, "class", strings.Join(classes, " "))
}

func (e *element) removeChildren() {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		c = next
	}
}
