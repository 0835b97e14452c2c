package htmldoc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webglot/webglot/pkg/htmldoc"
)

const fixture = `<!DOCTYPE html>
<html lang="ru">
<head>
<title>Главная</title>
<meta name="description" content="описание">
<meta property="og:title" content="og заголовок">
</head>
<body data-page="home">
<h1 data-i18n="hero.title" class="hero__title">Заголовок</h1>
<p data-i18n="hero.lead">Первый <em>абзац</em></p>
<div id="faq-list"></div>
</body>
</html>`

func parse(t *testing.T, s string) *htmldoc.HTMLDocument {
	t.Helper()
	doc, err := htmldoc.ParseString(s)
	require.NoError(t, err)
	return doc
}

func TestParseAndRender(t *testing.T) {
	t.Parallel()

	doc := parse(t, fixture)

	var sb strings.Builder
	require.NoError(t, doc.Render(&sb))
	out := sb.String()

	assert.Contains(t, out, `<html lang="ru">`)
	assert.Contains(t, out, `data-page="home"`)

	str, err := doc.HTML()
	require.NoError(t, err)
	assert.Equal(t, out, str)
}

func TestTaggedElements(t *testing.T) {
	t.Parallel()

	doc := parse(t, fixture)

	els := doc.TaggedElements("data-i18n")
	require.Len(t, els, 2)

	key, ok := els[0].Attr("data-i18n")
	require.True(t, ok)
	assert.Equal(t, "hero.title", key)
	assert.Equal(t, "Заголовок", els[0].Text())

	// Nested markup flattens to the concatenated text.
	assert.Equal(t, "Первый абзац", els[1].Text())

	assert.Empty(t, doc.TaggedElements("data-missing"))
}

func TestElementByID(t *testing.T) {
	t.Parallel()

	doc := parse(t, fixture)

	el, ok := doc.ElementByID("faq-list")
	require.True(t, ok)
	assert.Empty(t, el.Text())

	_, ok = doc.ElementByID("nope")
	assert.False(t, ok)
}

func TestMetaLookup(t *testing.T) {
	t.Parallel()

	doc := parse(t, fixture)

	el, ok := doc.MetaByName("description")
	require.True(t, ok)
	content, _ := el.Attr("content")
	assert.Equal(t, "описание", content)

	el, ok = doc.MetaByProperty("og:title")
	require.True(t, ok)
	content, _ = el.Attr("content")
	assert.Equal(t, "og заголовок", content)

	_, ok = doc.MetaByName("og:title")
	assert.False(t, ok, "property metas must not match by name")

	_, ok = doc.MetaByProperty("description")
	assert.False(t, ok)
}

func TestTitle(t *testing.T) {
	t.Parallel()

	doc := parse(t, fixture)
	assert.Equal(t, "Главная", doc.Title())

	doc.SetTitle("Home")
	assert.Equal(t, "Home", doc.Title())
}

func TestSetTitleCreatesElement(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<html><head></head><body></body></html>`)
	assert.Empty(t, doc.Title())

	doc.SetTitle("Created")
	assert.Equal(t, "Created", doc.Title())

	out, err := doc.HTML()
	require.NoError(t, err)
	assert.Contains(t, out, "<title>Created</title>")
}

func TestLang(t *testing.T) {
	t.Parallel()

	doc := parse(t, fixture)
	assert.Equal(t, "ru", doc.Lang())

	doc.SetLang("en")
	assert.Equal(t, "en", doc.Lang())
}

func TestPageID(t *testing.T) {
	t.Parallel()

	doc := parse(t, fixture)
	assert.Equal(t, "home", doc.PageID())

	doc = parse(t, `<html><body></body></html>`)
	assert.Empty(t, doc.PageID())
}

func TestSetText(t *testing.T) {
	t.Parallel()

	doc := parse(t, fixture)
	els := doc.TaggedElements("data-i18n")
	require.Len(t, els, 2)

	// Replacing text drops any previous child markup.
	els[1].SetText("Plain")
	assert.Equal(t, "Plain", els[1].Text())

	out, err := doc.HTML()
	require.NoError(t, err)
	assert.NotContains(t, out, "<em>")
}

func TestSetHTML(t *testing.T) {
	t.Parallel()

	doc := parse(t, fixture)
	el, ok := doc.ElementByID("faq-list")
	require.True(t, ok)

	require.NoError(t, el.SetHTML(`Built with <strong>care</strong> &amp; speed`))
	assert.Equal(t, "Built with care & speed", el.Text())

	out, err := doc.HTML()
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>care</strong>")
}

func TestSetHTMLReplacesExisting(t *testing.T) {
	t.Parallel()

	doc := parse(t, fixture)
	els := doc.TaggedElements("data-i18n")
	require.Len(t, els, 2)

	require.NoError(t, els[1].SetHTML(`<span>new</span>`))
	assert.Equal(t, "new", els[1].Text())

	out, err := doc.HTML()
	require.NoError(t, err)
	assert.NotContains(t, out, "Первый")
}

func TestSetAttr(t *testing.T) {
	t.Parallel()

	doc := parse(t, fixture)
	els := doc.TaggedElements("data-i18n")
	require.Len(t, els, 2)

	els[0].SetAttr("data-i18n", "hero.heading")
	v, ok := els[0].Attr("data-i18n")
	require.True(t, ok)
	assert.Equal(t, "hero.heading", v)

	els[0].SetAttr("aria-level", "1")
	v, ok = els[0].Attr("aria-level")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestSetClass(t *testing.T) {
	t.Parallel()

	doc := parse(t, fixture)
	els := doc.TaggedElements("data-i18n")
	require.Len(t, els, 2)
	el := els[0]

	el.SetClass("active", true)
	class, _ := el.Attr("class")
	assert.Equal(t, "hero__title active", class)

	// Toggling on twice does not duplicate the class.
	el.SetClass("active", true)
	class, _ = el.Attr("class")
	assert.Equal(t, "hero__title active", class)

	el.SetClass("active", false)
	class, _ = el.Attr("class")
	assert.Equal(t, "hero__title", class)

	// Removing an absent class keeps the attribute untouched.
	el.SetClass("active", false)
	class, _ = el.Attr("class")
	assert.Equal(t, "hero__title", class)
}

func TestParseToleratesSloppyMarkup(t *testing.T) {
	t.Parallel()

	// html5 parsing recovers from unclosed tags instead of failing.
	doc, err := htmldoc.ParseString(`<html><body><p data-i18n="a">text`)
	require.NoError(t, err)
	assert.Len(t, doc.TaggedElements("data-i18n"), 1)
}
