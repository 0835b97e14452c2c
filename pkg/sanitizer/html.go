package sanitizer

import "regexp"

var (
	scriptTagRe = regexp.MustCompile(`(?i)<script\b[^>]*>.*?</script>`)
	eventAttrRe = regexp.MustCompile(`(?i)\s*on\w+\s*=\s*("[^"]*"|'[^']*')`)
	jsProtoRe   = regexp.MustCompile(`(?i)javascript\s*:`)
)

// StripScriptTags removes all <script> tags and their content.
func StripScriptTags(s string) string {
	return scriptTagRe.ReplaceAllString(s, "")
}

// RemoveJavaScriptEvents removes on* event handler attributes and
// javascript: protocols.
func RemoveJavaScriptEvents(s string) string {
	return jsProtoRe.ReplaceAllString(eventAttrRe.ReplaceAllString(s, ""), "")
}

// SanitizeHTML strips active content from an HTML fragment while keeping the
// remaining markup intact. It does not escape entities; the result is meant
// to be inserted as HTML, not as text.
func SanitizeHTML(s string) string {
	return RemoveJavaScriptEvents(StripScriptTags(s))
}
