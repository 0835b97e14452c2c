package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/webglot/webglot/pkg/sanitizer"
)

func TestStripScriptTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain script",
			input:    `before<script>alert(1)</script>after`,
			expected: "beforeafter",
		},
		{
			name:     "script with attributes",
			input:    `<script type="text/javascript" src="x.js">var a=1;</script>ok`,
			expected: "ok",
		},
		{
			name:     "mixed case",
			input:    `<SCRIPT>evil()</SCRIPT>text`,
			expected: "text",
		},
		{
			name:     "multiple scripts",
			input:    `<script>a()</script>mid<script>b()</script>`,
			expected: "mid",
		},
		{
			name:     "no script",
			input:    `<p>hello</p>`,
			expected: `<p>hello</p>`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.StripScriptTags(tt.input))
		})
	}
}

func TestRemoveJavaScriptEvents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "onclick double quoted",
			input:    `<a onclick="steal()">x</a>`,
			expected: `<a>x</a>`,
		},
		{
			name:     "onmouseover single quoted",
			input:    `<div onmouseover='track()'>x</div>`,
			expected: `<div>x</div>`,
		},
		{
			name:     "javascript protocol",
			input:    `<a href="javascript:alert(1)">x</a>`,
			expected: `<a href="alert(1)">x</a>`,
		},
		{
			name:     "spaced javascript protocol",
			input:    `<a href="javascript :alert(1)">x</a>`,
			expected: `<a href="alert(1)">x</a>`,
		},
		{
			name:     "clean markup untouched",
			input:    `<strong>bold</strong>`,
			expected: `<strong>bold</strong>`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.RemoveJavaScriptEvents(tt.input))
		})
	}
}

func TestSanitizeHTML(t *testing.T) {
	t.Parallel()

	input := `We build <strong onclick="steal()">sites</strong><script>evil()</script> and <a href="javascript:x()">apps</a>`
	got := sanitizer.SanitizeHTML(input)

	assert.Equal(t, `We build <strong>sites</strong> and <a href="x()">apps</a>`, got)
}

func TestSanitizeHTMLKeepsEntities(t *testing.T) {
	t.Parallel()

	// The sanitizer produces markup, not escaped text.
	input := `Design &amp; <em>development</em>`
	assert.Equal(t, input, sanitizer.SanitizeHTML(input))
}
