// Package sanitizer provides HTML sanitization helpers for content that must
// stay HTML after cleaning. Translation bundles are fetched over the network
// and their HTML-fragment values are written into the page, so active content
// (script tags, event handler attributes, javascript: URLs) is stripped
// before insertion while regular markup passes through unchanged.
package sanitizer
