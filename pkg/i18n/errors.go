package i18n

import "errors"

// Package errors separate transport, parse and supersession outcomes so
// callers can distinguish a genuinely failed load from one that was simply
// outrun by a newer request.
var (
	// Bundle loading
	ErrLoadFailed       = errors.New("failed to load translation bundle")
	ErrLoadSuperseded   = errors.New("translation load superseded by a newer request")
	ErrBundleNotFound   = errors.New("translation bundle not found")
	ErrUnexpectedStatus = errors.New("unexpected response status for translation bundle")

	// Parsing
	ErrParsingCancelled  = errors.New("bundle parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON bundle")
	ErrFailedToParseYAML = errors.New("failed to parse YAML bundle")
	ErrUnsupportedFormat = errors.New("unsupported bundle file format")
)
