package i18n

import (
	"context"
	"strings"
)

// Parser turns raw bundle content in some file format into a Bundle.
type Parser interface {
	// Parse processes the content of a single-language bundle.
	Parse(ctx context.Context, content string) (Bundle, error)

	// SupportsFileExtension reports whether the parser handles files with the
	// given extension. The extension may carry a leading dot.
	SupportsFileExtension(ext string) bool
}

// ParserForFile returns a parser based on the file extension, or nil for
// unsupported formats.
func ParserForFile(filename string) Parser {
	ext := filename
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		ext = filename[idx+1:]
	}

	switch strings.ToLower(ext) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}
