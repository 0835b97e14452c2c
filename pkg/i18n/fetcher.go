package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// Fetcher retrieves the translation bundle for a language. Implementations
// must be safe for concurrent use.
type Fetcher interface {
	Fetch(ctx context.Context, lang string) (Bundle, error)
}

// FetcherFunc adapts a plain function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, lang string) (Bundle, error)

// Fetch implements the Fetcher interface.
func (f FetcherFunc) Fetch(ctx context.Context, lang string) (Bundle, error) {
	return f(ctx, lang)
}

// HTTPFetcher loads bundles over HTTP from <baseURL>/<lang>.json.
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
	parser  Parser
}

// HTTPFetcherOption configures an HTTPFetcher.
type HTTPFetcherOption func(*HTTPFetcher)

// WithHTTPClient sets the client used for bundle requests. Nil clients are
// ignored.
func WithHTTPClient(client *http.Client) HTTPFetcherOption {
	return func(f *HTTPFetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// WithHTTPParser overrides the parser applied to response bodies. Nil parsers
// are ignored.
func WithHTTPParser(parser Parser) HTTPFetcherOption {
	return func(f *HTTPFetcher) {
		if parser != nil {
			f.parser = parser
		}
	}
}

// NewHTTPFetcher creates a fetcher for the given base URL, e.g.
// "https://example.com/lang".
func NewHTTPFetcher(baseURL string, opts ...HTTPFetcherOption) *HTTPFetcher {
	f := &HTTPFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  http.DefaultClient,
		parser:  NewJSONParser(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch implements the Fetcher interface.
func (f *HTTPFetcher) Fetch(ctx context.Context, lang string) (Bundle, error) {
	url := f.baseURL + "/" + lang + ".json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return f.parser.Parse(ctx, string(body))
}

// FSFetcher loads bundles from a filesystem, which makes embed.FS-shipped
// bundles and on-disk bundle directories interchangeable. It looks for
// <dir>/<lang>.json, then .yaml, then .yml.
type FSFetcher struct {
	fsys fs.FS
	dir  string
}

// NewFSFetcher creates a fetcher over the given filesystem and directory.
// Use "." for the filesystem root.
func NewFSFetcher(fsys fs.FS, dir string) *FSFetcher {
	return &FSFetcher{fsys: fsys, dir: dir}
}

// Fetch implements the Fetcher interface.
func (f *FSFetcher) Fetch(ctx context.Context, lang string) (Bundle, error) {
	for _, ext := range []string{"json", "yaml", "yml"} {
		name := path.Join(f.dir, lang+"."+ext)
		content, err := fs.ReadFile(f.fsys, name)
		if err != nil {
			continue
		}
		parser := ParserForFile(name)
		if parser == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
		}
		return parser.Parse(ctx, string(content))
	}
	return nil, fmt.Errorf("%w: %s", ErrBundleNotFound, lang)
}

// MapFetcher serves bundles from memory, keyed by language code. Intended for
// tests and embedded defaults.
type MapFetcher map[string]Bundle

// Fetch implements the Fetcher interface.
func (f MapFetcher) Fetch(_ context.Context, lang string) (Bundle, error) {
	b, ok := f[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBundleNotFound, lang)
	}
	return b, nil
}

var _ Fetcher = (*HTTPFetcher)(nil)
var _ Fetcher = (*FSFetcher)(nil)
var _ Fetcher = (MapFetcher)(nil)
var _ Fetcher = (FetcherFunc)(nil)

var errNilFetcher = errors.New("fetcher is nil")
