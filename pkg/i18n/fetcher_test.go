package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webglot/webglot/pkg/i18n"
)

func TestHTTPFetcher(t *testing.T) {
	t.Parallel()

	t.Run("fetches and parses bundle", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/lang/en.json", r.URL.Path)
			w.Write([]byte(`{"form":{"success":"OK"}}`))
		}))
		defer srv.Close()

		fetcher := i18n.NewHTTPFetcher(srv.URL + "/lang/")
		bundle, err := fetcher.Fetch(context.Background(), "en")
		require.NoError(t, err)
		assert.Equal(t, "OK", bundle.Resolve("form.success"))
	})

	t.Run("non-success status", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		fetcher := i18n.NewHTTPFetcher(srv.URL)
		_, err := fetcher.Fetch(context.Background(), "en")
		assert.ErrorIs(t, err, i18n.ErrUnexpectedStatus)
	})

	t.Run("unparseable body", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		}))
		defer srv.Close()

		fetcher := i18n.NewHTTPFetcher(srv.URL)
		_, err := fetcher.Fetch(context.Background(), "en")
		assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("transport error", func(t *testing.T) {
		t.Parallel()
		fetcher := i18n.NewHTTPFetcher("http://127.0.0.1:1")
		_, err := fetcher.Fetch(context.Background(), "en")
		assert.Error(t, err)
	})
}

func TestFSFetcher(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"lang/en.json": {Data: []byte(`{"form":{"success":"OK"}}`)},
		"lang/ru.yaml": {Data: []byte("form:\n  success: Готово\n")},
	}

	fetcher := i18n.NewFSFetcher(fsys, "lang")

	t.Run("json bundle", func(t *testing.T) {
		t.Parallel()
		bundle, err := fetcher.Fetch(context.Background(), "en")
		require.NoError(t, err)
		assert.Equal(t, "OK", bundle.Resolve("form.success"))
	})

	t.Run("yaml bundle", func(t *testing.T) {
		t.Parallel()
		bundle, err := fetcher.Fetch(context.Background(), "ru")
		require.NoError(t, err)
		assert.Equal(t, "Готово", bundle.Resolve("form.success"))
	})

	t.Run("missing bundle", func(t *testing.T) {
		t.Parallel()
		_, err := fetcher.Fetch(context.Background(), "de")
		assert.ErrorIs(t, err, i18n.ErrBundleNotFound)
	})
}

func TestMapFetcher(t *testing.T) {
	t.Parallel()

	fetcher := i18n.MapFetcher{
		"en": i18n.Bundle{"greeting": "hi"},
	}

	bundle, err := fetcher.Fetch(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, "hi", bundle.Resolve("greeting"))

	_, err = fetcher.Fetch(context.Background(), "ru")
	assert.ErrorIs(t, err, i18n.ErrBundleNotFound)
}
