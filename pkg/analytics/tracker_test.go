package analytics_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webglot/webglot/pkg/analytics"
)

func TestNoop(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		analytics.Noop().Track(context.Background(), analytics.EventFormSubmit, nil)
	})
}

func TestTrackerFunc(t *testing.T) {
	t.Parallel()

	var gotEvent string
	var gotParams map[string]string
	tracker := analytics.TrackerFunc(func(_ context.Context, event string, params map[string]string) {
		gotEvent = event
		gotParams = params
	})

	tracker.Track(context.Background(), analytics.EventFAQOpen, map[string]string{"question": "q1"})

	assert.Equal(t, analytics.EventFAQOpen, gotEvent)
	assert.Equal(t, map[string]string{"question": "q1"}, gotParams)
}

func TestMemoryTracker(t *testing.T) {
	t.Parallel()

	tracker := analytics.NewMemoryTracker()
	params := map[string]string{"lang": "en"}
	tracker.Track(context.Background(), analytics.EventLangSwitch, params)
	tracker.Track(context.Background(), analytics.EventSectionView, map[string]string{"section": "portfolio"})

	events := tracker.Events()
	require.Len(t, events, 2)

	assert.NotEmpty(t, events[0].ID)
	assert.NotEqual(t, events[0].ID, events[1].ID)
	assert.Equal(t, analytics.EventLangSwitch, events[0].Name)
	assert.Equal(t, map[string]string{"lang": "en"}, events[0].Params)

	// Captured params are a copy; mutating the caller's map afterwards must
	// not leak into the snapshot.
	params["lang"] = "ru"
	assert.Equal(t, "en", tracker.Events()[0].Params["lang"])
}

func TestLogTracker(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tracker := analytics.NewLogTracker(slog.New(slog.NewJSONHandler(&buf, nil)))

	tracker.Track(context.Background(), analytics.EventPortfolioFilter, map[string]string{"filter": "web"})

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "analytics event", record["msg"])
	assert.Equal(t, analytics.EventPortfolioFilter, record["event"])
	assert.NotEmpty(t, record["event_id"])

	params, ok := record["params"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "web", params["filter"])
}

func TestLogTrackerNilLogger(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		analytics.NewLogTracker(nil).Track(context.Background(), analytics.EventFormSubmit, nil)
	})
}
