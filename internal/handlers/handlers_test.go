package handlers

import (
	"bytes"
	"context"
	"testing"

	"github.com/pinmap/explorer/internal/catalog"
	"github.com/pinmap/explorer/internal/dispatcher"
	"github.com/pinmap/explorer/internal/logging"
	intOtel "github.com/pinmap/explorer/internal/otel"
	"github.com/pinmap/explorer/internal/selection"
	"github.com/pinmap/explorer/internal/widget"
	"github.com/pinmap/explorer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]core.Location{
		{ID: "new-york", Name: "New York, USA", Latitude: 40.7128, Longitude: -74.006},
		{ID: "london", Name: "London, UK", Latitude: 51.5072, Longitude: -0.1276},
	})
	require.NoError(t, err)
	return c
}

func newMapService(t *testing.T, buf *bytes.Buffer) (*Service, *dispatcher.Dispatcher) {
	t.Helper()
	logManager := logging.NewSlogManager()
	logManager.Setup(buf, "debug", nil)

	m := widget.NewMap(newCatalog(t), widget.MapOptions{}, logManager.Logger())
	svc, err := NewService(Dependencies{Widget: m, LogManager: logManager})
	require.NoError(t, err)

	d, err := dispatcher.New(nopLogger{})
	require.NoError(t, err)
	svc.Register(d)
	return svc, d
}

func TestRegister_AllKinds(t *testing.T) {
	_, d := newMapService(t, &bytes.Buffer{})

	for _, kind := range selection.Kinds() {
		assert.True(t, d.HasHandler(kind.String()), kind.String())
	}
}

func TestDispatch_ClickRendersPanel(t *testing.T) {
	_, d := newMapService(t, &bytes.Buffer{})

	out, err := d.Dispatch(dispatcher.Event{Command: "click", LocationID: "london"})
	require.NoError(t, err)

	result, ok := out.(Result)
	require.True(t, ok)
	assert.True(t, result.Changed)
	assert.True(t, result.Panel.Visible)
	assert.Equal(t, "London, UK", result.Panel.Title)
}

func TestDispatch_StickyClickThroughBlur(t *testing.T) {
	_, d := newMapService(t, &bytes.Buffer{})

	_, err := d.Dispatch(dispatcher.Event{Command: "click", LocationID: "london"})
	require.NoError(t, err)
	out, err := d.Dispatch(dispatcher.Event{Command: "focusLeave", LocationID: "london"})
	require.NoError(t, err)

	result := out.(Result)
	assert.False(t, result.Changed)
	assert.Equal(t, "london", result.Panel.Location.ID)
}

func TestDispatch_CloseWithoutID(t *testing.T) {
	_, d := newMapService(t, &bytes.Buffer{})

	_, _ = d.Dispatch(dispatcher.Event{Command: "touchStart", LocationID: "new-york"})
	out, err := d.Dispatch(dispatcher.Event{Command: "close"})
	require.NoError(t, err)

	assert.False(t, out.(Result).Panel.Visible)
}

func TestDispatch_MissingIDIsError(t *testing.T) {
	_, d := newMapService(t, &bytes.Buffer{})

	for _, kind := range []selection.Kind{selection.HoverEnter, selection.FocusEnter, selection.Click, selection.TouchStart} {
		_, err := d.Dispatch(dispatcher.Event{Command: kind.String()})
		require.Error(t, err, kind.String())
	}
}

func TestDispatch_LeaveWithoutID(t *testing.T) {
	_, d := newMapService(t, &bytes.Buffer{})

	_, err := d.Dispatch(dispatcher.Event{Command: "hoverEnter", LocationID: "london"})
	require.NoError(t, err)
	out, err := d.Dispatch(dispatcher.Event{Command: "hoverLeave"})
	require.NoError(t, err)
	assert.True(t, out.(Result).Changed)
	assert.False(t, out.(Result).Panel.Visible)

	_, err = d.Dispatch(dispatcher.Event{Command: "focusEnter", LocationID: "london"})
	require.NoError(t, err)
	out, err = d.Dispatch(dispatcher.Event{Command: "focusLeave"})
	require.NoError(t, err)
	assert.False(t, out.(Result).Panel.Visible)
}

func TestHandle_LogsDisplayedLocation(t *testing.T) {
	var buf bytes.Buffer
	svc, _ := newMapService(t, &buf)

	svc.Handle(selection.Event{Kind: selection.HoverEnter, LocationID: "new-york"})

	out := buf.String()
	assert.Contains(t, out, "interaction applied")
	assert.Contains(t, out, "surface=map")
	assert.Contains(t, out, "displayed=new-york")
}

func TestHandle_GlobeAlwaysDisplays(t *testing.T) {
	g := widget.NewGlobe(newCatalog(t), widget.DefaultGlobeOptions(), nil)
	svc, err := NewService(Dependencies{Widget: g})
	require.NoError(t, err)

	result := svc.Handle(selection.Event{Kind: selection.HoverLeave, LocationID: "london"})

	assert.False(t, result.Changed)
	assert.True(t, result.Panel.Visible)
	assert.Equal(t, "new-york", result.Panel.Location.ID)
}

func TestNewService_ProviderMeter(t *testing.T) {
	p, err := intOtel.New(context.Background(), intOtel.Config{})
	require.NoError(t, err)

	m := widget.NewMap(newCatalog(t), widget.MapOptions{}, nil)
	svc, err := NewService(Dependencies{Widget: m, Meter: p.Meter(InstrumentationName)})
	require.NoError(t, err)

	result := svc.Handle(selection.Event{Kind: selection.Click, LocationID: "london"})
	assert.True(t, result.Changed)
	assert.Equal(t, "london", m.State().ActiveID)
}
