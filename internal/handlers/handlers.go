package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pinmap/explorer/internal/dispatcher"
	"github.com/pinmap/explorer/internal/logging"
	"github.com/pinmap/explorer/internal/selection"
	"github.com/pinmap/explorer/internal/widget"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// InstrumentationName names the meter the handlers record on.
const InstrumentationName = "github.com/pinmap/explorer/internal/handlers"

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Widget     widget.Widget
	LogManager *logging.SlogManager
	// Meter records selection counters; the global meter when nil.
	Meter metric.Meter
}

// Result is what every interaction command returns.
type Result struct {
	Changed bool         `json:"changed"`
	Panel   widget.Panel `json:"panel"`
}

// Service turns dispatcher events into widget transitions.
// One Service serves exactly one widget.
type Service struct {
	deps    Dependencies
	logger  *slog.Logger
	changed metric.Int64Counter
}

// NewService creates a new handler service
func NewService(deps Dependencies) (*Service, error) {
	s := &Service{deps: deps}

	m := deps.Meter
	if m == nil {
		m = otel.Meter(InstrumentationName)
	}

	changed, err := m.Int64Counter(
		"selection.changed",
		metric.WithDescription("Interactions that changed the selection"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating selection counter: %w", err)
	}
	s.changed = changed

	base := slog.Default()
	if deps.LogManager != nil {
		base = deps.LogManager.Logger()
	}
	s.logger = logging.WithContext(
		base.With("surface", string(deps.Widget.Surface())),
		s.activeAttrs,
	)
	return s, nil
}

// Register adds one command per interaction kind to d.
func (s *Service) Register(d *dispatcher.Dispatcher, opts ...dispatcher.Option) {
	for _, kind := range selection.Kinds() {
		d.Register(kind.String(), s.handlerFor(kind), opts...)
	}
}

// Handle applies one interaction and returns the panel to render.
func (s *Service) Handle(e selection.Event) Result {
	changed := s.deps.Widget.Handle(e)
	if changed {
		s.changed.Add(context.Background(), 1, metric.WithAttributes(
			attribute.String("surface", string(s.deps.Widget.Surface())),
			attribute.String("kind", e.Kind.String()),
		))
		s.logger.Debug("interaction applied", "event", e.String())
	}
	return Result{Changed: changed, Panel: s.deps.Widget.Panel()}
}

func (s *Service) handlerFor(kind selection.Kind) dispatcher.HandlerFunc {
	return func(e dispatcher.Event) (any, error) {
		if kind.Targeted() && e.LocationID == "" {
			return nil, fmt.Errorf("%s: missing location id", kind)
		}
		return s.Handle(selection.Event{Kind: kind, LocationID: e.LocationID}), nil
	}
}

func (s *Service) activeAttrs() []slog.Attr {
	loc, ok := s.deps.Widget.Resolve()
	if !ok {
		return []slog.Attr{slog.String("displayed", "")}
	}
	return []slog.Attr{slog.String("displayed", loc.ID)}
}
