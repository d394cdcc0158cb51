package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pinmap/explorer/internal/catalog"
	"github.com/pinmap/explorer/internal/config"
	"github.com/pinmap/explorer/internal/dispatcher"
	"github.com/pinmap/explorer/internal/geo"
	"github.com/pinmap/explorer/internal/handlers"
	"github.com/pinmap/explorer/internal/logging"
	"github.com/pinmap/explorer/internal/selection"
	"github.com/pinmap/explorer/internal/storage"
	filestorage "github.com/pinmap/explorer/internal/storage/file"
	"github.com/pinmap/explorer/internal/widget"
)

// ErrUsage is returned for malformed command lines.
var ErrUsage = errors.New("invalid arguments")

func run(ctx context.Context, command string, args []string, out io.Writer) error {
	switch command {
	case "project":
		opts, err := parseProjectArgs(args)
		if err != nil {
			return err
		}
		if opts.HasPoint {
			return writePoint(out, opts)
		}
		c, err := loadCatalog(ctx)
		if err != nil {
			return err
		}
		return writeProjection(out, newWidget(opts.Surface, c))

	case "replay":
		if len(args) == 0 {
			return fmt.Errorf("%w: replay needs a script path", ErrUsage)
		}
		script, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer script.Close()

		surface, err := parseSurface(args[1:])
		if err != nil {
			return err
		}
		c, err := loadCatalog(ctx)
		if err != nil {
			return err
		}
		return replay(script, out, newWidget(surface, c))

	case "geojson":
		c, err := loadCatalog(ctx)
		if err != nil {
			return err
		}
		data, err := geo.MarshalLocations(c.All())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err

	case "seed":
		if len(args) != 1 {
			return fmt.Errorf("%w: seed needs a location file", ErrUsage)
		}
		return seed(ctx, args[0])

	case "version":
		_, err := fmt.Fprintf(out, "%s %s (%s)\n", AppName, CurrentVersion, BuildDate)
		return err

	default:
		usage()
		return fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}
}

// parseSurface reads an optional "--surface globe|map"; map is the default.
func parseSurface(args []string) (widget.Surface, error) {
	surface := widget.SurfaceMap
	for i := 0; i < len(args); i++ {
		arg := args[i]
		value := ""
		switch {
		case strings.HasPrefix(arg, "--surface="):
			value = strings.TrimPrefix(arg, "--surface=")
		case arg == "--surface" && i+1 < len(args):
			i++
			value = args[i]
		default:
			return "", fmt.Errorf("%w: unexpected argument %q", ErrUsage, arg)
		}

		switch widget.Surface(strings.ToLower(value)) {
		case widget.SurfaceGlobe:
			surface = widget.SurfaceGlobe
		case widget.SurfaceMap:
			surface = widget.SurfaceMap
		default:
			return "", fmt.Errorf("%w: unknown surface %q", ErrUsage, value)
		}
	}
	return surface, nil
}

type projectArgs struct {
	Surface   widget.Surface
	HasPoint  bool
	Latitude  float64
	Longitude float64
}

// parseProjectArgs reads an optional "--at lat,lon" plus the surface flag.
func parseProjectArgs(args []string) (projectArgs, error) {
	var opts projectArgs
	var rest []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		value := ""
		switch {
		case strings.HasPrefix(arg, "--at="):
			value = strings.TrimPrefix(arg, "--at=")
		case arg == "--at" && i+1 < len(args):
			i++
			value = args[i]
		default:
			rest = append(rest, arg)
			continue
		}

		lat, lon, err := geo.ParseCoordinate(value)
		if err != nil {
			return projectArgs{}, fmt.Errorf("%w: --at %q: %w", ErrUsage, value, err)
		}
		opts.HasPoint = true
		opts.Latitude, opts.Longitude = lat, lon
	}

	surface, err := parseSurface(rest)
	if err != nil {
		return projectArgs{}, err
	}
	opts.Surface = surface
	return opts, nil
}

type pointProjection struct {
	Surface   widget.Surface `json:"surface"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Position  any            `json:"position"`
}

// writePoint projects a single coordinate with the configured surface settings.
func writePoint(out io.Writer, opts projectArgs) error {
	p := pointProjection{Surface: opts.Surface, Latitude: opts.Latitude, Longitude: opts.Longitude}
	if opts.Surface == widget.SurfaceGlobe {
		g := config.GetGlobeConfig()
		p.Position = geo.ToSpherePosition(opts.Latitude, opts.Longitude, g.Radius+g.MarkerOffset)
	} else if config.GetMapConfig().Normalize {
		p.Position = geo.ToMapPercentClamped(opts.Latitude, opts.Longitude)
	} else {
		p.Position = geo.ToMapPercent(opts.Latitude, opts.Longitude)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	cfg := config.GetCatalogConfig()
	src, err := storage.NewSource(cfg, ConsoleLogger)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	Logger.Info("Loading catalog", "source", cfg.Source, "path", cfg.Path)
	return storage.LoadCatalog(ctx, src, Logger)
}

func newWidget(surface widget.Surface, c *catalog.Catalog) widget.Widget {
	if surface == widget.SurfaceGlobe {
		g := config.GetGlobeConfig()
		return widget.NewGlobe(c, widget.GlobeOptions{
			Radius:          g.Radius,
			MarkerOffset:    g.MarkerOffset,
			AutoRotateSpeed: g.AutoRotateSpeed,
		}, Logger)
	}
	m := config.GetMapConfig()
	return widget.NewMap(c, widget.MapOptions{
		ImageURL:  m.ImageURL,
		Normalize: m.Normalize,
	}, Logger)
}

type projection struct {
	Surface  widget.Surface `json:"surface"`
	ImageURL string         `json:"imageUrl,omitempty"`
	Markers  any            `json:"markers"`
	Nav      any            `json:"nav,omitempty"`
}

func writeProjection(out io.Writer, w widget.Widget) error {
	p := projection{Surface: w.Surface()}
	switch v := w.(type) {
	case *widget.Globe:
		p.Markers = v.Markers()
		p.Nav = v.Nav()
	case *widget.Map:
		p.ImageURL = v.ImageURL()
		p.Markers = v.Markers()
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

type replayLine struct {
	Line    int          `json:"line"`
	Event   string       `json:"event"`
	Changed bool         `json:"changed"`
	Panel   widget.Panel `json:"panel"`
}

// replay feeds one "kind [id]" event per line through a dispatcher bound to w
// and writes the panel after each one. Blank lines and # comments are skipped.
func replay(script io.Reader, out io.Writer, w widget.Widget) error {
	d, err := dispatcher.New(logging.NewDispatcherLogger(ConsoleLogger))
	if err != nil {
		return err
	}

	deps := handlers.Dependencies{Widget: w, LogManager: SlogManager}
	if OTelProvider != nil {
		deps.Meter = OTelProvider.Meter(handlers.InstrumentationName)
	}
	svc, err := handlers.NewService(deps)
	if err != nil {
		return err
	}
	svc.Register(d, dispatcher.Logged())

	enc := json.NewEncoder(out)
	scanner := bufio.NewScanner(script)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		e, ok, err := parseEventLine(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if !ok {
			continue
		}

		result, err := d.Dispatch(dispatcher.Event{Command: e.Kind.String(), LocationID: e.LocationID})
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		r := result.(handlers.Result)

		if err := enc.Encode(replayLine{Line: lineNo, Event: e.String(), Changed: r.Changed, Panel: r.Panel}); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseEventLine(line string) (selection.Event, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return selection.Event{}, false, nil
	}

	fields := strings.Fields(line)
	if len(fields) > 2 {
		return selection.Event{}, false, fmt.Errorf("%w: expected \"kind [id]\", got %q", ErrUsage, line)
	}

	kind, err := selection.ParseKind(fields[0])
	if err != nil {
		return selection.Event{}, false, err
	}

	e := selection.Event{Kind: kind}
	if len(fields) == 2 {
		e.LocationID = fields[1]
	}
	return e, true, nil
}

func seed(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	locations, err := filestorage.Decode(data, filestorage.FormatForPath(path))
	if err != nil {
		return err
	}
	if _, err := catalog.New(locations); err != nil {
		return err
	}

	cfg := config.GetCatalogConfig()
	src, err := storage.NewSource(cfg, ConsoleLogger)
	if err != nil {
		return err
	}
	defer src.Close()

	seeder, ok := src.(storage.Seeder)
	if !ok {
		return fmt.Errorf("%w: catalog source %q cannot be seeded", ErrUsage, cfg.Source)
	}
	if err := seeder.Seed(ctx, locations); err != nil {
		return err
	}

	SlogManager.WriteLog("seed", fmt.Sprintf("Seeded %d locations into %s source", len(locations), cfg.Source), "INFO")
	return nil
}
