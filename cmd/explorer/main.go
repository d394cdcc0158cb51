package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pinmap/explorer/internal/config"
	"github.com/pinmap/explorer/internal/logging"
	intOtel "github.com/pinmap/explorer/internal/otel"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

var (
	CurrentVersion string = "0.0.1"
	BuildDate      string = "unknown"

	AppName string = "explorer"
)

var (
	// ConfigDir holds explorer.cfg.json; overridden by EXPLORER_CONFIG_DIR.
	ConfigDir string = "."

	LogFilePath string
	LogFile     *os.File

	SlogManager *logging.SlogManager

	Logger *slog.Logger

	// ConsoleLogger traces dispatcher activity on stderr.
	ConsoleLogger zerolog.Logger

	OTelProvider *intOtel.Provider

	graylogWriter io.WriteCloser

	SessionStartTime time.Time = time.Now()
)

func usage() {
	fmt.Fprintf(os.Stderr, `%s %s (%s)

Usage:
  %s project [--surface globe|map] [--at lat,lon]
                                     print marker positions (or one point) as JSON
  %s replay <script> [--surface ...] feed "kind [id]" lines through a widget
  %s geojson                         export the catalog as GeoJSON
  %s seed <file>                     store a JSON/GeoJSON list in the SQL source
`, AppName, CurrentVersion, BuildDate, AppName, AppName, AppName, AppName)
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	if dir := os.Getenv("EXPLORER_CONFIG_DIR"); dir != "" {
		ConfigDir = dir
	}

	if err := setup(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	command := strings.ToLower(args[0])
	err := run(context.Background(), command, args[1:], os.Stdout)
	if err != nil {
		SlogManager.WriteLog(command, err.Error(), "ERROR")
	}
	shutdown()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads configuration and wires file, Graylog and OTel logging.
func setup() error {
	SlogManager = logging.NewSlogManager()
	SlogManager.Setup(nil, viper.GetString("logLevel"), nil)
	Logger = SlogManager.Logger()

	err := config.Load(ConfigDir)
	if err != nil {
		Logger.Warn("Failed to load config, using defaults!", "error", err)
	}

	logsDir := config.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("creating logs directory: %w", err)
	}

	LogFilePath = logging.LogFilePath(logsDir, AppName, SessionStartTime)
	LogFile, err = os.OpenFile(LogFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", LogFilePath, err)
	}

	otelCfg := config.GetOTelConfig()
	if otelCfg.Enabled {
		OTelProvider, err = intOtel.New(context.Background(), intOtel.Config{
			Enabled:      otelCfg.Enabled,
			ServiceName:  otelCfg.ServiceName,
			BatchTimeout: otelCfg.BatchTimeout,
			LogWriter:    LogFile,
			Endpoint:     otelCfg.Endpoint,
			Insecure:     otelCfg.Insecure,
		})
		if err != nil {
			Logger.Error("Failed to initialize OTel provider", "error", err)
			OTelProvider = nil
		}
	}

	var sinks []io.Writer
	graylogCfg := config.GetGraylogConfig()
	if graylogCfg.Enabled {
		graylogWriter, err = logging.NewGraylogWriter(graylogCfg.Address, AppName)
		if err != nil {
			Logger.Error("Failed to connect Graylog sink", "error", err)
		} else {
			sinks = append(sinks, graylogWriter)
		}
	}

	var otelLogProvider *sdklog.LoggerProvider
	if OTelProvider != nil {
		otelLogProvider = OTelProvider.LoggerProvider()
	}
	level := config.GetString("logLevel")
	SlogManager.Setup(LogFile, level, otelLogProvider, sinks...)
	Logger = SlogManager.Logger()
	Logger.Info("Logging to file", "path", LogFilePath, "version", CurrentVersion)

	ConsoleLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(consoleLevel(level)).
		With().Timestamp().Logger()

	return nil
}

func consoleLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := SlogManager.Flush(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to flush logs: %v\n", err)
	}
	if OTelProvider != nil {
		if err := OTelProvider.Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to stop OTel provider: %v\n", err)
		}
	}
	if graylogWriter != nil {
		_ = graylogWriter.Close()
	}
	if LogFile != nil {
		_ = LogFile.Close()
	}
}
