package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ConfigFileName is the file Load looks for in the config directory.
const ConfigFileName = "explorer.cfg.json"

// CatalogConfig selects where the location list is loaded from
type CatalogConfig struct {
	Source string `json:"source" mapstructure:"source"` // json, geojson, sqlite, postgres
	Path   string `json:"path" mapstructure:"path"`
	DB     DBConfig
}

// DBConfig holds SQL connection settings for the sqlite and postgres sources
type DBConfig struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     string `json:"port" mapstructure:"port"`
	Username string `json:"username" mapstructure:"username"`
	Password string `json:"password" mapstructure:"password"`
	Database string `json:"database" mapstructure:"database"`
}

// GlobeConfig holds globe surface settings
type GlobeConfig struct {
	Radius          float64
	MarkerOffset    float64
	AutoRotateSpeed float64
}

// MapConfig holds flat map surface settings
type MapConfig struct {
	ImageURL  string
	Normalize bool
}

// OTelConfig holds OpenTelemetry settings
type OTelConfig struct {
	Enabled      bool
	ServiceName  string
	BatchTimeout time.Duration
	Endpoint     string
	Insecure     bool
}

// GraylogConfig holds GELF log shipping settings
type GraylogConfig struct {
	Enabled bool
	Address string
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	SetDefaults()

	viper.SetConfigName(ConfigFileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./logs")

	viper.SetDefault("catalog.source", "json")
	viper.SetDefault("catalog.path", "")

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "explorer")

	viper.SetDefault("globe.radius", 2.0)
	viper.SetDefault("globe.markerOffset", 0.03)
	viper.SetDefault("globe.autoRotateSpeed", 0.6)

	viper.SetDefault("map.imageUrl", "https://upload.wikimedia.org/wikipedia/commons/8/83/Equirectangular_projection_SW.jpg")
	viper.SetDefault("map.normalize", false)

	viper.SetDefault("graylog.enabled", false)
	viper.SetDefault("graylog.address", "localhost:12201")

	viper.SetDefault("otel.enabled", false)
	viper.SetDefault("otel.serviceName", "pinmap-explorer")
	viper.SetDefault("otel.batchTimeout", "5s")
	viper.SetDefault("otel.endpoint", "")
	viper.SetDefault("otel.insecure", true)
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// DefaultCatalogPath is the location file used when catalog.path is unset.
// Postgres ignores the path.
func DefaultCatalogPath(source string) string {
	switch source {
	case "geojson":
		return "./locations.geojson"
	case "sqlite":
		return "./locations.db"
	case "postgres":
		return ""
	default:
		return "./locations.json"
	}
}

// GetCatalogConfig returns the location source settings.
func GetCatalogConfig() CatalogConfig {
	source := viper.GetString("catalog.source")
	path := viper.GetString("catalog.path")
	if path == "" {
		path = DefaultCatalogPath(source)
	}
	return CatalogConfig{
		Source: source,
		Path:   path,
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetString("db.port"),
			Username: viper.GetString("db.username"),
			Password: viper.GetString("db.password"),
			Database: viper.GetString("db.database"),
		},
	}
}

// GetGlobeConfig returns the globe surface settings.
func GetGlobeConfig() GlobeConfig {
	return GlobeConfig{
		Radius:          viper.GetFloat64("globe.radius"),
		MarkerOffset:    viper.GetFloat64("globe.markerOffset"),
		AutoRotateSpeed: viper.GetFloat64("globe.autoRotateSpeed"),
	}
}

// GetMapConfig returns the flat map surface settings.
func GetMapConfig() MapConfig {
	return MapConfig{
		ImageURL:  viper.GetString("map.imageUrl"),
		Normalize: viper.GetBool("map.normalize"),
	}
}

// GetOTelConfig returns the OpenTelemetry settings.
func GetOTelConfig() OTelConfig {
	return OTelConfig{
		Enabled:      viper.GetBool("otel.enabled"),
		ServiceName:  viper.GetString("otel.serviceName"),
		BatchTimeout: viper.GetDuration("otel.batchTimeout"),
		Endpoint:     viper.GetString("otel.endpoint"),
		Insecure:     viper.GetBool("otel.insecure"),
	}
}

// GetGraylogConfig returns the GELF shipping settings.
func GetGraylogConfig() GraylogConfig {
	return GraylogConfig{
		Enabled: viper.GetBool("graylog.enabled"),
		Address: viper.GetString("graylog.address"),
	}
}
