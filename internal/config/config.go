package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"rotas-gateway/internal/upstream"
)

// Config holds all configuration for the gateway
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	ORS       ORSConfig
	Overpass  OverpassConfig
	HTTP      HTTPConfig
	CORS      CORSConfig
	Geocode   GeocodeConfig
	Obstacles ObstaclesConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// ORSConfig holds the OpenRouteService credential and endpoints
type ORSConfig struct {
	APIKey            string
	DirectionsBaseURL string
	GeocodeURL        string
}

// OverpassConfig holds the Overpass interpreter endpoint
type OverpassConfig struct {
	InterpreterURL string
}

// HTTPConfig holds the outbound transport policy
type HTTPConfig struct {
	TimeoutSeconds int
	MaxRetries     int
	BackoffBaseMS  int
	RetryStatuses  []int
}

// CORSConfig holds the allowed browser origins
type CORSConfig struct {
	AllowOrigins []string
}

// GeocodeConfig holds defaults applied to geocode searches
type GeocodeConfig struct {
	Limit   int
	Country string
	Lang    string
}

// ObstaclesConfig holds defaults applied to obstacle lookups
type ObstaclesConfig struct {
	Limit int
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.ginmode", "release")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("ors.apikey", "")
	viper.SetDefault("ors.directionsbaseurl", "https://api.openrouteservice.org/v2/directions")
	viper.SetDefault("ors.geocodeurl", "https://api.openrouteservice.org/geocode/search")
	viper.SetDefault("overpass.interpreterurl", "https://overpass-api.de/api/interpreter")
	viper.SetDefault("http.timeoutseconds", 30)
	viper.SetDefault("http.maxretries", 3)
	viper.SetDefault("http.backoffbasems", 400)
	viper.SetDefault("http.retrystatuses", []int{429, 500, 502, 503, 504})
	viper.SetDefault("cors.alloworigins", []string{"*"})
	viper.SetDefault("geocode.limit", 5)
	viper.SetDefault("geocode.country", "BR")
	viper.SetDefault("geocode.lang", "pt")
	viper.SetDefault("obstacles.limit", 500)

	// Read from environment variables
	viper.SetEnvPrefix("ROTAS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// ORS_API_KEY is the name deployments already use for the credential;
	// honor it alongside the prefixed form.
	_ = viper.BindEnv("ors.apikey", "ORS_API_KEY", "ROTAS_ORS_APIKEY")

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// HTTPTimeout returns the per-call timeout for outbound provider requests
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

// RetryPolicy builds the outbound retry policy from configuration
func (c *Config) RetryPolicy() upstream.Policy {
	return upstream.Policy{
		MaxRetries:    uint64(c.HTTP.MaxRetries),
		BackoffBase:   time.Duration(c.HTTP.BackoffBaseMS) * time.Millisecond,
		RetryStatuses: c.HTTP.RetryStatuses,
	}
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
