package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	App     AppConfig
	Geocode GeocodeConfig
	Census  CensusConfig
	Market  MarketConfig
	Dataset DatasetConfig
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

// AppConfig holds application-specific configuration
type AppConfig struct {
	DefaultLocationOne string
	DefaultLocationTwo string
	// RealEstateStrategy selects the real-estate data source:
	// synthetic, market_index, or dataset.
	RealEstateStrategy string
}

// GeocodeConfig holds forward-geocoding retry configuration
type GeocodeConfig struct {
	Attempts       int
	AttemptTimeout time.Duration
	RetryDelay     time.Duration
}

// CensusConfig holds Census ACS API configuration
type CensusConfig struct {
	BaseURL string
	APIKey  string
}

// MarketConfig holds the housing market index configuration
type MarketConfig struct {
	Symbol string
}

// DatasetConfig points at the local building inventory CSV
type DatasetConfig struct {
	Path string
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.cityscope")

	// Set defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.ginmode", "release")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("app.defaultLocationOne", "Seattle, WA")
	viper.SetDefault("app.defaultLocationTwo", "Portland, OR")
	viper.SetDefault("app.realEstateStrategy", "synthetic")
	viper.SetDefault("geocode.attempts", 3)
	viper.SetDefault("geocode.attemptTimeout", 10*time.Second)
	viper.SetDefault("geocode.retryDelay", 500*time.Millisecond)
	viper.SetDefault("census.baseURL", "https://api.census.gov/data/2021/acs/acs5")
	viper.SetDefault("census.apiKey", "")
	viper.SetDefault("market.symbol", "^HGX")
	viper.SetDefault("dataset.path", "")

	// Read from environment variables
	viper.SetEnvPrefix("CITYSCOPE")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.App.RealEstateStrategy {
	case "synthetic", "market_index":
	case "dataset":
		if c.Dataset.Path == "" {
			return fmt.Errorf("real-estate strategy %q requires dataset.path", c.App.RealEstateStrategy)
		}
	default:
		return fmt.Errorf("unknown real-estate strategy %q", c.App.RealEstateStrategy)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
