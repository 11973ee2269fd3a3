package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	Environment string     `mapstructure:"environment"`
	LogLevelRaw string     `mapstructure:"log_level"`
	LogLevel    slog.Level `mapstructure:"-"`
	Color       string     `mapstructure:"color"`
	WrapWidth   int        `mapstructure:"wrap_width"` // columns, 0 disables wrapping
}

// Load reads configuration from defaults, an optional config.yaml and
// DETECTIVE_* environment variables. configFile overrides the search path.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "warn")
	v.SetDefault("color", ColorAuto)
	v.SetDefault("wrap_width", 72)

	v.SetEnvPrefix("DETECTIVE")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// no config file, use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.LogLevel = ParseLogLevel(cfg.LogLevelRaw)
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return nil, fmt.Errorf("invalid color mode %q (want auto, always or never)", cfg.Color)
	}
	if cfg.WrapWidth < 0 {
		return nil, fmt.Errorf("wrap_width must not be negative, got %d", cfg.WrapWidth)
	}

	return &cfg, nil
}

// ParseLogLevel maps a level name to a slog level. Unknown names are Info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
