// Package config holds the application's root configuration, loaded through
// viper from defaults, an optional config file and STYLETREE_ environment
// variables.
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	instance *Config
	mu       sync.RWMutex
)

// Config is the root configuration structure for the CLI.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger"`
	Render RenderConfig `mapstructure:"render"`
}

// ColorConfig defines the color settings for different log levels, used for
// console output.
type ColorConfig struct {
	Debug string `mapstructure:"debug"`
	Info  string `mapstructure:"info"`
	Warn  string `mapstructure:"warn"`
	Error string `mapstructure:"error"`
	Fatal string `mapstructure:"fatal"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level"`
	Format      string      `mapstructure:"format"`
	AddSource   bool        `mapstructure:"add_source"`
	ServiceName string      `mapstructure:"service_name"`
	LogFile     string      `mapstructure:"log_file"`
	MaxSize     int         `mapstructure:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups"`
	MaxAge      int         `mapstructure:"max_age"`
	Compress    bool        `mapstructure:"compress"`
	Colors      ColorConfig `mapstructure:"colors"`
}

// RenderConfig holds settings for the render command.
type RenderConfig struct {
	// Lenient switches the markup side to the error-tolerant HTML importer
	// instead of the strict parser.
	Lenient bool `mapstructure:"lenient"`
	// MaxInputBytes caps how much of either input file is read.
	MaxInputBytes int64 `mapstructure:"max_input_bytes"`
}

// SetDefaults registers default values on v for every known key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "styletree")
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.fatal", "magenta")
	v.SetDefault("render.lenient", false)
	v.SetDefault("render.max_input_bytes", int64(8<<20))
}

// Load reads configuration from the given file (or just the defaults and
// environment when path is empty) and unmarshals it.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("STYLETREE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the CLI cannot run with.
func (c *Config) Validate() error {
	switch c.Logger.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid logger format %q", c.Logger.Format)
	}
	if c.Render.MaxInputBytes <= 0 {
		return fmt.Errorf("render.max_input_bytes must be positive, got %d", c.Render.MaxInputBytes)
	}
	return nil
}

// Set stores the configuration globally.
func Set(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = cfg
}

// Get returns the global configuration, falling back to defaults when Set
// was never called.
func Get() *Config {
	mu.RLock()
	cfg := instance
	mu.RUnlock()
	if cfg != nil {
		return cfg
	}

	fallback, err := Load("")
	if err != nil {
		// Defaults always validate; reaching this is a programming error.
		panic(err)
	}
	return fallback
}
