// Package config loads the hydrator CLI settings from hydrator.yaml and
// HYDRATOR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config represents the CLI configuration
type Config struct {
	// Schema is the binding file used when no --schema flag is given.
	Schema  string    `mapstructure:"schema"`
	NoColor bool      `mapstructure:"no_color"`
	Log     LogConfig `mapstructure:"log"`
}

// LogConfig represents logger configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads hydrator.yaml from dir if present. Environment variables such
// as HYDRATOR_LOG_LEVEL override file values.
func Load(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("schema", "hydrator.schema.yaml")
	v.SetDefault("no_color", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	v.SetConfigName("hydrator")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("HYDRATOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// NewLogger builds a logger writing to stderr at the configured level.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if c.Log.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true

	return zc.Build()
}

func (c *Config) level() (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return level, fmt.Errorf("log.level: %w", err)
	}

	return level, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Schema == "" {
		return errors.New("schema must not be empty")
	}

	if _, err := cfg.level(); err != nil {
		return err
	}

	switch cfg.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got: %s", cfg.Log.Format)
	}

	return nil
}
