package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. LABYRINTH_LOG_LEVEL.
const envPrefix = "LABYRINTH"

// Config holds the command's settings after flags and environment are merged.
type Config struct {
	LogLevel  string // trace, debug, info, warn, error
	LogFormat string // text or json
	MaxDepth  int    // search radius in moves; 0 is unlimited
}

// defaultConfig returns the values used when neither a flag nor an
// environment variable is set.
func defaultConfig() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: "text",
		MaxDepth:  0,
	}
}

// registerFlags declares the command's flags and binds them, together with
// their LABYRINTH_* environment variables, into v.
func registerFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	def := defaultConfig()
	flags.String("log-level", def.LogLevel, "Logging level: 'trace', 'debug', 'info', 'warn' or 'error'.")
	flags.String("log-format", def.LogFormat, "Log output format: 'text' or 'json'.")
	flags.Int("max-depth", def.MaxDepth, "Give up on cells more than this many moves away. 0 is unlimited.")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindPFlags(flags)
}

// loadConfig reads and validates the merged settings.
func loadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		LogLevel:  strings.ToLower(v.GetString("log-level")),
		LogFormat: strings.ToLower(v.GetString("log-format")),
		MaxDepth:  v.GetInt("max-depth"),
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if cfg.MaxDepth < 0 {
		return Config{}, fmt.Errorf("invalid max depth %d: must not be negative", cfg.MaxDepth)
	}
	return cfg, nil
}

// newLogger builds a logrus logger writing to w per cfg.
func newLogger(cfg Config, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)
	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	return logger
}
