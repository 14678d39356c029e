// Package settings resolves CLI settings from flags, MEASURE_* environment
// variables and an optional settings file, in that order of precedence.
package settings

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. MEASURE_PORT.
const EnvPrefix = "MEASURE"

// Settings holds the resolved CLI settings.
type Settings struct {
	LogLevel  string
	LogFormat string
	Port      int
	Output    string
}

// AddFlags registers the persistent flags Load understands.
func AddFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a settings file (yaml, json or toml).")
	fs.String("log-level", "info", "Logging level: debug, info, warn or error.")
	fs.String("log-format", "text", "Log output format: text or json.")
	fs.String("output", "text", "Result output format: text or json.")
}

// Load resolves settings for the given flag set.
func Load(fs *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", "text")
	v.SetDefault("output", "text")
	v.SetDefault("port", 3000)

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading settings file: %w", err)
		}
	}

	s := &Settings{
		LogLevel:  strings.ToLower(v.GetString("log-level")),
		LogFormat: strings.ToLower(v.GetString("log-format")),
		Port:      v.GetInt("port"),
		Output:    strings.ToLower(v.GetString("output")),
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) validate() error {
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q: must be debug, info, warn or error", s.LogLevel)
	}
	if s.LogFormat != "text" && s.LogFormat != "json" {
		return fmt.Errorf("invalid log-format %q: must be text or json", s.LogFormat)
	}
	if s.Output != "text" && s.Output != "json" {
		return fmt.Errorf("invalid output %q: must be text or json", s.Output)
	}
	if s.Port < 0 || s.Port > 65535 {
		return fmt.Errorf("invalid port %d", s.Port)
	}
	return nil
}

// Logger builds a slog.Logger writing to w.
func (s *Settings) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch s.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if s.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
