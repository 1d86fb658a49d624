package logger

import (
	"log/slog"
	"strings"
)

// Config controls how the process-wide logger is built.
type Config struct {
	Level       string // debug, info, warn, error
	Format      string // text or json
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// NewConfig builds a Config from explicit values, typically the application
// configuration.
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// LogLevel maps the configured level string to slog. Unknown values fall
// back to info rather than failing startup.
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON reports whether the JSON handler should be used.
func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, "json")
}

// BaseAttributes returns the attributes stamped on every log line.
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String("service", c.ServiceName),
		slog.String("version", c.Version),
		slog.String("environment", c.Environment),
	}
}
