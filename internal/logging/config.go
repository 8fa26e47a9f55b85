package logging

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type envOverrides struct {
	Level     string `env:"DVW_LOG_LEVEL"`
	Timestamp *bool  `env:"DVW_LOG_TIMESTAMP"`
	NoColor   bool   `env:"DVW_LOG_NOCOLOR"`
}

var configureOnce sync.Once

// Init wires the global zerolog logger to stderr so tool output on stdout
// stays clean. Environment variables override the defaults.
func Init(app string) zerolog.Logger {
	configureOnce.Do(func() {
		configure(app, zerolog.InfoLevel, true)
	})
	return log.Logger
}

// InitTests configures verbose, timestamp-free logging for tests.
func InitTests() {
	configureOnce.Do(func() {
		configure("test", zerolog.DebugLevel, false)
	})
}

func configure(app string, level zerolog.Level, timestamp bool) {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		overrides = envOverrides{}
	}
	if lvl, ok := parseLevel(overrides.Level); ok {
		level = lvl
	}
	if overrides.Timestamp != nil {
		timestamp = *overrides.Timestamp
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    overrides.NoColor,
	}
	ctx := zerolog.New(output).Level(level).With().Str("app", app)
	if timestamp {
		ctx = ctx.Timestamp()
	}
	log.Logger = ctx.Logger()
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace", "diagnostics":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none", "inactive":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}
