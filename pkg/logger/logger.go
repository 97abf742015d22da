package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config represents logger configuration
type Config struct {
	Level  string
	Pretty bool
	Output io.Writer
}

var root zerolog.Logger

func init() {
	root = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// Configure sets up the global logger. Pretty output is meant for
// development, JSON for everything else.
func Configure(config Config) {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(config.Level)
	if err != nil || config.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	output := config.Output
	if config.Pretty {
		output = zerolog.ConsoleWriter{Out: config.Output, TimeFormat: "15:04:05"}
	}

	root = zerolog.New(output).With().Timestamp().Logger()
}

// Get returns the configured root logger.
func Get() zerolog.Logger {
	return root
}

// With returns a logger tagged with a component name.
func With(component string) zerolog.Logger {
	return root.With().Str("component", component).Logger()
}
