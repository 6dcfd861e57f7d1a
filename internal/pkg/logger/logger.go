package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel is a config-file level name
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

var levels = map[LogLevel]zerolog.Level{
	DebugLevel: zerolog.DebugLevel,
	InfoLevel:  zerolog.InfoLevel,
	WarnLevel:  zerolog.WarnLevel,
	ErrorLevel: zerolog.ErrorLevel,
}

// Config controls the global logger
type Config struct {
	Level LogLevel
	// Pretty switches from JSON to console output
	Pretty bool
	// Output defaults to os.Stdout
	Output io.Writer
}

var global zerolog.Logger

// Configure replaces the global logger. Unknown levels fall back to info.
func Configure(config Config) {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339

	level, ok := levels[config.Level]
	if !ok {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var writer io.Writer = config.Output
	if config.Pretty {
		writer = zerolog.ConsoleWriter{Out: config.Output, TimeFormat: time.RFC3339}
	}

	global = zerolog.New(writer).With().Timestamp().Logger()
	log.Logger = global
}

func Debug() *zerolog.Event { return global.Debug() }

func Info() *zerolog.Event { return global.Info() }

func Warn() *zerolog.Event { return global.Warn() }

func Error() *zerolog.Event { return global.Error() }

func init() {
	Configure(Config{Level: InfoLevel, Pretty: true})
}
