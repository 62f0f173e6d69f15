package logger

import (
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// New builds the process logger. The level comes straight from LOG_LEVEL
// because config loading itself needs a logger.
func New() zerolog.Logger {
	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return SetLevel(level)
}

func SetLevel(level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger.Level(level)
}

var Module = fx.Provide(New)
