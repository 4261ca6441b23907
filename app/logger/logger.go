package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var Logger zerolog.Logger

func Init() {
	// Set log level from environment
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	// Configure output format
	output := os.Getenv("LOG_FORMAT")
	if output == "json" {
		Logger = zerolog.New(os.Stderr).With().
			Timestamp().
			Logger().
			Level(level)
	} else {
		// Pretty console format by default; logs go to stderr so they do
		// not interleave with the interactive menus on stdout.
		Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().
			Timestamp().
			Logger().
			Level(level)
	}

	// Set as global logger
	log.Logger = Logger
}

// WithUserID adds user ID to logger context
func WithUserID(userID string) zerolog.Logger {
	return Logger.With().Str("user_id", userID).Logger()
}
