package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger. Console output is used for
// human-readable logs; LOG_LEVEL overrides the default info level.
func Init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	level := zerolog.InfoLevel
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		if parsed, err := zerolog.ParseLevel(s); err == nil {
			level = parsed
		}
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = log.With().Caller().Logger()
}
