// Package logx configures the process-wide zerolog logger.
package logx

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets up the global logger: pretty console output at debug level in
// development, plain JSON at info level in production.
func Init(production bool) {
	if production {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
		return
	}
	log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Caller().Logger().
		Level(zerolog.DebugLevel)
}
