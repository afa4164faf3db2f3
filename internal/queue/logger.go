package queue

import (
	"github.com/rs/zerolog/log"
)

// Logger forwards backlite's log messages to the global zerolog logger. Params are key-value pairs.
type Logger struct{}

func (Logger) Info(message string, params ...any) {
	log.Debug().Fields(params).Msg(message)
}

func (Logger) Error(message string, params ...any) {
	log.Error().Fields(params).Msg(message)
}
