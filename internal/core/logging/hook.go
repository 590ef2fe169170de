package logging

import (
	"github.com/rs/zerolog"
)

// NotifyHook forwards log events at or above MinLevel to Notify, so errors
// that never reach a caller are still shown to the user.
type NotifyHook struct {
	MinLevel zerolog.Level
	Notify   func(level zerolog.Level, msg string)
}

// Run implements zerolog.Hook.
func (h NotifyHook) Run(_ *zerolog.Event, level zerolog.Level, msg string) {
	if h.Notify == nil || msg == "" {
		return
	}
	if level < h.MinLevel || level >= zerolog.NoLevel {
		return
	}
	h.Notify(level, msg)
}
