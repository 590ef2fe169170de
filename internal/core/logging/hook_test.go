package logging

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type notified struct {
	level zerolog.Level
	msg   string
}

func TestNotifyHook_Run(t *testing.T) {
	tests := []struct {
		name string
		log  func(l zerolog.Logger)
		want []notified
	}{
		{
			name: "error is forwarded",
			log:  func(l zerolog.Logger) { l.Error().Msg("boom") },
			want: []notified{{zerolog.ErrorLevel, "boom"}},
		},
		{
			name: "below min level is ignored",
			log:  func(l zerolog.Logger) { l.Info().Msg("fine") },
		},
		{
			name: "empty message is ignored",
			log:  func(l zerolog.Logger) { l.Error().Send() },
		},
		{
			name: "no level is ignored",
			log:  func(l zerolog.Logger) { l.Log().Msg("plain") },
		},
		{
			name: "warn is forwarded",
			log:  func(l zerolog.Logger) { l.Warn().Msg("careful") },
			want: []notified{{zerolog.WarnLevel, "careful"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []notified
			hook := NotifyHook{
				MinLevel: zerolog.WarnLevel,
				Notify: func(level zerolog.Level, msg string) {
					got = append(got, notified{level, msg})
				},
			}

			tt.log(zerolog.New(io.Discard).Hook(hook))

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNotifyHook_NilNotify(t *testing.T) {
	logger := zerolog.New(io.Discard).Hook(NotifyHook{})
	assert.NotPanics(t, func() { logger.Error().Msg("boom") })
}
