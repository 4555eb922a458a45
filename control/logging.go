// control/logging.go
// Author: momentics <momentics@gmail.com>
//
// Lifecycle-only structured logging via github.com/rs/zerolog, following the
// bracketed-component message tag of Borislavv-adv-cache/pkg/upstream/lifecycle.go
// ("[upstream] ..."), written with zerolog's .Msg plus typed fields. Nothing on the reserve/commit hot path logs; a Logger
// only ever sees construction, Close, and allocator-failure events.
package control

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger scoped to one named ring. The zero value is
// not ready for use; construct with NewLogger or NopLogger.
type Logger struct {
	z zerolog.Logger
}

// NewLogger builds a Logger writing JSON lines to w, tagged with the given
// ring name. Pass os.Stderr for human operation; NewConsoleLogger is the
// human-readable alternative for local development.
func NewLogger(name string, w *os.File) Logger {
	return Logger{z: zerolog.New(w).With().Timestamp().Str("ring", name).Logger()}
}

// NewConsoleLogger builds a Logger with zerolog's human-readable console
// writer, for local development runs.
func NewConsoleLogger(name string) Logger {
	cw := zerolog.ConsoleWriter{Out: os.Stderr}
	return Logger{z: zerolog.New(cw).With().Timestamp().Str("ring", name).Logger()}
}

// NopLogger discards everything. It is the default when no WithLogger
// option is supplied.
func NopLogger() Logger {
	return Logger{z: zerolog.Nop()}
}

// Opened logs successful ring construction.
func (l Logger) Opened(capacity int) {
	l.z.Info().Int("capacity", capacity).Msg("[bytering] ring opened")
}

// Closed logs a ring's Close call, including whether it had to discard
// in-flight reservations.
func (l Logger) Closed(quiescent bool) {
	l.z.Info().Bool("quiescent", quiescent).Msg("[bytering] ring closed")
}

// AllocFailed logs a backing-allocation failure from the configured
// api.BufferSource.
func (l Logger) AllocFailed(requested int, err error) {
	l.z.Error().Int("requested", requested).Err(err).Msg("[bytering] buffer allocation failed")
}
