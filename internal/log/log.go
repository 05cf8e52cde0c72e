// SPDX-License-Identifier: MIT

// Package log is the CLI's thin wrapper over apex/log. Library packages
// (differ, matrix) never log.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// EnvLevel names the environment variable holding the log level.
const EnvLevel = "MATDIFF_LOG"

const tracePrefix = "TRACE: "

var traceEnabled bool

// InitLogger installs the one-line handler writing to w and sets the level
// from MATDIFF_LOG (trace, debug, info, warn, error, fatal; default error).
func InitLogger(w io.Writer) {
	envLevel := strings.ToLower(os.Getenv(EnvLevel))
	traceEnabled = envLevel == "trace"

	log.SetHandler(&Handler{Writer: w})
	log.SetLevel(ParseLevel(envLevel))
}

// ParseLevel maps a level name to an apex level. Unknown or empty names
// fall back to ErrorLevel; "trace" is debug with the trace prefix enabled.
func ParseLevel(name string) log.Level {
	switch strings.ToLower(name) {
	case "trace", "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.ErrorLevel
	}
}

// Handler formats entries as "<timestamp> <L> <message> k=v ...".
type Handler struct {
	Writer io.Writer
	Now    func() time.Time // nil means time.Now
}

// HandleLog implements log.Handler.
func (h *Handler) HandleLog(e *log.Entry) error {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	message := e.Message
	level := "?"
	if strings.HasPrefix(message, tracePrefix) {
		level = "T"
		message = message[len(tracePrefix):]
	} else {
		switch e.Level {
		case log.DebugLevel:
			level = "D"
		case log.InfoLevel:
			level = "I"
		case log.WarnLevel:
			level = "W"
		case log.ErrorLevel:
			level = "E"
		case log.FatalLevel:
			level = "F"
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s", now().Format("2006-01-02 15:04:05"), level, message)
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields.Get(name))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(h.Writer, b.String())
	return err
}

// Tracef logs at Trace level (below Debug).
func Tracef(format string, args ...interface{}) {
	if traceEnabled {
		log.Debug(tracePrefix + fmt.Sprintf(format, args...))
	}
}

// Debugf logs at Debug level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Infof logs at Info level.
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Errorf logs at Error level.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// WithField returns an entry carrying one field.
func WithField(key string, value interface{}) *log.Entry {
	return log.WithField(key, value)
}

// WithError returns an entry with error.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}
