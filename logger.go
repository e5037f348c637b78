package jwt

import (
	"log"

	"github.com/sirupsen/logrus"
)

// Logger is the diagnostic sink the Validator writes to. Modeled on
// auth0-go-jwt-middleware/logger.go's adapter pattern: a minimal
// interface plus a stdlib default and a logrus adapter, so callers
// with an existing logging stack don't have to route through ours.
//
// The Validator never logs key bytes, raw signatures, or full tokens —
// only category names, algorithm names, and key identifiers.
// Diagnostic text accumulates across all attempted keys but never
// leaks key bytes.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// nopLogger discards everything; it's the ValidationParameters default
// so a Logger never has to be nil-checked on the hot path.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// StdLogger adapts the standard library's log package.
type StdLogger struct {
	*log.Logger
}

// NewStdLogger wraps log.Default() (or l, if non-nil).
func NewStdLogger(l *log.Logger) *StdLogger {
	if l == nil {
		l = log.Default()
	}
	return &StdLogger{Logger: l}
}

func (s *StdLogger) Debugf(format string, args ...any) { s.Printf("DEBUG "+format, args...) }
func (s *StdLogger) Infof(format string, args ...any)  { s.Printf("INFO "+format, args...) }
func (s *StdLogger) Warnf(format string, args ...any)  { s.Printf("WARN "+format, args...) }
func (s *StdLogger) Errorf(format string, args ...any) { s.Printf("ERROR "+format, args...) }

// logrusLogger adapts a logrus.FieldLogger.
type logrusLogger struct {
	l logrus.FieldLogger
}

// NewLogrusLogger returns a Logger backed by an existing
// logrus.FieldLogger (either *logrus.Logger or *logrus.Entry).
func NewLogrusLogger(l logrus.FieldLogger) Logger {
	return &logrusLogger{l: l}
}

func (a *logrusLogger) Debugf(format string, args ...any) { a.l.Debugf(format, args...) }
func (a *logrusLogger) Infof(format string, args ...any)  { a.l.Infof(format, args...) }
func (a *logrusLogger) Warnf(format string, args ...any)  { a.l.Warnf(format, args...) }
func (a *logrusLogger) Errorf(format string, args ...any) { a.l.Errorf(format, args...) }
