package log

import (
	stdlog "log"
	"strings"
)

// stdLogBridge adapts Logger to io.Writer for the stdlib log package.
type stdLogBridge struct {
	logger Logger
	level  Level
}

func (b stdLogBridge) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\n")
	switch b.level {
	case DebugLevel:
		b.logger.Debug(msg)
	case WarnLevel:
		b.logger.Warn(msg)
	case ErrorLevel:
		b.logger.Error(msg)
	default:
		b.logger.Info(msg)
	}
	return len(p), nil
}

// RedirectStdLog routes the stdlib default logger (used by dependencies
// such as Pebble) through the facade at info level.
func RedirectStdLog(logger Logger) {
	stdlog.SetFlags(0)
	stdlog.SetOutput(stdLogBridge{logger: logger, level: InfoLevel})
}

// ToStdLogger returns a *log.Logger that writes through the facade at the
// given level, for libraries that require one.
func ToStdLogger(logger Logger, level Level) *stdlog.Logger {
	return stdlog.New(stdLogBridge{logger: logger, level: level}, "", 0)
}
