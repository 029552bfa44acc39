// Package log provides stamp's structured logging facade.
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context. Internally it is backed by the standard
// library's slog via a bridge handler that feeds our formatter/output
// pipeline, so slog-aware libraries and our own code produce uniform output.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.With(log.Component("server"))
//	l.Info("listening", log.Str("addr", ":8080"))
//
// Use ApplyConfig to build a logger from a declarative Config (level plus
// json/text format), and RedirectStdLog to route stdlib log output (used by
// Pebble) through the facade.
package log
