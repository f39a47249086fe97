// Package logging provides structured logging using Go's standard library log/slog.
// It writes JSON (or text) logs to the given writer and adapts the logger for Uber's Fx
// dependency injection framework.
package logging
