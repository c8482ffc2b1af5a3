package logger

import (
	"github.com/ideamans/go-l10n"
	"github.com/user/playblast/pkg/ports"
)

// BroadcastLogger forwards every message to an inner logger and emits it
// as a ports.LogEvent to all registered subscribers. Subscribers see
// every message regardless of the inner logger's level filter, so UI
// code can observe output without scraping the console.
type BroadcastLogger struct {
	inner       ports.Logger
	subscribers []ports.LogSubscriber
}

// NewBroadcast creates a broadcasting logger around inner.
func NewBroadcast(inner ports.Logger) *BroadcastLogger {
	return &BroadcastLogger{inner: inner}
}

// Subscribe registers a subscriber for all future log events.
func (l *BroadcastLogger) Subscribe(sub ports.LogSubscriber) {
	l.subscribers = append(l.subscribers, sub)
}

// Debug logs a debug message.
func (l *BroadcastLogger) Debug(msg string, args ...interface{}) {
	l.inner.Debug(msg, args...)
	l.emit(ports.LevelDebug, msg, args...)
}

// Info logs an informational message.
func (l *BroadcastLogger) Info(msg string, args ...interface{}) {
	l.inner.Info(msg, args...)
	l.emit(ports.LevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *BroadcastLogger) Warn(msg string, args ...interface{}) {
	l.inner.Warn(msg, args...)
	l.emit(ports.LevelWarn, msg, args...)
}

// Error logs an error message.
func (l *BroadcastLogger) Error(msg string, args ...interface{}) {
	l.inner.Error(msg, args...)
	l.emit(ports.LevelError, msg, args...)
}

func (l *BroadcastLogger) emit(level ports.LogLevel, msg string, args ...interface{}) {
	if len(l.subscribers) == 0 {
		return
	}
	event := ports.LogEvent{
		Level:   level,
		Message: l10n.F(msg, args...),
	}
	for _, sub := range l.subscribers {
		sub(event)
	}
}

var _ ports.Logger = (*BroadcastLogger)(nil)
