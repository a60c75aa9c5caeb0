// Package observability provides diagnostic event reporting and formatted
// output utilities for verbose CLI mode.
package observability

import "log"

// Sink receives diagnostic events from components that must never fail.
// Extractors report recovered internal faults here instead of returning
// errors to their callers.
type Sink interface {
	Event(component, message string)
}

// NopSink discards all events.
type NopSink struct{}

// Event implements Sink.
func (NopSink) Event(string, string) {}

// LogSink writes events to the standard logger.
type LogSink struct{}

// Event implements Sink.
func (LogSink) Event(component, message string) {
	log.Printf("[%s] %s", component, message)
}

// OrNop returns the given sink, or a NopSink when nil. Components call this
// once at construction so event reporting never needs a nil check.
func OrNop(sink Sink) Sink {
	if sink == nil {
		return NopSink{}
	}
	return sink
}
