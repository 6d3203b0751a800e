package main

// Logger abstracts logging so tests can capture output.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Broadcaster pushes patch events to connected clients.
type Broadcaster interface {
	BroadcastEvent(eventType string, payload any)
}
