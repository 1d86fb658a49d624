package event

import (
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"time"
)

// DeadLetterSchemaVersion is stamped on every entry so the log stays
// parseable if the entry shape ever changes.
const DeadLetterSchemaVersion = "1.0"

// DeadLetterEntry is one event the resilient publisher gave up on.
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// DeadLetterWriter appends exhausted events to a JSON-lines file so they can
// be replayed after the underlying fault is fixed.
type DeadLetterWriter struct {
	mu   sync.Mutex
	file *os.File
}

func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, err
	}
	return &DeadLetterWriter{file: f}, nil
}

// Write appends one entry. Serialized through the mutex so concurrent
// publishers cannot interleave lines.
func (w *DeadLetterWriter) Write(event Event, attempts int, lastError error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     time.Now(),
		Event:         event,
		Attempts:      attempts,
	}
	if lastError != nil {
		entry.LastError = lastError.Error()
	}

	slog.Warn("Event dead-lettered",
		"event_type", event.Type,
		"attempts", attempts,
		"error", entry.LastError)

	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	_, err = w.file.Write(append(line, '\n'))
	return err
}

func (w *DeadLetterWriter) Close() error {
	return w.file.Close()
}
