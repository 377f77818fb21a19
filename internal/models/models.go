// Package models defines the data structures shared across devtrail:
// log entries, the on-disk log document, reminder state, and config.
package models

import "time"

// TimestampFormat is the wire format for entry timestamps: UTC,
// second precision, trailing Z.
const TimestampFormat = "2006-01-02T15:04:05Z"

// LogEntry is one timestamped, tagged free-text record. Entries are
// immutable once appended to the log.
type LogEntry struct {
	Timestamp string   `json:"timestamp"`
	Message   string   `json:"message"`
	Tags      []string `json:"tags"`
}

// Time parses the entry timestamp.
func (e *LogEntry) Time() (time.Time, error) {
	return time.Parse(TimestampFormat, e.Timestamp)
}

// LogDocument is the full ordered collection of entries persisted to
// log.json. Order is insertion order; the log is append-only.
type LogDocument struct {
	Logs []LogEntry `json:"logs"`
}

// ReminderState is persisted to reminder_settings.json. LastLog is epoch
// seconds of the most recent successful log; zero means never logged.
type ReminderState struct {
	LastLog   int64 `json:"last_log"`
	Frequency int64 `json:"frequency"`
}

// Config holds user-adjustable settings persisted to config.json.
// Zero values mean "use the default".
type Config struct {
	Remote    string `json:"remote,omitempty"`
	Branch    string `json:"branch,omitempty"`
	Frequency int64  `json:"frequency,omitempty"`
}
