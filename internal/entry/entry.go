// Package entry builds log entries from raw user input: message
// validation, tag parsing, and timestamp selection.
package entry

import (
	"errors"
	"strings"
	"time"

	"github.com/marcus/devtrail/internal/models"
)

// ErrEmptyMessage is returned when the message is blank or
// whitespace-only. Nothing is persisted in that case.
var ErrEmptyMessage = errors.New("message must not be empty")

// backdateHour is the hour of day (UTC) used for backdated entries.
const backdateHour = 18

// Build constructs a LogEntry from user input. The reference time is
// passed in so callers (and tests) control the clock. With yesterday
// set, the timestamp is the previous calendar day at 18:00:00 UTC
// regardless of the current time of day.
func Build(message, tags string, yesterday bool, now time.Time) (models.LogEntry, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return models.LogEntry{}, ErrEmptyMessage
	}

	ts := now.UTC()
	if yesterday {
		prev := ts.AddDate(0, 0, -1)
		ts = time.Date(prev.Year(), prev.Month(), prev.Day(), backdateHour, 0, 0, 0, time.UTC)
	}

	return models.LogEntry{
		Timestamp: ts.Format(models.TimestampFormat),
		Message:   message,
		Tags:      ParseTags(tags),
	}, nil
}

// ParseTags splits a comma-separated tag string, trimming surrounding
// whitespace from each tag. Empty input yields an empty (non-nil) slice
// so the document marshals as "tags": []. Tags are not de-duplicated.
func ParseTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
