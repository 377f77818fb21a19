// Package export assembles the JSON envelope written by `devtrail
// export`: entries within a lookback window plus summary statistics.
package export

import (
	"time"

	"github.com/marcus/devtrail/internal/models"
)

// Statistics summarizes the exported window.
type Statistics struct {
	TotalEntries int            `json:"total_entries"`
	ActiveDays   int            `json:"active_days"`
	EntriesByTag map[string]int `json:"entries_by_tag,omitempty"`
}

// Document is the export envelope.
type Document struct {
	GeneratedAt   string            `json:"generated_at"`
	TimeframeDays int               `json:"timeframe_days"`
	SinceDate     string            `json:"since_date"`
	Statistics    Statistics        `json:"statistics"`
	Entries       []models.LogEntry `json:"entries"`
}

// Build filters the log to entries within the last timeframeDays
// (measured from midnight UTC, so a full first day is included) and
// computes statistics over the window. Entry order is preserved.
func Build(doc *models.LogDocument, timeframeDays int, now time.Time) *Document {
	now = now.UTC()
	start := now.AddDate(0, 0, -timeframeDays)
	since := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	entries := []models.LogEntry{}
	byTag := map[string]int{}
	days := map[string]struct{}{}

	for _, e := range doc.Logs {
		t, err := e.Time()
		if err != nil || t.Before(since) {
			continue
		}
		entries = append(entries, e)
		days[t.Format("2006-01-02")] = struct{}{}
		for _, tag := range e.Tags {
			byTag[tag]++
		}
	}

	stats := Statistics{
		TotalEntries: len(entries),
		ActiveDays:   len(days),
	}
	if len(byTag) > 0 {
		stats.EntriesByTag = byTag
	}

	return &Document{
		GeneratedAt:   now.Format(models.TimestampFormat),
		TimeframeDays: timeframeDays,
		SinceDate:     since.Format(models.TimestampFormat),
		Statistics:    stats,
		Entries:       entries,
	}
}
