package export

import (
	"testing"
	"time"

	"github.com/marcus/devtrail/internal/models"
)

func doc(entries ...models.LogEntry) *models.LogDocument {
	return &models.LogDocument{Logs: entries}
}

func at(ts, msg string, tags ...string) models.LogEntry {
	if tags == nil {
		tags = []string{}
	}
	return models.LogEntry{Timestamp: ts, Message: msg, Tags: tags}
}

// TestBuildWindowFilter tests the lookback cutoff at midnight UTC
func TestBuildWindowFilter(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	out := Build(doc(
		at("2026-03-01T10:00:00Z", "too old"),
		at("2026-03-07T00:00:00Z", "exactly at cutoff"),
		at("2026-03-10T12:00:00Z", "inside"),
		at("2026-03-14T08:00:00Z", "today"),
	), 7, now)

	if out.SinceDate != "2026-03-07T00:00:00Z" {
		t.Errorf("SinceDate = %q", out.SinceDate)
	}
	if len(out.Entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(out.Entries))
	}
	if out.Entries[0].Message != "exactly at cutoff" {
		t.Errorf("Entries[0] = %q, order should be preserved", out.Entries[0].Message)
	}
	if out.TimeframeDays != 7 {
		t.Errorf("TimeframeDays = %d", out.TimeframeDays)
	}
	if out.GeneratedAt != "2026-03-14T09:00:00Z" {
		t.Errorf("GeneratedAt = %q", out.GeneratedAt)
	}
}

// TestBuildStatistics tests entry, day, and tag counting
func TestBuildStatistics(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	out := Build(doc(
		at("2026-03-12T10:00:00Z", "a", "infra"),
		at("2026-03-12T15:00:00Z", "b", "infra", "review"),
		at("2026-03-13T10:00:00Z", "c"),
	), 7, now)

	s := out.Statistics
	if s.TotalEntries != 3 {
		t.Errorf("TotalEntries = %d", s.TotalEntries)
	}
	if s.ActiveDays != 2 {
		t.Errorf("ActiveDays = %d", s.ActiveDays)
	}
	if s.EntriesByTag["infra"] != 2 || s.EntriesByTag["review"] != 1 {
		t.Errorf("EntriesByTag = %v", s.EntriesByTag)
	}
}

// TestBuildEmptyWindow tests the empty-log and no-match cases
func TestBuildEmptyWindow(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	out := Build(doc(), 7, now)
	if out.Statistics.TotalEntries != 0 || len(out.Entries) != 0 {
		t.Errorf("Empty log: %+v", out)
	}
	if out.Entries == nil {
		t.Error("Entries should marshal as [], not null")
	}
	if out.Statistics.EntriesByTag != nil {
		t.Error("EntriesByTag should be omitted when empty")
	}

	out = Build(doc(at("2020-01-01T00:00:00Z", "ancient")), 7, now)
	if out.Statistics.TotalEntries != 0 {
		t.Errorf("Out-of-window entry counted: %+v", out.Statistics)
	}
}

// TestBuildSkipsMalformedTimestamps tests tolerance of bad entries
func TestBuildSkipsMalformedTimestamps(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	out := Build(doc(
		at("yesterday-ish", "bad clock"),
		at("2026-03-13T10:00:00Z", "good"),
	), 7, now)

	if len(out.Entries) != 1 || out.Entries[0].Message != "good" {
		t.Errorf("Entries = %+v", out.Entries)
	}
}
