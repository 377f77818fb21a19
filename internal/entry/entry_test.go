package entry

import (
	"reflect"
	"testing"
	"time"
)

// TestParseTags tests comma splitting and whitespace trimming
func TestParseTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty input", "", []string{}},
		{"single tag", "work", []string{"work"}},
		{"spaces around tags", "a, b ,c", []string{"a", "b", "c"}},
		{"empty segments dropped", "a,,b", []string{"a", "b"}},
		{"whitespace only", "  ,  ", []string{}},
		{"duplicates preserved", "a,a", []string{"a", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTags(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTags(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestBuildRejectsEmptyMessage tests that blank messages fail validation
func TestBuildRejectsEmptyMessage(t *testing.T) {
	now := time.Now()

	for _, msg := range []string{"", "   ", "\t\n"} {
		if _, err := Build(msg, "", false, now); err != ErrEmptyMessage {
			t.Errorf("Build(%q) error = %v, want ErrEmptyMessage", msg, err)
		}
	}
}

// TestBuildTrimsMessage tests that surrounding whitespace is stripped
func TestBuildTrimsMessage(t *testing.T) {
	e, err := Build("  did a thing  ", "", false, time.Now())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if e.Message != "did a thing" {
		t.Errorf("Message = %q, want %q", e.Message, "did a thing")
	}
}

// TestBuildTimestampNow tests the current-time entry format
func TestBuildTimestampNow(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 999, time.UTC)

	e, err := Build("pi day", "", false, now)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if e.Timestamp != "2026-03-14T09:26:53Z" {
		t.Errorf("Timestamp = %q, want %q", e.Timestamp, "2026-03-14T09:26:53Z")
	}
}

// TestBuildYesterday tests that backdated entries land at the previous
// day 18:00 UTC regardless of time of day
func TestBuildYesterday(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{
			"morning",
			time.Date(2026, 3, 14, 0, 5, 0, 0, time.UTC),
			"2026-03-13T18:00:00Z",
		},
		{
			"late night",
			time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC),
			"2026-03-13T18:00:00Z",
		},
		{
			"across month boundary",
			time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			"2026-02-28T18:00:00Z",
		},
		{
			"non-UTC local time normalized first",
			time.Date(2026, 3, 14, 1, 0, 0, 0, time.FixedZone("ahead", 3*3600)),
			"2026-03-12T18:00:00Z", // 2026-03-13T22:00Z minus a day
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Build("late log", "", true, tt.now)
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if e.Timestamp != tt.want {
				t.Errorf("Timestamp = %q, want %q", e.Timestamp, tt.want)
			}
		})
	}
}

// TestBuildTagsAttached tests that parsed tags end up on the entry
func TestBuildTagsAttached(t *testing.T) {
	e, err := Build("msg", "infra, review", false, time.Now())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !reflect.DeepEqual(e.Tags, []string{"infra", "review"}) {
		t.Errorf("Tags = %v", e.Tags)
	}
}
