package reminder

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/marcus/devtrail/internal/config"
	"github.com/marcus/devtrail/internal/models"
)

// TestLoadMissingFile tests lazy initialization with the default frequency
func TestLoadMissingFile(t *testing.T) {
	state, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if state.LastLog != 0 {
		t.Errorf("LastLog = %d, want 0", state.LastLog)
	}
	if state.Frequency != config.DefaultFrequency {
		t.Errorf("Frequency = %d, want %d", state.Frequency, config.DefaultFrequency)
	}
}

// TestLoadSeedsFrequencyFromConfig tests that a configured frequency
// governs fresh state
func TestLoadSeedsFrequencyFromConfig(t *testing.T) {
	dir := t.TempDir()
	now := time.Unix(1_800_000_000, 0)

	if err := config.Save(dir, &models.Config{Frequency: 60}); err != nil {
		t.Fatalf("config.Save failed: %v", err)
	}

	state, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if state.Frequency != 60 {
		t.Fatalf("Frequency = %d, want 60 from config", state.Frequency)
	}

	// A log 61 seconds ago is Due under the configured 60s frequency.
	if err := Touch(dir, now); err != nil {
		t.Fatalf("Touch failed: %v", err)
	}
	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !Due(loaded, now.Add(61*time.Second)) {
		t.Error("Expected Due 61s after last log with configured frequency 60")
	}
	if Due(loaded, now.Add(59*time.Second)) {
		t.Error("Expected Idle 59s after last log with configured frequency 60")
	}
}

// TestStateFrequencyWinsOverConfig tests that an explicitly set
// frequency survives later config changes
func TestStateFrequencyWinsOverConfig(t *testing.T) {
	dir := t.TempDir()

	if err := SetFrequency(dir, 120); err != nil {
		t.Fatalf("SetFrequency failed: %v", err)
	}
	if err := config.Save(dir, &models.Config{Frequency: 60}); err != nil {
		t.Fatalf("config.Save failed: %v", err)
	}

	state, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if state.Frequency != 120 {
		t.Errorf("Frequency = %d, want 120 from state file", state.Frequency)
	}
}

// TestDueBoundaries tests the elapsed >= frequency transition
func TestDueBoundaries(t *testing.T) {
	now := time.Unix(1_800_000_000, 0)
	const freq = int64(86400)

	tests := []struct {
		name    string
		lastLog int64
		want    bool
	}{
		{"just logged", now.Unix(), false},
		{"one second past frequency", now.Unix() - freq - 1, true},
		{"exactly at frequency", now.Unix() - freq, true},
		{"one second before frequency", now.Unix() - freq + 1, false},
		{"never logged", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &models.ReminderState{LastLog: tt.lastLog, Frequency: freq}
			if got := Due(state, now); got != tt.want {
				t.Errorf("Due = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestDueStaysDueUntilTouch tests that Due holds until the next log
func TestDueStaysDueUntilTouch(t *testing.T) {
	dir := t.TempDir()
	now := time.Unix(1_800_000_000, 0)

	state := &models.ReminderState{
		LastLog:   now.Unix() - config.DefaultFrequency - 10,
		Frequency: config.DefaultFrequency,
	}
	if err := Save(dir, state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Repeated checks stay Due.
	for i := 0; i < 3; i++ {
		loaded, err := Load(dir)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !Due(loaded, now) {
			t.Fatal("Expected Due before Touch")
		}
	}

	if err := Touch(dir, now); err != nil {
		t.Fatalf("Touch failed: %v", err)
	}
	loaded, _ := Load(dir)
	if Due(loaded, now) {
		t.Error("Expected Idle after Touch")
	}
	if loaded.LastLog != now.Unix() {
		t.Errorf("LastLog = %d, want %d", loaded.LastLog, now.Unix())
	}
}

// TestTouchCreatesStateFile tests first-log initialization
func TestTouchCreatesStateFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Unix(1_800_000_000, 0)

	if err := Touch(dir, now); err != nil {
		t.Fatalf("Touch failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, StateFile)); err != nil {
		t.Fatalf("Expected %s to exist: %v", StateFile, err)
	}

	state, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if state.LastLog != now.Unix() {
		t.Errorf("LastLog = %d, want %d", state.LastLog, now.Unix())
	}
	if state.Frequency != config.DefaultFrequency {
		t.Errorf("Frequency = %d, want default %d", state.Frequency, config.DefaultFrequency)
	}
}

// TestSetFrequency tests frequency updates and validation
func TestSetFrequency(t *testing.T) {
	dir := t.TempDir()

	if err := SetFrequency(dir, 3600); err != nil {
		t.Fatalf("SetFrequency failed: %v", err)
	}
	state, _ := Load(dir)
	if state.Frequency != 3600 {
		t.Errorf("Frequency = %d, want 3600", state.Frequency)
	}

	if err := SetFrequency(dir, 0); err == nil {
		t.Error("SetFrequency(0) should fail")
	}
	if err := SetFrequency(dir, -5); err == nil {
		t.Error("SetFrequency(-5) should fail")
	}
}

// TestElapsed tests the elapsed helper
func TestElapsed(t *testing.T) {
	now := time.Unix(1_800_000_000, 0)

	if _, logged := Elapsed(&models.ReminderState{}, now); logged {
		t.Error("Elapsed on fresh state should report not logged")
	}

	state := &models.ReminderState{LastLog: now.Unix() - 90}
	elapsed, logged := Elapsed(state, now)
	if !logged || elapsed != 90*time.Second {
		t.Errorf("Elapsed = %v, %v", elapsed, logged)
	}
}

// TestLoadCorruptStateFile tests that garbage state is surfaced
func TestLoadCorruptStateFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, StateFile), []byte("{nope"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("Expected error for corrupt state file")
	}
}
