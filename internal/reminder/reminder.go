// Package reminder tracks when the user last logged and decides when a
// nudge notification is due.
//
// The state machine has two states. Idle: no reminder due. Due: at least
// frequency seconds have elapsed since the last log. The state stays Due
// until the next successful log resets last_log.
package reminder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/marcus/devtrail/internal/config"
	"github.com/marcus/devtrail/internal/models"
)

// StateFile is the reminder state file name inside the base directory.
const StateFile = "reminder_settings.json"

// Load reads reminder state. A missing file yields a fresh state; it is
// written out on the first Touch. A state without its own frequency is
// seeded from config.json, so the frequency persisted here (via
// SetFrequency) wins over the configured one.
func Load(baseDir string) (*models.ReminderState, error) {
	data, err := os.ReadFile(filepath.Join(baseDir, StateFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &models.ReminderState{Frequency: configuredFrequency(baseDir)}, nil
		}
		return nil, err
	}

	var state models.ReminderState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", StateFile, err)
	}
	if state.Frequency <= 0 {
		state.Frequency = configuredFrequency(baseDir)
	}

	return &state, nil
}

// configuredFrequency reads the frequency from config.json, falling
// back to the default when the config is missing or unreadable.
func configuredFrequency(baseDir string) int64 {
	cfg, err := config.Load(baseDir)
	if err != nil {
		return config.DefaultFrequency
	}
	return config.Frequency(cfg)
}

// Save writes reminder state to disk using atomic write (temp file + rename).
func Save(baseDir string, state *models.ReminderState) error {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(baseDir, "reminder-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, filepath.Join(baseDir, StateFile))
}

// Due reports whether a reminder is due at now. A state that has never
// recorded a log is Idle.
func Due(state *models.ReminderState, now time.Time) bool {
	if state == nil || state.LastLog == 0 {
		return false
	}
	freq := state.Frequency
	if freq <= 0 {
		freq = config.DefaultFrequency
	}
	return now.Unix()-state.LastLog >= freq
}

// Elapsed returns the time since the last log, and false if nothing has
// been logged yet.
func Elapsed(state *models.ReminderState, now time.Time) (time.Duration, bool) {
	if state == nil || state.LastLog == 0 {
		return 0, false
	}
	return time.Duration(now.Unix()-state.LastLog) * time.Second, true
}

// Touch records a successful log at now and persists the state,
// returning the machine to Idle.
func Touch(baseDir string, now time.Time) error {
	state, err := Load(baseDir)
	if err != nil {
		return err
	}
	state.LastLog = now.Unix()
	return Save(baseDir, state)
}

// SetFrequency persists a new notification frequency in seconds.
func SetFrequency(baseDir string, seconds int64) error {
	if seconds <= 0 {
		return fmt.Errorf("frequency must be positive, got %d", seconds)
	}
	state, err := Load(baseDir)
	if err != nil {
		return err
	}
	state.Frequency = seconds
	return Save(baseDir, state)
}
