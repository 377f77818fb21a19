// Package shell implements the interactive logging loop: prompt,
// validate, persist, publish, notify, sleep, repeat. All I/O, the clock,
// and the sleep are injected so the loop is testable without a terminal
// or real time.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/marcus/devtrail/internal/entry"
	"github.com/marcus/devtrail/internal/models"
	"github.com/marcus/devtrail/internal/notify"
	"github.com/marcus/devtrail/internal/output"
)

// QuitInput is the message input that terminates the loop.
const QuitInput = "q"

const (
	// invalidDelay is the brief pause before re-prompting after an
	// empty message.
	invalidDelay = 2 * time.Second
	// cycleDelay separates successful cycles.
	cycleDelay = 1 * time.Second
)

// NotifyTitle is the desktop notification title.
const NotifyTitle = "devtrail"

// NotifyBody is the reminder notification body.
const NotifyBody = "No work logged recently. Take a minute to jot down what you've been doing."

// Store persists log entries.
type Store interface {
	Append(e models.LogEntry) error
	Last() (*models.LogEntry, error)
}

// Publisher pushes a freshly appended entry to version control. A
// failure is surfaced as a warning; it never aborts the loop.
type Publisher interface {
	Publish(message string) error
}

// Reminder answers whether a nudge is due and records successful logs.
type Reminder interface {
	Due(now time.Time) bool
	Touch(now time.Time) error
}

// Shell is the single-threaded interactive loop. Each cycle is
// independent; the only state shared across cycles lives in the files
// behind Store and Reminder.
type Shell struct {
	In        io.Reader
	Out       io.Writer
	Store     Store
	Publisher Publisher
	Notifier  notify.Notifier
	Reminder  Reminder

	// Now and Sleep default to the real clock when nil.
	Now   func() time.Time
	Sleep func(time.Duration)
}

// Run executes the loop until the user enters "q" at the message prompt
// or input reaches EOF.
func (s *Shell) Run() error {
	if s.Now == nil {
		s.Now = time.Now
	}
	if s.Sleep == nil {
		s.Sleep = time.Sleep
	}
	if s.Notifier == nil {
		s.Notifier = notify.Discard{}
	}

	scanner := bufio.NewScanner(s.In)

	for {
		s.showStatus()
		s.checkReminder()

		fmt.Fprintf(s.Out, "message (%s to quit)> ", QuitInput)
		line, ok := s.readLine(scanner)
		if !ok {
			fmt.Fprintln(s.Out)
			return scanner.Err()
		}
		if line == QuitInput {
			return nil
		}
		if line == "" {
			fmt.Fprintln(s.Out, "message must not be empty")
			s.Sleep(invalidDelay)
			continue
		}

		fmt.Fprint(s.Out, "tags (comma separated, optional)> ")
		tags, _ := s.readLine(scanner)

		e, err := entry.Build(line, tags, false, s.Now())
		if err != nil {
			fmt.Fprintln(s.Out, err)
			s.Sleep(invalidDelay)
			continue
		}

		if err := s.Store.Append(e); err != nil {
			fmt.Fprintf(s.Out, "ERROR: %v\n", err)
			s.Sleep(invalidDelay)
			continue
		}
		fmt.Fprintln(s.Out, "logged.")

		if s.Publisher != nil {
			if err := s.Publisher.Publish(e.Message); err != nil {
				fmt.Fprintf(s.Out, "Warning: %v\n", err)
			}
		}

		if s.Reminder != nil {
			if err := s.Reminder.Touch(s.Now()); err != nil {
				fmt.Fprintf(s.Out, "Warning: cannot update reminder state: %v\n", err)
			}
		}

		s.Sleep(cycleDelay)
	}
}

// showStatus prints how long ago the last entry was logged.
func (s *Shell) showStatus() {
	last, err := s.Store.Last()
	if err != nil {
		fmt.Fprintf(s.Out, "Warning: %v\n", err)
		return
	}
	if last == nil {
		fmt.Fprintln(s.Out, "no entries yet")
		return
	}

	when := last.Timestamp
	if t, err := last.Time(); err == nil {
		when = output.FormatTimeAgoFrom(t, s.Now())
	}
	fmt.Fprintf(s.Out, "last entry: %s (%s)\n", truncate(last.Message, 60), when)
}

// checkReminder fires at most one notification per cycle when a
// reminder is due.
func (s *Shell) checkReminder() {
	if s.Reminder == nil || !s.Reminder.Due(s.Now()) {
		return
	}
	if err := s.Notifier.Notify(NotifyTitle, NotifyBody); err != nil {
		fmt.Fprintf(s.Out, "Warning: cannot send notification: %v\n", err)
	}
}

// readLine returns the next trimmed input line, with ok=false at EOF.
func (s *Shell) readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

// truncate shortens s to max runes. Counting runes keeps multibyte
// messages from being cut mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
