// Package notify dispatches desktop notifications behind a narrow
// interface so callers can substitute fakes in tests.
package notify

import "github.com/gen2brain/beeep"

// Notifier sends a desktop notification.
type Notifier interface {
	Notify(title, message string) error
}

// Desktop sends real notifications via the platform notification
// service (notify-send/dbus on Linux, Notification Center on macOS,
// toast on Windows).
type Desktop struct{}

// Notify implements Notifier.
func (Desktop) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Discard swallows notifications. Used when notifications are disabled.
type Discard struct{}

// Notify implements Notifier.
func (Discard) Notify(title, message string) error { return nil }
