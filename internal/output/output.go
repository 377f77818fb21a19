// Package output provides styled terminal output helpers (success,
// error, warning, entry formatting) using lipgloss.
package output

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/devtrail/internal/models"
)

var (
	// Styles
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("ERROR: " + fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// JSON outputs data as indented JSON
func JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// FormatTags renders a tag list as "[a, b]" or empty string for no tags
func FormatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return tagStyle.Render("[" + strings.Join(tags, ", ") + "]")
}

// FormatEntry formats an entry as a single line: timestamp, message, tags
func FormatEntry(e *models.LogEntry) string {
	parts := []string{subtleStyle.Render(e.Timestamp), e.Message}
	if tags := FormatTags(e.Tags); tags != "" {
		parts = append(parts, tags)
	}
	return strings.Join(parts, "  ")
}

// FormatEntryLong formats an entry across multiple lines with a relative
// time header.
func FormatEntryLong(e *models.LogEntry, now time.Time) string {
	var sb strings.Builder

	header := e.Timestamp
	if t, err := e.Time(); err == nil {
		header = fmt.Sprintf("%s (%s)", e.Timestamp, FormatTimeAgoFrom(t, now))
	}
	sb.WriteString(titleStyle.Render(header))
	sb.WriteString("\n")
	sb.WriteString(e.Message)
	sb.WriteString("\n")
	if len(e.Tags) > 0 {
		sb.WriteString(subtleStyle.Render("Tags: "))
		sb.WriteString(strings.Join(e.Tags, ", "))
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatTimeAgo formats a time as a human-readable "ago" string
func FormatTimeAgo(t time.Time) string {
	return FormatTimeAgoFrom(t, time.Now())
}

// FormatTimeAgoFrom is FormatTimeAgo with an explicit reference point
// for deterministic tests.
func FormatTimeAgoFrom(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1h ago"
		}
		return fmt.Sprintf("%dh ago", hours)
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1d ago"
		}
		return fmt.Sprintf("%dd ago", days)
	default:
		return t.Format("2006-01-02")
	}
}
