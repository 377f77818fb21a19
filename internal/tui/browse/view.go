package browse

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/devtrail/internal/output"
)

var (
	mutedColor   = lipgloss.Color("241")
	warningColor = lipgloss.Color("214")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1)

	timestampStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	messageStyle   = lipgloss.NewStyle()
	tagStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	helpStyle      = lipgloss.NewStyle().Foreground(mutedColor)
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func (m Model) renderView() string {
	if !m.Ready {
		return "loading..."
	}

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(m.Viewport.View())
	sb.WriteString("\n")
	sb.WriteString(m.renderFooter())
	return sb.String()
}

func (m Model) renderHeader() string {
	title := fmt.Sprintf("devtrail — %d entries", len(m.Entries))
	if m.FilterTag != "" {
		title += fmt.Sprintf(" (tag: %s)", m.FilterTag)
	}
	return headerStyle.Render(title)
}

func (m Model) renderFooter() string {
	if m.Err != nil {
		return errStyle.Render(fmt.Sprintf("error: %v", m.Err))
	}
	if m.ShowHelp {
		return helpStyle.Render("j/k scroll  g/G top/bottom  r refresh  ? help  q quit")
	}
	return helpStyle.Render("? for help  q to quit")
}

func (m Model) renderEntries() string {
	if len(m.Entries) == 0 {
		return helpStyle.Render("no entries")
	}

	now := time.Now()
	var sb strings.Builder
	var lastDay string

	for _, e := range m.Entries {
		day := "unknown date"
		ago := ""
		if t, err := e.Time(); err == nil {
			day = t.Format("2006-01-02")
			ago = output.FormatTimeAgoFrom(t, now)
		}
		if day != lastDay {
			if lastDay != "" {
				sb.WriteString("\n")
			}
			sb.WriteString(headerDay(day))
			sb.WriteString("\n")
			lastDay = day
		}

		sb.WriteString("  ")
		sb.WriteString(timestampStyle.Render(ago))
		sb.WriteString("  ")
		sb.WriteString(messageStyle.Render(e.Message))
		if len(e.Tags) > 0 {
			sb.WriteString("  ")
			sb.WriteString(tagStyle.Render("[" + strings.Join(e.Tags, ", ") + "]"))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func headerDay(day string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(warningColor).Render(day)
}

// lipglossHeight counts rendered lines.
func lipglossHeight(s string) int {
	return lipgloss.Height(s)
}
