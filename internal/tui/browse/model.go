// Package browse is a small Bubble Tea TUI for scrolling the log
// history, newest entries first.
package browse

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/devtrail/internal/models"
	"github.com/marcus/devtrail/internal/store"
)

// refreshInterval is how often the log is re-read from disk, so entries
// appended by another invocation show up while browsing.
const refreshInterval = 5 * time.Second

// TickMsg triggers a data refresh
type TickMsg time.Time

// RefreshMsg carries a freshly loaded document
type RefreshMsg struct {
	Entries []models.LogEntry
	Err     error
}

// Model is the Bubble Tea model for the browse TUI
type Model struct {
	BaseDir string

	Entries []models.LogEntry
	Err     error

	Viewport viewport.Model
	Width    int
	Height   int
	Ready    bool

	ShowHelp    bool
	FilterTag   string
	LastRefresh time.Time
}

// NewModel creates a browse model rooted at baseDir.
func NewModel(baseDir string, filterTag string) Model {
	return Model{
		BaseDir:   baseDir,
		FilterTag: filterTag,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchData(), m.scheduleTick())
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		headerHeight := lipglossHeight(m.renderHeader())
		footerHeight := lipglossHeight(m.renderFooter())
		if !m.Ready {
			m.Viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.Ready = true
		} else {
			m.Viewport.Width = msg.Width
			m.Viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.Viewport.SetContent(m.renderEntries())
		return m, nil

	case TickMsg:
		return m, tea.Batch(m.fetchData(), m.scheduleTick())

	case RefreshMsg:
		m.Entries = msg.Entries
		m.Err = msg.Err
		m.LastRefresh = time.Now()
		if m.Ready {
			m.Viewport.SetContent(m.renderEntries())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// handleKey processes key input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "r":
		return m, m.fetchData()

	case "g":
		m.Viewport.GotoTop()
		return m, nil

	case "G":
		m.Viewport.GotoBottom()
		return m, nil

	case "?":
		m.ShowHelp = !m.ShowHelp
		return m, nil
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	return m.renderView()
}

// scheduleTick returns a command that sends a TickMsg after the refresh interval
func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// fetchData re-reads the log and applies the tag filter, newest first.
func (m Model) fetchData() tea.Cmd {
	baseDir := m.BaseDir
	filterTag := m.FilterTag
	return func() tea.Msg {
		doc, err := store.Load(baseDir)
		if err != nil {
			return RefreshMsg{Err: err}
		}

		entries := make([]models.LogEntry, 0, len(doc.Logs))
		for i := len(doc.Logs) - 1; i >= 0; i-- {
			e := doc.Logs[i]
			if filterTag != "" && !hasTag(&e, filterTag) {
				continue
			}
			entries = append(entries, e)
		}
		return RefreshMsg{Entries: entries}
	}
}

func hasTag(e *models.LogEntry, tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
