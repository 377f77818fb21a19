package output

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// Digest rendering wraps to the terminal, but long lines of prose read
// badly at full width on wide displays, so the wrap is capped.
const (
	minDigestWidth = 20
	maxDigestWidth = 100
)

// RenderMarkdown renders a markdown digest for the terminal, wrapped to
// the current width. Empty input renders to an empty string.
func RenderMarkdown(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(digestWidth()),
	)
	if err != nil {
		return "", err
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		return "", err
	}

	return strings.TrimRight(rendered, "\n"), nil
}

// digestWidth probes the terminal, then COLUMNS, and clamps the result.
// Non-terminal output (pipes, CI) gets the cap.
func digestWidth() int {
	width := maxDigestWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	} else if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		width = cols
	}

	if width < minDigestWidth {
		return minDigestWidth
	}
	if width > maxDigestWidth {
		return maxDigestWidth
	}
	return width
}
