package report

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Glamour standard styles.
const (
	StyleDark  = "dark"
	StyleLight = "light"
)

const minWidth = 20

var (
	renderersMu sync.Mutex
	// Keyed by style and wrap width. A fixed style avoids the terminal
	// background query WithAutoStyle performs.
	renderers = map[string]*glamour.TermRenderer{}
)

// RenderTerminal renders Markdown for a terminal of the given width.
// style is StyleDark or StyleLight; anything else falls back to dark.
func RenderTerminal(md string, width int, style string) (string, error) {
	md = strings.TrimSpace(md)
	if md == "" {
		return "", nil
	}
	if style != StyleLight {
		style = StyleDark
	}
	width = max(width, minWidth)

	r, err := renderer(style, width)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

func renderer(style string, width int) (*glamour.TermRenderer, error) {
	key := fmt.Sprintf("%s:%d", style, width)

	renderersMu.Lock()
	defer renderersMu.Unlock()

	if r := renderers[key]; r != nil {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	renderers[key] = r
	return r, nil
}
