package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// HeaderViewState holds the columns of the table header.
type HeaderViewState struct {
	Titles []string
	Widths []int
	Styles []lipgloss.Style
	Lines  int
}

// RenderHeader renders the header row with titles on its middle line.
func RenderHeader(state HeaderViewState) string {
	lines := max(1, state.Lines)
	mid := (lines - 1) / 2

	out := make([]string, lines)
	for i := range out {
		var b strings.Builder
		for col, title := range state.Titles {
			width := 0
			if col < len(state.Widths) {
				width = state.Widths[col]
			}
			style := lipgloss.NewStyle()
			if col < len(state.Styles) {
				style = state.Styles[col]
			}
			text := ""
			if i == mid {
				text = ansi.Truncate(" "+title, width, "…")
			}
			b.WriteString(style.Width(width).Render(text))
		}
		out[i] = b.String()
	}
	return strings.Join(out, "\n")
}
