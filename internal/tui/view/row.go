package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ExpanderWidth is the number of cells reserved for the expander glyph.
const ExpanderWidth = 2

// RowViewState holds everything needed to render one task row.
type RowViewState struct {
	Lines int
	NameW int
	DateW int

	Glyph string // empty for leaves
	Name  string
	Start string
	End   string

	// Overlay is the rendered side element. It is drawn only when
	// OverlayVisible is set, right-aligned in [OverlayX, NameW).
	Overlay        string
	OverlayVisible bool
	OverlayX       int

	NameStyle  lipgloss.Style // carries the name cell background
	GlyphStyle lipgloss.Style
	DateStyle  lipgloss.Style
	NameBg     lipgloss.Color
}

// RenderRow renders a row with its text on the middle line.
func RenderRow(state RowViewState) string {
	lines := max(1, state.Lines)
	mid := (lines - 1) / 2

	blank := state.NameStyle.Width(state.NameW).Render("") +
		state.DateStyle.Width(state.DateW).Render("") +
		state.DateStyle.Width(state.DateW).Render("")

	out := make([]string, lines)
	for i := range out {
		if i != mid {
			out[i] = blank
			continue
		}
		out[i] = renderNameCell(state) +
			renderDateCell(state.Start, state.DateW, state.DateStyle) +
			renderDateCell(state.End, state.DateW, state.DateStyle)
	}
	return strings.Join(out, "\n")
}

func renderNameCell(state RowViewState) string {
	nameW := max(ExpanderWidth, state.NameW)
	name := ansi.Truncate(state.Name, nameW-ExpanderWidth, "…")

	var cell string
	if state.Glyph != "" {
		glyph := state.GlyphStyle.Render(ansi.Truncate(state.Glyph, 1, ""))
		cell = glyph + state.NameStyle.Width(nameW-1).Render(" "+name)
	} else {
		cell = state.NameStyle.Width(nameW).Render(strings.Repeat(" ", ExpanderWidth) + name)
	}

	if !state.OverlayVisible || state.OverlayX >= nameW {
		return cell
	}
	overlayW := nameW - state.OverlayX
	content := ansi.Truncate(state.Overlay, overlayW, "")
	overlay := state.NameStyle.
		Width(overlayW).
		Align(lipgloss.Right).
		Render(content)
	return SpliceAt(cell, ReapplyBackground(overlay, state.NameBg), state.OverlayX)
}

func renderDateCell(text string, width int, style lipgloss.Style) string {
	return style.Width(width).Render(ansi.Truncate(" "+text, width, "…"))
}
