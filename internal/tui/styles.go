// Package tui provides the terminal user interface for ganttlist.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/ganttlist/internal/tui/theme"
)

// rowShade is the background variant of a row or cell.
type rowShade int

const (
	shadeBase rowShade = iota
	shadeZebra
	shadeSelected
	shadeHover
	shadeSelectedHover
	numShades
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorHover       lipgloss.Color
	colorRunning     lipgloss.Color
	colorWarning     lipgloss.Color

	colorZebra         lipgloss.Color
	colorSelectedHover lipgloss.Color

	// Header row
	HeaderStyle lipgloss.Style

	// Cells without width; StyleCache adds widths per layout
	NameCellStyle lipgloss.Style
	DateCellStyle lipgloss.Style
	GlyphStyle    lipgloss.Style

	// Side element
	TimerStyle        lipgloss.Style
	TimerRunningStyle lipgloss.Style

	// Footer
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style

	// App container
	AppStyle lipgloss.Style

	// Empty table
	EmptyStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorHover = palette.Hover
	s.colorRunning = palette.Running
	s.colorWarning = palette.Warning
	s.colorZebra = palette.ZebraBg
	s.colorSelectedHover = palette.SelectedHoverBg

	s.HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBgHighlight)

	s.NameCellStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.DateCellStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.GlyphStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent)

	s.TimerStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.TimerRunningStyle = lipgloss.NewStyle().
		Foreground(s.colorRunning).
		Bold(true)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg)

	s.EmptyStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Italic(true)

	return s
}

// shadeColor returns the background color of a shade.
func (s *Styles) shadeColor(shade rowShade) lipgloss.Color {
	switch shade {
	case shadeZebra:
		return s.colorZebra
	case shadeSelected:
		return s.colorBgSelection
	case shadeHover:
		return s.colorHover
	case shadeSelectedHover:
		return s.colorSelectedHover
	default:
		return s.colorBg
	}
}

// NameCellStyleWidth returns the name cell style for a shade with specified width.
func (s *Styles) NameCellStyleWidth(width int, shade rowShade) lipgloss.Style {
	return s.NameCellStyle.Width(width).Background(s.shadeColor(shade))
}

// DateCellStyleWidth returns the date cell style for a shade with specified width.
func (s *Styles) DateCellStyleWidth(width int, shade rowShade) lipgloss.Style {
	return s.DateCellStyle.Width(width).Background(s.shadeColor(shade))
}

// HeaderStyleWidth returns the header style with specified width.
func (s *Styles) HeaderStyleWidth(width int) lipgloss.Style {
	return s.HeaderStyle.Width(width)
}

// nameShade picks the name cell shade. Hover is scoped to the name cell.
func nameShade(selected, hovered, zebra bool) rowShade {
	switch {
	case selected && hovered:
		return shadeSelectedHover
	case hovered:
		return shadeHover
	default:
		return dateShade(selected, zebra)
	}
}

// dateShade picks the shade of the date cells of a row.
func dateShade(selected, zebra bool) rowShade {
	switch {
	case selected:
		return shadeSelected
	case zebra:
		return shadeZebra
	default:
		return shadeBase
	}
}
