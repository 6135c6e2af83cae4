package view

import "github.com/charmbracelet/lipgloss"

// FooterViewState holds the strings needed to render the footer section.
type FooterViewState struct {
	InnerW     int
	FooterH    int
	StatusLine string
	HelpLine   string
	VAlign     lipgloss.Position
	Bg         lipgloss.Color
}

// RenderFooter renders the status and help lines.
func RenderFooter(state FooterViewState) string {
	if state.FooterH <= 0 {
		return ""
	}

	s := state.StatusLine + "\n" + state.HelpLine
	if state.FooterH == 1 {
		s = state.HelpLine
		if state.StatusLine != "" {
			s = state.StatusLine
		}
	}

	return PlaceBox(state.InnerW, state.FooterH, state.VAlign, s, state.Bg)
}
