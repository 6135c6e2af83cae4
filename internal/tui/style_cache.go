package tui

import "github.com/charmbracelet/lipgloss"

// StyleCache stores width-specific styles to avoid per-cell mutations.
type StyleCache struct {
	NameCell [numShades]lipgloss.Style
	DateCell [numShades]lipgloss.Style
	Glyph    [numShades]lipgloss.Style
	Header   []lipgloss.Style
}

// NewStyleCache precomputes the cell styles for the given column widths.
func NewStyleCache(styles *Styles, nameW, dateW int) StyleCache {
	var c StyleCache
	for shade := rowShade(0); shade < numShades; shade++ {
		c.NameCell[shade] = styles.NameCellStyleWidth(nameW, shade)
		c.DateCell[shade] = styles.DateCellStyleWidth(dateW, shade)
		c.Glyph[shade] = styles.GlyphStyle.Background(styles.shadeColor(shade))
	}
	c.Header = []lipgloss.Style{
		styles.HeaderStyleWidth(nameW),
		styles.HeaderStyleWidth(dateW),
		styles.HeaderStyleWidth(dateW),
	}
	return c
}
