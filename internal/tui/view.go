package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/ganttlist/internal/tasklist"
	"github.com/javiermolinar/ganttlist/internal/tui/view"
)

// View renders the header, the scrolling rows and the footer.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	l := m.layoutCache
	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		Header:           m.renderHeader(),
		Body:             view.PlaceBox(l.InnerW, l.BodyH, lipgloss.Top, m.bodyContent(), m.styles.colorBg),
		Footer:           view.RenderFooter(m.footerViewState()),
		Bg:               m.styles.colorBg,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) bodyContent() string {
	if len(m.table.Props().Tasks) == 0 {
		if m.loading {
			return m.styles.EmptyStyle.Render(" Loading tasks...")
		}
		return m.styles.EmptyStyle.Render(" No tasks yet. Add one with `ganttlist add`.")
	}
	return m.viewport.View()
}

func (m Model) renderHeader() string {
	l := m.layoutCache
	titles := []string{"Task", "From", "To"}
	cols, err := tasklist.HeaderColumns(tasklist.HeaderPropsFor(m.table.Props(), m.config.Table.HeaderHeight))
	if err == nil {
		titles = titles[:0]
		for _, c := range cols {
			titles = append(titles, c.Title)
		}
	}
	return view.RenderHeader(view.HeaderViewState{
		Titles: titles,
		Widths: []int{l.NameW, l.DateW, l.DateW},
		Styles: m.styleCache.Header,
		Lines:  l.HeaderLines,
	})
}

// renderRows renders every row; the viewport only scrolls.
func (m Model) renderRows(rows []tasklist.Row) string {
	l := m.layoutCache
	out := make([]string, len(rows))
	for i, row := range rows {
		selected := i == m.cursor
		zebra := i%2 == 1
		ns := nameShade(selected, row.Hovered, zebra)
		ds := dateShade(selected, zebra)

		state := view.RowViewState{
			Lines:      l.RowLines,
			NameW:      l.NameW,
			DateW:      l.DateW,
			Glyph:      row.Glyph,
			Name:       row.Name.Text,
			Start:      row.Start.Text,
			End:        row.End.Text,
			OverlayX:   l.OverlayX,
			NameStyle:  m.styleCache.NameCell[ns],
			GlyphStyle: m.styleCache.Glyph[ns],
			DateStyle:  m.styleCache.DateCell[ds],
			NameBg:     m.styles.shadeColor(ns),
		}
		if row.Overlay != nil && row.Overlay.Visible && row.Overlay.Element != nil {
			state.OverlayVisible = true
			state.Overlay = row.Overlay.Element.Render(l.OverlayW)
		}
		out[i] = view.RenderRow(state)
	}
	return strings.Join(out, "\n")
}

func (m Model) footerViewState() view.FooterViewState {
	l := m.layoutCache
	status := ""
	if m.statusMsg != "" {
		style := m.styles.StatusStyle
		if m.err != nil {
			style = m.styles.ErrorStyle
		}
		status = style.Render(" " + m.statusMsg)
	}
	return view.FooterViewState{
		InnerW:     l.InnerW,
		FooterH:    l.FooterH,
		StatusLine: status,
		HelpLine:   " " + m.help.View(m.keys),
		VAlign:     lipgloss.Bottom,
		Bg:         m.styles.colorBg,
	}
}
