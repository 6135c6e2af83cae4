package tui

import (
	"github.com/javiermolinar/ganttlist/internal/tasklist"
)

// Footer height: status line and help line.
const footerHeight = 2

// Column width fallbacks in pixels, used when the configured lengths fail to parse.
const (
	fallbackRowWidthPx = 155
)

// LayoutCache stores layout dimensions derived from the window size and
// the table props, all in terminal cells.
type LayoutCache struct {
	InnerW int
	InnerH int

	NameW int
	DateW int

	HeaderLines int
	RowLines    int

	BodyH   int
	FooterH int

	// Side element area inside the name cell
	OverlayX int
	OverlayW int
}

// TableW returns the width of the three table columns.
func (l LayoutCache) TableW() int {
	return l.NameW + 2*l.DateW
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	props := m.table.Props()
	metrics := m.metrics

	dateW := metrics.ColumnsPx(fallbackRowWidthPx)
	if l, err := tasklist.ParseLength(props.RowWidth); err == nil {
		dateW = metrics.Columns(l)
	}
	nameW := metrics.ColumnsPx(props.TaskWidth)

	appH, appV := m.styles.AppStyle.GetFrameSize()
	innerW := max(0, width-appH)
	innerH := max(0, height-appV)

	headerLines := metrics.Lines(m.config.Table.HeaderHeight)
	rowLines := metrics.Lines(props.RowHeight)

	footerH := min(footerHeight, innerH)
	bodyH := max(1, innerH-headerLines-footerH)

	overlayX := nameW / 2
	return LayoutCache{
		InnerW:      innerW,
		InnerH:      innerH,
		NameW:       nameW,
		DateW:       dateW,
		HeaderLines: headerLines,
		RowLines:    rowLines,
		BodyH:       bodyH,
		FooterH:     footerH,
		OverlayX:    overlayX,
		OverlayW:    nameW - overlayX,
	}
}
