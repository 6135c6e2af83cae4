package tasklist

import "github.com/javiermolinar/ganttlist/internal/task"

// Expander glyphs.
const (
	GlyphExpanded  = "▼"
	GlyphCollapsed = "▶"
)

// Glyph returns the expander glyph for e. Leaves have none.
func Glyph(e task.Expander) string {
	switch e {
	case task.Expanded:
		return GlyphExpanded
	case task.Collapsed:
		return GlyphCollapsed
	default:
		return ""
	}
}

// Row is one composed table row.
type Row struct {
	Key     string
	Task    *task.Task
	Glyph   string
	Hovered bool
	Height  int // pixels
	Name    NameCell
	Overlay *Overlay // nil for parent rows
	Start   DateCell
	End     DateCell
}

// NameCell holds the expander and name of a row.
type NameCell struct {
	Width int // pixels, used as fixed, min and max width
	Title string
	Text  string
}

// Overlay is the side element layer of a leaf row. It is present whether or
// not the row is hovered; Visible switches its opacity.
type Overlay struct {
	Visible bool
	Element SideElement
}

// Opacity returns 1 when the overlay is shown and 0 otherwise.
func (o *Overlay) Opacity() float64 {
	if o != nil && o.Visible {
		return 1
	}
	return 0
}

// DateCell is a formatted date column.
type DateCell struct {
	Width string // column width as configured, e.g. "155px"
	Text  string
}

// Rows composes one row per task, in input order.
func (t *Table) Rows() []Row {
	hover := t.hover.State()
	rows := make([]Row, 0, len(t.props.Tasks))
	for _, tsk := range t.props.Tasks {
		if tsk == nil {
			continue
		}
		rows = append(rows, t.composeRow(tsk, hover.Hovered(tsk.ID)))
	}
	return rows
}

func (t *Table) composeRow(tsk *task.Task, hovered bool) Row {
	glyph := Glyph(tsk.Expander)
	row := Row{
		Key:     tsk.ID + "row",
		Task:    tsk,
		Glyph:   glyph,
		Hovered: hovered,
		Height:  t.props.RowHeight,
		Name: NameCell{
			Width: t.props.TaskWidth,
			Title: tsk.Name,
			Text:  tsk.Name,
		},
		Start: DateCell{Width: t.props.RowWidth, Text: t.binding.Format(tsk.Start)},
		End:   DateCell{Width: t.props.RowWidth, Text: t.binding.Format(tsk.End)},
	}
	if glyph == "" {
		row.Overlay = &Overlay{
			Visible: hovered,
			Element: RenderSideElement(t.props.SideElement, tsk.ID, t.props.FetchData),
		}
	}
	return row
}
