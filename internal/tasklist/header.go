package tasklist

// HeaderProps is what the header renderer receives from the table host.
type HeaderProps struct {
	HeaderHeight int // pixels
	RowWidth     string
	TaskWidth    int // pixels
	FontFamily   string
	FontSize     string
}

// Column is one header column.
type Column struct {
	Title string
	Width Length
}

// HeaderColumns returns the task, start and end columns. It keeps no state.
func HeaderColumns(p HeaderProps) ([]Column, error) {
	dateWidth, err := ParseLength(p.RowWidth)
	if err != nil {
		return nil, err
	}
	return []Column{
		{Title: "Task", Width: Length{Value: float64(p.TaskWidth), Unit: UnitPx}},
		{Title: "From", Width: dateWidth},
		{Title: "To", Width: dateWidth},
	}, nil
}

// HeaderPropsFor derives header props from the table props.
func HeaderPropsFor(p Props, headerHeight int) HeaderProps {
	return HeaderProps{
		HeaderHeight: headerHeight,
		RowWidth:     p.RowWidth,
		TaskWidth:    p.TaskWidth,
		FontFamily:   p.FontFamily,
		FontSize:     p.FontSize,
	}
}
