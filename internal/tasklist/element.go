package tasklist

// SideElement is the caller's interactive view shown over the right half
// of a leaf row's name cell.
type SideElement interface {
	// Render draws the element into at most width terminal cells.
	Render(width int) string
}

// Clickable is implemented by side elements that react to a click.
type Clickable interface {
	Click()
}

// SideElementFactory builds the side element of one row from that row's
// task ID and the caller's data refresh callback.
type SideElementFactory func(taskID string, fetchData func()) SideElement

// RenderSideElement instantiates the side element for one row.
// A nil factory yields no element.
func RenderSideElement(factory SideElementFactory, taskID string, fetchData func()) SideElement {
	if factory == nil {
		return nil
	}
	return factory(taskID, fetchData)
}
