package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PlaceBox renders content in a lipgloss.Place box with background fill.
func PlaceBox(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(
		w,
		h,
		lipgloss.Left,
		vAlign,
		content,
		lipgloss.WithWhitespaceBackground(bg),
	)
	return PadLinesWithBackground(placed, w, h, bg)
}

// PadLinesWithBackground pads content to width/height with a background color.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	paddingStyle := lipgloss.NewStyle().Background(bg)
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := 0; i < height; i++ {
		line := lines[i]
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Truncate(line, width, "")
			continue
		}
		lines[i] = line + paddingStyle.Render(strings.Repeat(" ", width-lineWidth))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// SpliceAt replaces the cells of line starting at column x with insert.
// Cells of line past the inserted width are kept.
func SpliceAt(line, insert string, x int) string {
	if x < 0 {
		x = 0
	}
	insertW := ansi.StringWidth(insert)
	lineW := ansi.StringWidth(line)
	left := ansi.Cut(line, 0, x)
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ""
	if x+insertW < lineW {
		right = ansi.Cut(line, x+insertW, lineW)
	}
	return left + insert + ansi.ResetStyle + right
}

// ReapplyBackground reapplies bg after every ANSI reset in line, so that
// nested styles without their own background keep the cell color.
func ReapplyBackground(line string, bg lipgloss.Color) string {
	bgSeq := BackgroundSeq(bg)
	if bgSeq == "" {
		return line
	}
	seen := make(map[string]bool, 3)
	for _, reset := range []string{ansi.ResetStyle, "\x1b[0m", "\x1b[49m"} {
		if seen[reset] {
			continue
		}
		seen[reset] = true
		line = strings.ReplaceAll(line, reset, reset+bgSeq)
	}
	return bgSeq + line
}

// BackgroundSeq returns the background escape sequence for a hex color.
func BackgroundSeq(bg lipgloss.Color) string {
	if bg == "" || !strings.HasPrefix(string(bg), "#") {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(bg))).String()
}
