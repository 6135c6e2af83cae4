package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func baseRowState() RowViewState {
	return RowViewState{
		Lines:      3,
		NameW:      20,
		DateW:      12,
		Name:       "Design",
		Start:      "03-05-2024",
		End:        "03-08-2024",
		OverlayX:   10,
		NameStyle:  lipgloss.NewStyle().Background(lipgloss.Color("#101010")),
		GlyphStyle: lipgloss.NewStyle(),
		DateStyle:  lipgloss.NewStyle(),
		NameBg:     lipgloss.Color("#101010"),
	}
}

func TestRenderRow_Layout(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)

	out := RenderRow(baseRowState())
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 44 {
			t.Errorf("line %d width = %d, want 44", i, w)
		}
	}

	mid := ansi.Strip(lines[1])
	if !strings.HasPrefix(mid, "  Design") {
		t.Errorf("leaf name should follow a blank expander region: %q", mid)
	}
	if !strings.Contains(mid, " 03-05-2024") || !strings.Contains(mid, " 03-08-2024") {
		t.Errorf("missing date cells: %q", mid)
	}
	if strings.TrimSpace(ansi.Strip(lines[0])) != "" {
		t.Errorf("first line should be blank: %q", ansi.Strip(lines[0]))
	}
}

func TestRenderRow_Glyph(t *testing.T) {
	state := baseRowState()
	state.Lines = 1
	state.Glyph = "▶"

	mid := ansi.Strip(RenderRow(state))
	if !strings.HasPrefix(mid, "▶ Design") {
		t.Errorf("expected glyph before name, got %q", mid)
	}
}

func TestRenderRow_Overlay(t *testing.T) {
	tests := []struct {
		name    string
		visible bool
		want    bool
	}{
		{"hidden overlay is not drawn", false, false},
		{"visible overlay is right aligned", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := baseRowState()
			state.Lines = 1
			state.Overlay = "⏱ 1h 05m"
			state.OverlayVisible = tt.visible

			out := RenderRow(state)
			plain := ansi.Strip(out)
			if got := strings.Contains(plain, "⏱ 1h 05m"); got != tt.want {
				t.Fatalf("overlay drawn = %v, want %v: %q", got, tt.want, plain)
			}
			if w := ansi.StringWidth(out); w != 44 {
				t.Errorf("width = %d, want 44", w)
			}
			if tt.want {
				nameCell := ansi.Cut(plain, 0, state.NameW)
				if !strings.HasSuffix(nameCell, "⏱ 1h 05m") {
					t.Errorf("overlay should end at the name cell edge: %q", nameCell)
				}
			}
		})
	}
}

func TestRenderRow_TruncatesLongName(t *testing.T) {
	state := baseRowState()
	state.Lines = 1
	state.Name = "An extremely long task name that overflows"

	out := RenderRow(state)
	if w := ansi.StringWidth(out); w != 44 {
		t.Fatalf("width = %d, want 44", w)
	}
	if !strings.Contains(ansi.Strip(out), "…") {
		t.Errorf("expected ellipsis in %q", ansi.Strip(out))
	}
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader(HeaderViewState{
		Titles: []string{"Task", "From", "To"},
		Widths: []int{20, 12, 12},
		Styles: []lipgloss.Style{lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle()},
		Lines:  3,
	})

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	mid := ansi.Strip(lines[1])
	for _, title := range []string{"Task", "From", "To"} {
		if !strings.Contains(mid, title) {
			t.Errorf("missing %q in header %q", title, mid)
		}
	}
	if strings.Count(mid, "To") != 1 {
		t.Errorf("expected a single To column: %q", mid)
	}
}

func TestSpliceAt(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		insert string
		x      int
		want   string
	}{
		{"middle", "abcdef", "XY", 2, "abXYef"},
		{"end", "abcdef", "XY", 4, "abcdXY"},
		{"past end pads", "ab", "XY", 4, "ab  XY"},
		{"start", "abcdef", "XY", 0, "XYcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ansi.Strip(SpliceAt(tt.line, tt.insert, tt.x)); got != tt.want {
				t.Errorf("SpliceAt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBackgroundSeq(t *testing.T) {
	if BackgroundSeq("") != "" {
		t.Error("empty color should have no sequence")
	}
	if BackgroundSeq("#101010") == "" {
		t.Error("hex color should have a sequence")
	}
	line := ReapplyBackground("a"+ansi.ResetStyle+"b", "#101010")
	if strings.Count(line, BackgroundSeq("#101010")) != 2 {
		t.Errorf("background should be set at start and after the reset: %q", line)
	}
}

func TestRenderFooter(t *testing.T) {
	out := RenderFooter(FooterViewState{
		InnerW:     30,
		FooterH:    2,
		StatusLine: "Timer started",
		HelpLine:   "q quit",
		VAlign:     lipgloss.Bottom,
	})
	plain := ansi.Strip(out)
	if !strings.Contains(plain, "Timer started") || !strings.Contains(plain, "q quit") {
		t.Errorf("unexpected footer %q", plain)
	}
}
