package tasklist

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidLength is returned for widths that are not px, ch, or bare numbers.
var ErrInvalidLength = errors.New("length must be a number with optional px or ch unit")

// Unit is the unit of a Length.
type Unit int

const (
	UnitPx Unit = iota
	UnitCh      // terminal cells
)

// Length is a column width as written by the hosting chart, e.g. "155px".
type Length struct {
	Value float64
	Unit  Unit
}

// ParseLength parses "155px", "20ch" or "155" (pixels).
func ParseLength(s string) (Length, error) {
	raw := strings.TrimSpace(strings.ToLower(s))
	unit := UnitPx
	switch {
	case strings.HasSuffix(raw, "px"):
		raw = strings.TrimSuffix(raw, "px")
	case strings.HasSuffix(raw, "ch"):
		raw = strings.TrimSuffix(raw, "ch")
		unit = UnitCh
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return Length{}, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}
	return Length{Value: v, Unit: unit}, nil
}

func (l Length) String() string {
	v := strconv.FormatFloat(l.Value, 'f', -1, 64)
	if l.Unit == UnitCh {
		return v + "ch"
	}
	return v + "px"
}

// Metrics converts pixel sizes to terminal cells.
type Metrics struct {
	CellWidthPx  int
	CellHeightPx int
}

// DefaultMetrics approximates a 14px monospace font.
var DefaultMetrics = Metrics{CellWidthPx: 8, CellHeightPx: 16}

// Columns returns the number of terminal columns l covers, at least 1.
func (m Metrics) Columns(l Length) int {
	if l.Unit == UnitCh {
		return max(1, int(math.Round(l.Value)))
	}
	return m.ColumnsPx(int(math.Round(l.Value)))
}

// ColumnsPx returns the number of terminal columns px covers, at least 1.
func (m Metrics) ColumnsPx(px int) int {
	w := m.CellWidthPx
	if w <= 0 {
		w = DefaultMetrics.CellWidthPx
	}
	return max(1, (px+w/2)/w)
}

// Lines returns the number of terminal lines px covers, at least 1.
func (m Metrics) Lines(px int) int {
	h := m.CellHeightPx
	if h <= 0 {
		h = DefaultMetrics.CellHeightPx
	}
	return max(1, (px+h/2)/h)
}
