// Package report renders the composed task table as static documents:
// a GFM Markdown table, its terminal rendering and an HTML fragment.
package report

import (
	"strings"

	"github.com/javiermolinar/ganttlist/internal/tasklist"
)

// Column titles, in table order.
var columns = []string{"Task", "From", "To"}

// Markdown returns rows as a GFM table. Parent rows keep their expander glyph.
func Markdown(rows []tasklist.Row) string {
	var b strings.Builder
	writeRow(&b, columns)
	b.WriteString("| --- | --- | --- |\n")
	for _, row := range rows {
		name := row.Name.Text
		if row.Glyph != "" {
			name = row.Glyph + " " + name
		}
		writeRow(&b, []string{name, row.Start.Text, row.End.Text})
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(escapeCell(c))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

// markdownPunct are the characters that can open an inline construct:
// emphasis, links, raw HTML, entities, emoji shortcodes and autolinks.
const markdownPunct = "\\`*_{}[]<>()#+-.!|~:&"

// escapeCell keeps a cell on one line and its text literal: every
// character that Markdown would interpret is backslash-escaped.
func escapeCell(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(markdownPunct, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
