package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/javiermolinar/ganttlist/internal/tasklist"
)

// Raw HTML in task names is omitted, never passed through.
var htmlRenderer = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		emoji.Emoji,
	),
	goldmark.WithRendererOptions(
		html.WithXHTML(),
	),
)

// RenderHTML renders rows as an HTML table inside a div carrying the
// table's font family and size.
func RenderHTML(rows []tasklist.Row, fontFamily, fontSize string) (string, error) {
	var body bytes.Buffer
	if err := htmlRenderer.Convert([]byte(Markdown(rows)), &body); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, `<div class="ganttlist" style="font-family: %s; font-size: %s">`+"\n",
		template.HTMLEscapeString(fontFamily), template.HTMLEscapeString(fontSize))
	out.Write(body.Bytes())
	out.WriteString("</div>\n")
	return out.String(), nil
}
