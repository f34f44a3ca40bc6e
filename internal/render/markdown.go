package render

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// md renders content-author markdown (about paragraphs, the menu note).
// Raw HTML in the source is filtered by goldmark's default renderer.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// markdownHTML converts a markdown snippet to HTML. On a conversion error
// the snippet is emitted escaped rather than dropped.
func markdownHTML(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(src) + "</p>")
	}
	return template.HTML(buf.String())
}
