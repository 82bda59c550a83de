// Package render turns authored content into display text: Markdown
// biographies into HTML and raw tier or type values into labels.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// md renders GFM. Raw HTML in the source is escaped (goldmark's default).
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		gmhtml.WithHardWraps(),
	),
)

// Markdown renders src to HTML safe for embedding in a template.
func Markdown(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil //nolint:gosec // goldmark escapes raw HTML
}

// Label title-cases a raw value for display: "platinum" becomes
// "Platinum", "keynote session" becomes "Keynote Session".
// A cases.Caser is not safe for concurrent use, so one is made per call.
func Label(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}
