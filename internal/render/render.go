// Package render turns article markdown into sanitised HTML and plain-text excerpts.
package render

import (
	"bytes"
	stdhtml "html"
	"html/template"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
	stripper  = bluemonday.StrictPolicy()
)

// Markdown renders source to HTML safe to embed in a page
func Markdown(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes())), nil
}

// Summarize returns the plain text of source cut to at most limit runes.
// Whitespace is collapsed and an ellipsis marks a cut.
func Summarize(source string, limit int) string {
	var buf bytes.Buffer
	text := source
	if err := markdownEngine.Convert([]byte(source), &buf); err == nil {
		text = stripper.Sanitize(buf.String())
	}
	text = stdhtml.UnescapeString(text)
	text = strings.Join(strings.FieldsFunc(text, unicode.IsSpace), " ")

	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimRightFunc(string(runes[:limit]), unicode.IsSpace) + "…"
}
