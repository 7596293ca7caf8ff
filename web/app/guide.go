package app

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed content/*.md
var contentFS embed.FS

// GuideData is the pre-rendered usage guide.
type GuideData struct {
	Body template.HTML
}

// renderGuide converts the embedded guide to HTML once at startup.
// Raw HTML in the source is omitted by goldmark's default renderer.
func renderGuide() (GuideData, error) {
	src, err := contentFS.ReadFile("content/guide.md")
	if err != nil {
		return GuideData{}, fmt.Errorf("read guide: %w", err)
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return GuideData{}, fmt.Errorf("render guide: %w", err)
	}
	return GuideData{Body: template.HTML(buf.String())}, nil
}
