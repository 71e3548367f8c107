// Package markdown turns post sources into HTML documents.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/bgraf/figurekit/markdown/figureblock"
	"github.com/bgraf/figurekit/markdown/yamlblock"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Result is a converted post.
type Result struct {
	HTML    *goquery.Document
	Meta    map[string]interface{}
	Figures int // number of `:: figure` blocks
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			meta.Meta,
			yamlblock.New(
				figureblock.NewFigureAddin(),
			),
		),
		goldmark.WithRendererOptions(
			// Figures are embedded as raw HTML and must pass through.
			html.WithUnsafe(),
		),
	)
}

// Convert renders source, which may start with YAML front matter, to HTML.
// path is only used in error messages.
func Convert(source []byte, path string) (*Result, error) {
	var buffer bytes.Buffer

	pc := parser.NewContext()
	yamlblock.SetDocumentPath(pc, path)

	if err := newMarkdown().Convert(source, &buffer, parser.WithContext(pc)); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(&buffer)
	if err != nil {
		return nil, fmt.Errorf("could not parse HTML: %w", err)
	}

	return &Result{
		HTML:    doc,
		Meta:    meta.Get(pc),
		Figures: figureblock.Count(pc),
	}, nil
}
