package render

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/PuerkitoBio/goquery"
	"github.com/bgraf/figurekit/document"
	"github.com/bgraf/figurekit/markdown"
)

type Options struct {
	// MediaPrefix is the URL under which the content directory is served.
	// Empty keeps relative references untouched.
	MediaPrefix string
	// ContentDirectory is the root the media prefix maps to.
	ContentDirectory string
}

// Page is a rendered document.
type Page struct {
	Document       *document.Document
	HTML           *goquery.Document
	BlockFigures   int
	ImplicitImages int
}

// Render converts doc to HTML and post-processes it: bare images become
// figures and relative media references are rewritten.
func Render(doc *document.Document, opts Options) (*Page, error) {
	res, err := markdown.Convert(doc.Source(), doc.Path)
	if err != nil {
		return nil, err
	}

	page := &Page{
		Document:     doc,
		HTML:         res.HTML,
		BlockFigures: res.Figures,
	}

	page.ImplicitImages = ImplicitFigure(res.HTML)

	if opts.MediaPrefix != "" {
		prefix := opts.MediaPrefix
		if opts.ContentDirectory != "" {
			rel, err := filepath.Rel(opts.ContentDirectory, doc.DocumentDirectory())
			if err != nil {
				return nil, fmt.Errorf("media path of %s: %w", doc.Path, err)
			}
			prefix = path.Join(prefix, filepath.ToSlash(rel))
		}

		RecodePaths(res.HTML, MediaRecoder(prefix))
	}

	return page, nil
}

// Fragment returns the inner HTML of the page body.
func (p *Page) Fragment() (string, error) {
	return p.HTML.Find("body").Html()
}
