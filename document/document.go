package document

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/bgraf/figurekit/figure"
	"github.com/google/uuid"
)

// Document is one markdown post. Its body is the text an editor works on;
// figures live inside it as encoded HTML fragments.
type Document struct {
	Path           string // File system path
	GUID           uuid.UUID
	Title          string
	Slug           string
	Author         string
	Date           time.Time
	Updated        time.Time
	Published      bool
	Tags           []Tag
	Abstract       string
	Preview        string
	HasFrontMatter bool

	header string
	body   string
}

// New creates a document from source without touching the file system.
func New(path string, source []byte) (*Document, error) {
	doc := &Document{
		Path: path,
	}

	header, body, err := readFrontMatter(doc, source)
	if err != nil {
		return nil, err
	}

	doc.header = string(header)
	doc.body = string(body)

	return doc, nil
}

// Markdown returns the full body text.
func (doc *Document) Markdown() string {
	return doc.body
}

// SetMarkdown replaces the full body text. The front matter is kept as is.
func (doc *Document) SetMarkdown(markdown string) {
	doc.body = markdown
}

// Source is the file content: front matter followed by the body.
func (doc *Document) Source() []byte {
	return []byte(doc.header + doc.body)
}

func (doc *Document) DocumentDirectory() string {
	return filepath.Dir(doc.Path)
}

func (doc *Document) HasAbstract() bool {
	return len(doc.Abstract) > 0
}

func (doc *Document) HasPreview() bool {
	return len(doc.Preview) > 0
}

// LastModified is the update date when present, otherwise the publication date.
func (doc *Document) LastModified() time.Time {
	if !doc.Updated.IsZero() {
		return doc.Updated
	}
	return doc.Date
}

func (doc *Document) FirstLocationTag() string {
	for _, tag := range doc.Tags {
		if tag.Category == "location" {
			return tag.String()
		}
	}

	return ""
}

// Figures decodes all figures in the body.
func (doc *Document) Figures() ([]figure.ImageConfig, error) {
	return figure.Figures(doc.body)
}

// ReplaceFigure validates cfg and writes it over the figure showing src.
func (doc *Document) ReplaceFigure(src string, cfg figure.ImageConfig) error {
	if err := figure.Validate(cfg); err != nil {
		return err
	}

	body, err := figure.Replace(doc.body, src, figure.Encode(cfg))
	if err != nil {
		return fmt.Errorf("replace figure in %s: %w", doc.Path, err)
	}

	doc.body = body
	return nil
}

// UpdateFigure applies edit to the figure showing src. The body is only
// changed when the edited config is valid.
func (doc *Document) UpdateFigure(src string, edit func(cfg *figure.ImageConfig)) error {
	var validationErr error

	body, err := figure.Update(doc.body, src, func(cfg *figure.ImageConfig) {
		edit(cfg)
		validationErr = figure.Validate(*cfg)
	})
	if err != nil {
		return fmt.Errorf("update figure in %s: %w", doc.Path, err)
	}
	if validationErr != nil {
		return validationErr
	}

	doc.body = body
	return nil
}

// InsertFigure validates cfg and inserts its fragment into the body.
func (doc *Document) InsertFigure(cfg figure.ImageConfig, pos figure.Position, offset int) error {
	if err := figure.Validate(cfg); err != nil {
		return err
	}

	doc.body = figure.Insert(doc.body, figure.Encode(cfg), pos, offset)
	return nil
}
