package figure

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// ErrNotFound signals that no figure could be located for an image source.
// The document passed in is left as it was.
var ErrNotFound = errors.New("could not locate image")

const (
	figureOpen  = "<figure"
	figureClose = "</figure>"
)

// Span is the byte range [Start, End) of a figure fragment within a document.
type Span struct {
	Start int
	End   int
}

func (s Span) Text(doc string) string {
	return doc[s.Start:s.End]
}

// Locate finds the figure enclosing the first occurrence of src in doc. The
// search is purely textual: src is matched literally, then in its HTML-escaped
// form as written by Encode. When several figures share a source, the first
// one wins.
func Locate(doc, src string) (Span, error) {
	if src == "" {
		return Span{}, fmt.Errorf("%w: empty source", ErrNotFound)
	}

	srcIndex := strings.Index(doc, src)
	if srcIndex < 0 {
		if escaped := html.EscapeString(src); escaped != src {
			srcIndex = strings.Index(doc, escaped)
		}
	}
	if srcIndex < 0 {
		return Span{}, fmt.Errorf("%w: source %q not in document", ErrNotFound, src)
	}

	start := strings.LastIndex(doc[:srcIndex], figureOpen)
	endIndex := strings.Index(doc[srcIndex:], figureClose)
	if start < 0 || endIndex < 0 {
		return Span{}, fmt.Errorf("%w: no figure around %q", ErrNotFound, src)
	}

	return Span{
		Start: start,
		End:   srcIndex + endIndex + len(figureClose),
	}, nil
}

// Replace swaps the figure enclosing src for fragment and keeps every other
// byte of doc. On failure doc is returned unchanged together with an error
// wrapping ErrNotFound.
func Replace(doc, src, fragment string) (string, error) {
	span, err := Locate(doc, src)
	if err != nil {
		return doc, err
	}

	return doc[:span.Start] + fragment + doc[span.End:], nil
}

// Update decodes the figure enclosing src, lets edit change it and writes the
// re-encoded fragment back in place.
func Update(doc, src string, edit func(cfg *ImageConfig)) (string, error) {
	span, err := Locate(doc, src)
	if err != nil {
		return doc, err
	}

	cfg, err := DecodeFragment(span.Text(doc))
	if err != nil {
		return doc, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	edit(&cfg)

	return doc[:span.Start] + Encode(cfg) + doc[span.End:], nil
}

// Position selects where Insert places a new fragment.
type Position string

const (
	PositionStart  Position = "start"
	PositionEnd    Position = "end"
	PositionCursor Position = "cursor"
)

// Insert places fragment, padded by blank lines so markdown treats it as an
// HTML block, at the start, the end or at the byte offset of doc. A cursor
// offset outside the document appends.
func Insert(doc, fragment string, pos Position, offset int) string {
	block := "\n\n" + fragment + "\n\n"

	switch pos {
	case PositionStart:
		return block + doc
	case PositionCursor:
		if offset >= 0 && offset <= len(doc) {
			return doc[:offset] + block + doc[offset:]
		}
	}

	return doc + block
}
