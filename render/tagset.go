package render

import (
	"sync"

	"github.com/bgraf/figurekit/document"
	"github.com/lucasb-eyer/go-colorful"
)

// TagSet hands out one stable colour per tag.
type TagSet struct {
	mu     sync.Mutex
	colors map[string]colorful.Color
}

func NewTagSet() *TagSet {
	return &TagSet{
		colors: make(map[string]colorful.Color),
	}
}

func (ts *TagSet) HexColor(tag string) string {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	normTag := document.NormalizeTagName(tag)

	c, ok := ts.colors[normTag]
	if !ok {
		c = colorful.HappyColor()
		ts.colors[normTag] = c
	}

	return c.Hex()
}

func (ts *TagSet) HexColors(tags ...string) []string {
	colors := make([]string, len(tags))

	for i, tag := range tags {
		colors[i] = ts.HexColor(tag)
	}

	return colors
}
