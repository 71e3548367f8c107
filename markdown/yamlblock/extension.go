// Package yamlblock adds fenced YAML blocks to goldmark:
//
//	:: figure ---
//	src: cat.png
//	alt: A cat
//	---
//
// The word after "::" selects an Addin which decodes the YAML and renders
// the block. A line of just ":: name" uses the addin's defaults.
package yamlblock

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

type yamlBlock struct {
	addinByKey map[string]Addin
}

func New(addins ...Addin) goldmark.Extender {
	addinByKey := make(map[string]Addin)
	for _, addin := range addins {
		addinByKey[strings.ToLower(addin.AddinKey())] = addin
	}

	return &yamlBlock{
		addinByKey: addinByKey,
	}
}

func (y *yamlBlock) findAddin(key string) (Addin, bool) {
	addin, ok := y.addinByKey[key]
	return addin, ok
}

func (y *yamlBlock) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithBlockParsers(
			util.Prioritized(
				newYamlBlockParser(y),
				999,
			),
		),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(newYamlBlockRenderer(), 500),
		),
	)
}

// Addin handles one kind of block.
type Addin interface {
	AddinKey() string
	// Make returns the value the block's YAML is decoded into.
	Make(pc parser.Context) interface{}
	Render(w util.BufWriter, source []byte, object interface{}, entering bool) (ast.WalkStatus, error)
}
