// Package figureblock renders `:: figure` YAML blocks as figure fragments,
// so posts may describe an image declaratively instead of as raw HTML.
package figureblock

import (
	"fmt"

	"github.com/bgraf/figurekit/figure"
	"github.com/bgraf/figurekit/markdown/yamlblock"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/util"
)

const AddinKey = "figure"

var figureCount = parser.NewContextKey()

// Count returns how many figure blocks the parser has seen so far.
func Count(pc parser.Context) int {
	if count, ok := pc.Get(figureCount).(int); ok {
		return count
	}

	return 0
}

type figureNode struct {
	documentPath string
	number       int
	figure.ImageConfig `yaml:",inline"`
}

type FigureAddin struct{}

func NewFigureAddin() yamlblock.Addin {
	return &FigureAddin{}
}

func (f *FigureAddin) AddinKey() string {
	return AddinKey
}

func (f *FigureAddin) Make(pc parser.Context) interface{} {
	path, _ := yamlblock.DocumentPath(pc)

	number := Count(pc)
	pc.Set(figureCount, number+1)

	return &figureNode{
		documentPath: path,
		number:       number,
		ImageConfig:  figure.NewImageConfig("", ""),
	}
}

func (f *FigureAddin) Render(w util.BufWriter, source []byte, object interface{}, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkSkipChildren, nil
	}

	node := object.(*figureNode)
	if err := figure.Validate(node.ImageConfig); err != nil {
		return ast.WalkStop, fmt.Errorf("%s: figure %d: %w", node.documentPath, node.number, err)
	}

	_, _ = w.WriteString(figure.Encode(node.ImageConfig))
	_ = w.WriteByte('\n')

	return ast.WalkSkipChildren, nil
}
