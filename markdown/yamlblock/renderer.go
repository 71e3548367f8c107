package yamlblock

import (
	"fmt"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

type yamlBlockRenderer struct {
}

func newYamlBlockRenderer() renderer.NodeRenderer {
	return &yamlBlockRenderer{}
}

func (r *yamlBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(yamlBlockNodeKind, r.renderProxy)
}

func (r *yamlBlockRenderer) renderProxy(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	node := n.(*yamlBlockNode)
	if node.err != nil {
		// The block's YAML did not decode; stop rendering and report it.
		return ast.WalkStop, fmt.Errorf("%s block: %w", node.addin.AddinKey(), node.err)
	}

	return node.addin.Render(w, source, node.object, entering)
}
