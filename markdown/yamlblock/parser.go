package yamlblock

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v2"
)

const (
	blockMarker = "::"
	fenceMarker = "---"
)

var yamlBlockNodeKind = ast.NewNodeKind("YAMLBlock")

type yamlBlockNode struct {
	ast.BaseBlock
	err           error
	addin         Addin
	object        interface{}
	immediateStop bool
}

func (n *yamlBlockNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Addin": n.addin.AddinKey()}, nil)
}

func (n *yamlBlockNode) Kind() ast.NodeKind {
	return yamlBlockNodeKind
}

type yamlBlockParser struct {
	parent *yamlBlock
}

func newYamlBlockParser(parent *yamlBlock) parser.BlockParser {
	return &yamlBlockParser{
		parent: parent,
	}
}

func (b *yamlBlockParser) Trigger() []byte {
	return []byte{':'}
}

func (b *yamlBlockParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, segment := reader.PeekLine()

	// Syntax is "::" name ["---"]
	fields := strings.Fields(string(line))
	if len(fields) < 2 || len(fields) > 3 || fields[0] != blockMarker {
		return nil, parser.NoChildren
	}
	if len(fields) == 3 && fields[2] != fenceMarker {
		return nil, parser.NoChildren
	}

	addin, ok := b.parent.findAddin(strings.ToLower(fields[1]))
	if !ok {
		return nil, parser.NoChildren
	}

	reader.Advance(segment.Len() - 1)

	return &yamlBlockNode{
		addin:         addin,
		immediateStop: len(fields) == 2,
	}, parser.NoChildren
}

func (b *yamlBlockParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	if node.(*yamlBlockNode).immediateStop {
		return parser.Close
	}

	line, seg := reader.PeekLine()
	if line == nil {
		return parser.Close
	}

	if strings.TrimSpace(string(line)) == fenceMarker {
		reader.Advance(seg.Len())
		return parser.Close
	}

	node.Lines().Append(seg)

	return parser.Continue | parser.NoChildren
}

func (b *yamlBlockParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {
	lines := node.Lines()

	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		buf.Write(segment.Value(reader.Source()))
	}

	ynode := node.(*yamlBlockNode)
	obj := ynode.addin.Make(pc)

	if err := yaml.Unmarshal(buf.Bytes(), obj); err != nil {
		ynode.err = err
		return
	}

	ynode.object = obj
}

func (b *yamlBlockParser) CanInterruptParagraph() bool {
	return false
}

func (b *yamlBlockParser) CanAcceptIndentedLine() bool {
	return false
}
