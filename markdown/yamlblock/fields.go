package yamlblock

import "github.com/yuin/goldmark/parser"

var documentPathKey = parser.NewContextKey()

// SetDocumentPath records the path of the markdown file being converted so
// addins can mention it in errors.
func SetDocumentPath(pc parser.Context, documentPath string) {
	pc.Set(documentPathKey, documentPath)
}

func DocumentPath(pc parser.Context) (string, bool) {
	if path, ok := pc.Get(documentPathKey).(string); ok {
		return path, true
	}

	return "", false
}
