package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/bgraf/figurekit/res"
	"github.com/goodsign/monday"
)

const previewTemplate = "preview.html"

// Templates renders pages with the embedded HTML templates.
type Templates struct {
	templates *template.Template
}

func ReadTemplates(tagSet *TagSet, locale monday.Locale) (*Templates, error) {
	templates, err := template.New("").Funcs(MakeTemplateFuncmap(tagSet, locale)).ParseFS(res.Templates, "templates/*")
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return &Templates{templates: templates}, nil
}

// Preview writes a standalone HTML page for p.
func (t *Templates) Preview(w io.Writer, p *Page) error {
	fragment, err := p.Fragment()
	if err != nil {
		return fmt.Errorf("extract body: %w", err)
	}

	var buf bytes.Buffer
	err = t.templates.ExecuteTemplate(&buf, previewTemplate, map[string]interface{}{
		"Document": p.Document,
		"Fragment": template.HTML(fragment),
	})
	if err != nil {
		return fmt.Errorf("execute %s: %w", previewTemplate, err)
	}

	_, err = buf.WriteTo(w)
	return err
}
