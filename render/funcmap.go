package render

import (
	"fmt"
	"html/template"
	"time"

	"github.com/bgraf/figurekit/document"
	"github.com/goodsign/monday"
)

// MakeTemplateFuncmap returns the helpers used by the preview templates.
// Dates are formatted for locale, e.g. monday.LocaleDeDE.
func MakeTemplateFuncmap(tagSet *TagSet, locale monday.Locale) template.FuncMap {
	return template.FuncMap{
		"tagColor": func(tag document.Tag) string {
			return tagSet.HexColor(tag.String())
		},
		"tagDisplay": func(tag document.Tag) template.HTML {
			name := template.HTMLEscapeString(tag.String())
			if tag.Category == "location" {
				return template.HTML(fmt.Sprintf("<i class=\"icon-map-pin-line icon-small\"></i> %s", name))
			}

			return template.HTML(name)
		},
		"dateDisplay": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return monday.Format(t, "2 January 2006", locale)
		},
	}
}
