package figure

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Encode renders cfg as a figure fragment. The output is deterministic and
// its line breaks never vary, which Replace relies on.
func Encode(cfg ImageConfig) string {
	cfg = cfg.withDefaults()
	layout := cfg.WrapMode.layout()

	var buf bytes.Buffer

	_, _ = buf.WriteString(fmt.Sprintf(`<figure class="%s" style="%s">`, layout.class, layout.style))
	_ = buf.WriteByte('\n')

	if cfg.HasLink() {
		_, _ = buf.WriteString(`<a href="`)
		_, _ = buf.WriteString(html.EscapeString(cfg.LinkURL))
		_, _ = buf.WriteString(`"`)
		if cfg.OpenInNewTab {
			_, _ = buf.WriteString(` target="_blank" rel="noopener noreferrer"`)
		}
		_, _ = buf.WriteString(`>`)
	}

	writeImageTag(&buf, cfg)

	if cfg.HasLink() {
		_, _ = buf.WriteString(`</a>`)
	}

	if cfg.HasCaption() {
		_, _ = buf.WriteString("\n<figcaption>")
		_, _ = buf.WriteString(html.EscapeString(cfg.Caption))
		_, _ = buf.WriteString("</figcaption>")
	}

	_, _ = buf.WriteString("\n</figure>")

	return buf.String()
}

func writeImageTag(buf *bytes.Buffer, cfg ImageConfig) {
	_, _ = buf.WriteString(`<img src="`)
	_, _ = buf.WriteString(html.EscapeString(cfg.Src))
	_, _ = buf.WriteString(`" alt="`)
	_, _ = buf.WriteString(html.EscapeString(cfg.Alt))
	_, _ = buf.WriteString(`"`)

	if style := imageStyle(cfg); style != "" {
		_, _ = buf.WriteString(` style="`)
		_, _ = buf.WriteString(style)
		_, _ = buf.WriteString(`"`)
	}

	_, _ = buf.WriteString(` loading="lazy" decoding="async" />`)
}

// imageStyle joins the image declarations in their fixed order: width,
// radius, shadow.
func imageStyle(cfg ImageConfig) string {
	var decls []string

	if cfg.Width.IsSome() && cfg.WrapMode != WrapFull {
		decls = append(decls, fmt.Sprintf("max-width: %dpx", cfg.Width.Get()))
	}

	if v := cfg.BorderRadius.CSSValue(); v != "" {
		decls = append(decls, "border-radius: "+v)
	}

	if v := cfg.Shadow.CSSValue(); v != "" {
		decls = append(decls, "box-shadow: "+v)
	}

	return strings.Join(decls, "; ")
}
