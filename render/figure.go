package render

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/bgraf/figurekit/figure"
	"golang.org/x/net/html"
)

// ImplicitFigure turns each paragraph that holds nothing but an image, as
// produced by plain markdown `![alt](src)`, into a centred figure with the
// alt text as caption.
func ImplicitFigure(doc *goquery.Document) int {
	count := 0

	doc.Find("p").Each(func(i int, s *goquery.Selection) {
		n := s.Nodes[0]

		if n.FirstChild == nil || n.FirstChild != n.LastChild {
			return
		}

		if n.FirstChild.Type != html.ElementNode || n.FirstChild.Data != "img" {
			return
		}

		img := s.Children()
		src, ok := img.Attr("src")
		if !ok {
			return
		}

		alt := img.AttrOr("alt", "")

		cfg := figure.NewImageConfig(src, alt)
		cfg.Caption = img.AttrOr("title", alt)

		s.ReplaceWithHtml(figure.Encode(cfg))
		count++
	})

	return count
}
