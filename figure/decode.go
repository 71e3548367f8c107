package figure

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bgraf/figurekit/option"
	"golang.org/x/net/html"
)

// ErrNoFigure is returned by DecodeFragment when the text holds no figure element.
var ErrNoFigure = errors.New("figure: no figure element")

// Decode recovers the configuration of a parsed figure element. Every field
// has a fallback, so Decode never fails: missing or unknown styles decode to
// their defaults.
func Decode(n *html.Node) ImageConfig {
	return DecodeSelection(goquery.NewDocumentFromNode(n).Selection)
}

// DecodeSelection decodes the figure at s. When s is an element inside a
// figure, such as the clicked image, the enclosing figure is used.
func DecodeSelection(s *goquery.Selection) ImageConfig {
	fig := s
	if !s.Is("figure") {
		if closest := s.Closest("figure"); closest.Length() > 0 {
			fig = closest
		}
	}

	figureStyles := ParseStyle(fig.AttrOr("style", ""))

	img := fig.Find("img").First()
	imgStyles := ParseStyle(img.AttrOr("style", ""))

	cfg := ImageConfig{
		Src:          img.AttrOr("src", ""),
		Alt:          img.AttrOr("alt", ""),
		WrapMode:     wrapModeFromFigure(figureStyles, fig.AttrOr("class", "")),
		OpenInNewTab: true,
		BorderRadius: borderRadiusFromCSS(imgStyles["border-radius"]),
		Shadow:       shadowFromCSS(imgStyles["box-shadow"]),
	}

	if w, ok := widthFromCSS(imgStyles["max-width"]); ok {
		cfg.Width = option.Some(w)
	}

	if link := fig.Find("a").Has("img").First(); link.Length() > 0 {
		cfg.LinkURL = link.AttrOr("href", "")
		cfg.OpenInNewTab = link.AttrOr("target", "") == "_blank"
	}

	if caption := fig.Find("figcaption").First(); caption.Length() > 0 {
		cfg.Caption = caption.Text()
	}

	return cfg
}

// DecodeFragment parses text and decodes its first figure.
func DecodeFragment(fragment string) (ImageConfig, error) {
	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return ImageConfig{}, fmt.Errorf("parse fragment: %w", err)
	}

	fig := goquery.NewDocumentFromNode(root).Find("figure").First()
	if fig.Length() == 0 {
		return ImageConfig{}, ErrNoFigure
	}

	return DecodeSelection(fig), nil
}

// Figures decodes every figure found in doc, in document order.
func Figures(doc string) ([]ImageConfig, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	var configs []ImageConfig

	goquery.NewDocumentFromNode(root).Find("figure").Each(func(i int, s *goquery.Selection) {
		configs = append(configs, DecodeSelection(s))
	})

	return configs, nil
}
