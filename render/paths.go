package render

import (
	"net/url"
	"path"

	"github.com/PuerkitoBio/goquery"
	"github.com/bgraf/figurekit/filesystem"
)

// RecoderFunc maps a document relative reference to its public URL. It
// returns false to leave the reference alone.
type RecoderFunc func(original string) (string, bool)

// RecodePaths rewrites relative image and source references, plus links that
// point at an image file. Other links, absolute URLs and absolute paths are
// kept.
func RecodePaths(doc *goquery.Document, recode RecoderFunc) {
	doc.Find("img,a,source").Each(func(i int, s *goquery.Selection) {
		attribute := "src"
		if s.Is("a") {
			attribute = "href"
		}

		ref, ok := s.Attr(attribute)
		if !ok || ref == "" {
			return
		}

		uri, err := url.Parse(ref)
		if err != nil {
			return
		}

		if uri.IsAbs() || path.IsAbs(uri.Path) || uri.Path == "" {
			// Absolute, or a pure fragment/query reference.
			return
		}

		if s.Is("a") && !filesystem.HasExtension(uri.Path, filesystem.ImageExtensions) {
			return
		}

		if target, ok := recode(ref); ok {
			s.SetAttr(attribute, target)
		}
	})
}

// MediaRecoder resolves relative references against a URL prefix, e.g.
// "photos/a.jpg" under "/media/2024" becomes "/media/2024/photos/a.jpg".
func MediaRecoder(prefix string) RecoderFunc {
	return func(original string) (string, bool) {
		return path.Join(prefix, original), true
	}
}
