package sitemap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bgraf/figurekit/document"
)

const (
	namespace       = "http://www.sitemaps.org/schemas/sitemap/0.9"
	changeFrequency = "never"
	postPriority    = "0.8"
	lastModLayout   = "2006-01-02"
)

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []url    `xml:"url"`
}

type url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Entry is one sitemap line.
type Entry struct {
	Loc     string
	LastMod time.Time
}

// Entries lists the published documents, newest first. The last
// modification is the update date, or the publication date if the post was
// never updated.
func Entries(site string, docs []*document.Document) []Entry {
	var published []*document.Document
	for _, doc := range docs {
		if doc.Published {
			published = append(published, doc)
		}
	}

	sort.SliceStable(published, func(i, j int) bool {
		return published[i].Date.After(published[j].Date)
	})

	entries := make([]Entry, 0, len(published))
	for _, doc := range published {
		entries = append(entries, Entry{
			Loc:     PostURL(site, doc.Slug),
			LastMod: doc.LastModified(),
		})
	}

	return entries
}

// Build renders the sitemap for docs. Unpublished documents are skipped and
// an empty urlset is produced when nothing is published.
func Build(site string, docs []*document.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, site, docs); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func Write(w io.Writer, site string, docs []*document.Document) error {
	set := urlSet{XMLNS: namespace}

	for _, e := range Entries(site, docs) {
		u := url{
			Loc:        e.Loc,
			ChangeFreq: changeFrequency,
			Priority:   postPriority,
		}
		if !e.LastMod.IsZero() {
			u.LastMod = e.LastMod.Format(lastModLayout)
		}

		set.URLs = append(set.URLs, u)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}

	_, err := io.WriteString(w, "\n")
	return err
}
