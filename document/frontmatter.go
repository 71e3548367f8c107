package document

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bgraf/figurekit/util/slices"
	"github.com/google/uuid"
	"github.com/yuin/goldmark/util"
	"gopkg.in/yaml.v2"
)

type FrontMatter struct {
	Title     string      `yaml:"title"`
	Slug      string      `yaml:"slug,omitempty"`
	Date      YamlDate    `yaml:"date"`
	Updated   YamlDate    `yaml:"updated,omitempty"`
	Author    string      `yaml:"author"`
	Status    string      `yaml:"status,omitempty"`
	Published bool        `yaml:"published,omitempty"`
	Preview   string      `yaml:"preview,omitempty"`
	Abstract  string      `yaml:"abstract,omitempty"`
	GUID      string      `yaml:"guid,omitempty"`
	Tags      interface{} `yaml:"tags,omitempty"`
}

// readFrontMatter fills doc from the YAML header of source and returns the
// header text and the markdown body. Source without a header is all body.
func readFrontMatter(doc *Document, source []byte) (header, body []byte, err error) {
	fmSource, headerEnd, ok, err := findFrontMatterSource(source)
	if err != nil {
		return nil, source, fmt.Errorf("read front matter: %w", err)
	}

	doc.Slug = slugFromPath(doc.Path)

	if !ok {
		doc.GUID = guidFromPath(doc.Path)
		return nil, source, nil
	}

	fm := FrontMatter{}

	err = yaml.Unmarshal(fmSource, &fm)
	if err != nil {
		return nil, source, fmt.Errorf("parse YAML: %w", err)
	}

	doc.GUID, err = uuid.Parse(fm.GUID)
	if err != nil {
		doc.GUID = guidFromPath(doc.Path)
	}

	doc.Title = fm.Title
	doc.Date = time.Time(fm.Date)
	doc.Updated = time.Time(fm.Updated)
	doc.Author = fm.Author
	doc.Abstract = strings.TrimSpace(fm.Abstract)
	doc.Preview = fm.Preview
	doc.Published = fm.Published || fm.Status == "published"
	doc.Tags = tagsFromYAML(fm.Tags)

	if fm.Slug != "" {
		doc.Slug = fm.Slug
	}

	doc.HasFrontMatter = true

	return source[:headerEnd], source[headerEnd:], nil
}

// guidFromPath derives a name-based GUID from the absolute file path, so a
// post without a `guid` keeps the same GUID across loads.
func guidFromPath(path string) uuid.UUID {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+filepath.ToSlash(path)))
}

// tagsFromYAML accepts either a plain list of tags or a mapping from
// category to list, and mixtures of both inside a list.
func tagsFromYAML(raw interface{}) []Tag {
	var tags []Tag

	appendCategory := func(m map[interface{}]interface{}) {
		for k, v := range m {
			category, ok := k.(string)
			if !ok {
				continue
			}

			items, ok := v.([]interface{})
			if !ok {
				continue
			}

			names, _ := slices.PartitionStrings(items)
			for _, name := range names {
				tags = append(tags, Tag{Raw: name, Category: category})
			}
		}
	}

	switch v := raw.(type) {
	case []interface{}:
		names, rest := slices.PartitionStrings(v)
		for _, name := range names {
			tags = append(tags, Tag{Raw: name})
		}
		for _, r := range rest {
			if m, ok := r.(map[interface{}]interface{}); ok {
				appendCategory(m)
			}
		}
	case map[interface{}]interface{}:
		appendCategory(v)
	}

	return tags
}

type YamlDate time.Time

func (t *YamlDate) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var txt string
	err := unmarshal(&txt)
	if err != nil {
		return err
	}

	date, err := time.Parse("2006-01-02", txt)
	if err != nil {
		return err
	}

	*t = YamlDate(date)
	return nil
}

// findFrontMatterSource returns the YAML between the opening and closing
// `---` lines and the offset at which the markdown body starts.
func findFrontMatterSource(source []byte) ([]byte, int, bool, error) {
	nSkipWhite := util.FirstNonSpacePosition(source)
	if nSkipWhite < 0 || !startsWithFrontMatterMarker(source[nSkipWhite:]) {
		// Assume no front-matter
		return nil, 0, false, nil
	}

	startPos := nSkipWhite + 3
	endPos, ok := findEndPos(source[startPos:])
	if !ok {
		return nil, 0, false, fmt.Errorf("no front matter ending indicator")
	}
	endPos += startPos

	bodyStart := endPos + 3
	if bodyStart < len(source) && source[bodyStart] == '\n' {
		bodyStart++
	}

	return source[startPos:endPos], bodyStart, true, nil
}

// findEndPos finds a closing marker at the start of a line.
func findEndPos(source []byte) (int, bool) {
	for i := 1; i+3 <= len(source); i++ {
		if source[i-1] == '\n' && startsWithFrontMatterMarker(source[i:]) {
			return i, true
		}
	}

	return 0, false
}

func startsWithFrontMatterMarker(source []byte) bool {
	return bytes.HasPrefix(source, []byte{'-', '-', '-'})
}

func slugFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
