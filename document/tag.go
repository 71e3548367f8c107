package document

import "strings"

type Tag struct {
	Raw      string `json:"name"`
	Category string `json:"category,omitempty"`
}

func (t Tag) HasCategory() bool {
	return len(t.Category) > 0
}

func (t Tag) String() string {
	return t.Raw
}

func (t Tag) Normalize() string {
	return NormalizeTagName(t.Raw)
}

// NormalizeTagName folds case and surrounding space so "Travel " and
// "travel" are the same tag.
func NormalizeTagName(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	return tag
}
