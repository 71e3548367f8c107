package figure

import (
	"errors"
	"strings"
	"testing"
)

func sampleDocument(frags ...string) string {
	var b strings.Builder
	b.WriteString("# Post\n\nLead paragraph.\n\n")
	for i, f := range frags {
		b.WriteString(f)
		b.WriteString("\n\nParagraph ")
		b.WriteString(string(rune('A' + i)))
		b.WriteString(".\n\n")
	}
	return b.String()
}

func TestReplaceSplicesFigure(t *testing.T) {
	old := NewImageConfig("https://cdn/x.png", "x")
	doc := sampleDocument(Encode(old))

	updated := old
	updated.WrapMode = WrapFloatRight
	updated.Caption = "new caption"
	frag := Encode(updated)

	got, err := Replace(doc, old.Src, frag)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}

	want := strings.Replace(doc, Encode(old), frag, 1)
	if got != want {
		t.Fatalf("Replace() =\n%s\nwant\n%s", got, want)
	}
}

func TestReplaceIdempotent(t *testing.T) {
	cfg := NewImageConfig("same.png", "same")
	cfg.Caption = "c"
	frag := Encode(cfg)
	doc := sampleDocument(frag)

	got, err := Replace(doc, cfg.Src, frag)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if got != doc {
		t.Fatal("replacing a figure with itself changed the document")
	}
}

func TestReplaceNotFound(t *testing.T) {
	doc := sampleDocument(Encode(NewImageConfig("a.png", "a")))

	tests := []struct {
		name string
		doc  string
		src  string
	}{
		{"missing source", doc, "https://nonexistent/x.png"},
		{"empty source", doc, ""},
		{"no figure open", `<img src="bare.png"></figure>`, "bare.png"},
		{"no figure close", `<figure><img src="open.png">`, "open.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Replace(tt.doc, tt.src, "<figure>new</figure>")
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("err = %v, want ErrNotFound", err)
			}
			if got != tt.doc {
				t.Fatal("document modified on failure")
			}
		})
	}
}

func TestReplaceDuplicateSourcePicksFirst(t *testing.T) {
	first := NewImageConfig("dup.png", "first")
	second := NewImageConfig("dup.png", "second")
	doc := sampleDocument(Encode(first), Encode(second))

	got, err := Replace(doc, "dup.png", "<figure>X</figure>")
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if strings.Contains(got, `alt="first"`) || !strings.Contains(got, `alt="second"`) {
		t.Fatalf("expected first figure to be replaced: %s", got)
	}
}

func TestReplaceEscapedSource(t *testing.T) {
	cfg := NewImageConfig("img.png?w=1&h=2", "q")
	doc := sampleDocument(Encode(cfg))

	got, err := Replace(doc, cfg.Src, "<figure>X</figure>")
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if strings.Contains(got, "img.png") {
		t.Fatalf("figure not replaced: %s", got)
	}
}

func TestUpdate(t *testing.T) {
	cfg := NewImageConfig("u.png", "u")
	doc := sampleDocument(Encode(NewImageConfig("other.png", "o")), Encode(cfg))

	got, err := Update(doc, "u.png", func(c *ImageConfig) {
		c.Shadow = ShadowHard
		c.Alt = "updated"
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	want := cfg
	want.Shadow = ShadowHard
	want.Alt = "updated"
	if got != strings.Replace(doc, Encode(cfg), Encode(want), 1) {
		t.Fatalf("unexpected document:\n%s", got)
	}

	if _, err := Update(doc, "missing.png", func(*ImageConfig) {}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestInsert(t *testing.T) {
	doc := "first\n\nsecond"
	frag := "<figure>F</figure>"
	block := "\n\n" + frag + "\n\n"

	tests := []struct {
		name   string
		pos    Position
		offset int
		want   string
	}{
		{"start", PositionStart, 0, block + doc},
		{"end", PositionEnd, 3, doc + block},
		{"cursor", PositionCursor, 5, "first" + block + "\n\nsecond"},
		{"cursor out of range", PositionCursor, 999, doc + block},
		{"negative cursor", PositionCursor, -1, doc + block},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Insert(doc, frag, tt.pos, tt.offset); got != tt.want {
				t.Fatalf("Insert() = %q, want %q", got, tt.want)
			}
		})
	}
}
