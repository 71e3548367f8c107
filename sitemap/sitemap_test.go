package sitemap

import (
	"strings"
	"testing"
	"time"

	"github.com/bgraf/figurekit/document"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in, path, trailing string
	}{
		{"", "/", "/"},
		{"/", "/", "/"},
		{"blog/post", "/blog/post", "/blog/post"},
		{"/blog/post/", "/blog/post/", "/blog/post"},
		{"/blog/post?ref=x#top", "/blog/post", "/blog/post"},
		{"/about#team", "/about", "/about"},
	}

	for _, tt := range tests {
		if got := NormalizePath(tt.in); got != tt.path {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.path)
		}
		if got := NormalizeTrailingSlash(tt.in); got != tt.trailing {
			t.Errorf("NormalizeTrailingSlash(%q) = %q, want %q", tt.in, got, tt.trailing)
		}
	}
}

func TestCanonicalURL(t *testing.T) {
	if got := CanonicalURL("https://example.com/", "/blog/x/"); got != "https://example.com/blog/x" {
		t.Errorf("got %q", got)
	}
	if got := CanonicalURL("https://example.com", ""); got != "https://example.com/" {
		t.Errorf("got %q", got)
	}
	if got := AbsoluteURL("https://example.com", "HTTPS://cdn.example/a.jpg"); got != "HTTPS://cdn.example/a.jpg" {
		t.Errorf("got %q", got)
	}
	if got := AbsoluteURL("https://example.com", "img/a.jpg"); got != "https://example.com/img/a.jpg" {
		t.Errorf("got %q", got)
	}
	if got := AbsoluteURL("https://example.com", ""); got != "" {
		t.Errorf("got %q", got)
	}
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestBuild(t *testing.T) {
	docs := []*document.Document{
		{Slug: "old", Published: true, Date: day("2023-01-02")},
		{Slug: "draft", Published: false, Date: day("2024-09-09")},
		{Slug: "new", Published: true, Date: day("2024-03-01"), Updated: day("2024-04-05")},
	}

	out, err := Build("https://example.com", docs)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	xml := string(out)
	if !strings.HasPrefix(xml, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("missing header: %s", xml)
	}
	if strings.Contains(xml, "draft") {
		t.Error("draft must not be listed")
	}

	newIdx := strings.Index(xml, "<loc>https://example.com/blog/new</loc>")
	oldIdx := strings.Index(xml, "<loc>https://example.com/blog/old</loc>")
	if newIdx < 0 || oldIdx < 0 || newIdx > oldIdx {
		t.Errorf("unexpected order or missing entries:\n%s", xml)
	}

	for _, want := range []string{
		"<lastmod>2024-04-05</lastmod>",
		"<lastmod>2023-01-02</lastmod>",
		"<changefreq>never</changefreq>",
		"<priority>0.8</priority>",
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("missing %s", want)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	out, err := Build("https://example.com", []*document.Document{{Slug: "draft"}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if strings.Contains(string(out), "<url>") {
		t.Errorf("expected empty urlset:\n%s", out)
	}
	if !strings.Contains(string(out), `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`) {
		t.Errorf("missing urlset:\n%s", out)
	}
}
