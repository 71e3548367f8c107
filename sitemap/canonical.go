// Package sitemap builds the blog sitemap and canonical post URLs.
package sitemap

import (
	"strings"
)

// NormalizePath drops the fragment and query of p and makes it absolute.
// An empty path is the root.
func NormalizePath(p string) string {
	if p == "" {
		return "/"
	}

	p, _, _ = strings.Cut(p, "#")
	p, _, _ = strings.Cut(p, "?")

	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	return p
}

// NormalizeTrailingSlash removes one trailing slash from every path but the
// root.
func NormalizeTrailingSlash(p string) string {
	p = NormalizePath(p)
	if p == "/" {
		return p
	}

	return strings.TrimSuffix(p, "/")
}

// CanonicalURL joins the site base URL and the normalised path.
func CanonicalURL(base, p string) string {
	return strings.TrimSuffix(base, "/") + NormalizeTrailingSlash(p)
}

// AbsoluteURL leaves http(s) URLs alone and resolves everything else against
// base. Empty input yields an empty string.
func AbsoluteURL(base, ref string) string {
	if ref == "" {
		return ""
	}

	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return ref
	}

	return CanonicalURL(base, ref)
}

// PostURL is the public URL of the post with the given slug.
func PostURL(base, slug string) string {
	return CanonicalURL(base, "/blog/"+slug)
}
