// Package figure converts image settings to and from the `<figure>` fragments
// embedded in markdown posts.
//
// A fragment written by Encode has a fixed shape:
//
//	<figure class="image-float-left" style="float: left; margin: 0 1.5rem 1rem 0; max-width: 50%;">
//	<a href="https://x.com" target="_blank" rel="noopener noreferrer"><img src="a.png" alt="cat" style="max-width: 400px" loading="lazy" decoding="async" /></a>
//	<figcaption>A cat</figcaption>
//	</figure>
//
// Decode reads the same fragment back from parsed HTML and Replace swaps one
// fragment inside a document's text without touching anything around it.
package figure
