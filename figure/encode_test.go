package figure

import (
	"strings"
	"testing"

	"github.com/bgraf/figurekit/option"
)

func TestEncodeFloatLeftScenario(t *testing.T) {
	cfg := ImageConfig{
		Src:          "a.png",
		Alt:          "cat",
		Width:        option.Some(400),
		WrapMode:     WrapFloatLeft,
		BorderRadius: RadiusLG,
		Shadow:       ShadowSoft,
		LinkURL:      "https://x.com",
		OpenInNewTab: true,
		Caption:      "A cat",
	}

	want := `<figure class="image-float-left" style="float: left; margin: 0 1.5rem 1rem 0; max-width: 50%;">` + "\n" +
		`<a href="https://x.com" target="_blank" rel="noopener noreferrer">` +
		`<img src="a.png" alt="cat" style="max-width: 400px; border-radius: 16px; box-shadow: 0 1px 3px rgba(0,0,0,0.12), 0 1px 2px rgba(0,0,0,0.08)" loading="lazy" decoding="async" />` +
		`</a>` + "\n" +
		`<figcaption>A cat</figcaption>` + "\n" +
		`</figure>`

	if got := Encode(cfg); got != want {
		t.Fatalf("Encode() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeWrapModes(t *testing.T) {
	tests := []struct {
		mode  WrapMode
		class string
		style string
	}{
		{WrapInline, ClassInline, "display: inline-block; vertical-align: middle; margin: 0 0.5rem;"},
		{WrapFloatLeft, ClassFloatLeft, "float: left; margin: 0 1.5rem 1rem 0; max-width: 50%;"},
		{WrapFloatRight, ClassFloatRight, "float: right; margin: 0 0 1rem 1.5rem; max-width: 50%;"},
		{WrapFull, ClassFullWidth, "width: 100%; margin: 2rem 0;"},
		{WrapCenter, ClassCenter, "text-align: center; margin: 2rem auto; display: block;"},
		{WrapMode("diagonal"), ClassCenter, "text-align: center; margin: 2rem auto; display: block;"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			cfg := NewImageConfig("x.png", "x")
			cfg.WrapMode = tt.mode

			prefix := `<figure class="` + tt.class + `" style="` + tt.style + `">` + "\n"
			if got := Encode(cfg); !strings.HasPrefix(got, prefix) {
				t.Fatalf("Encode() = %q, want prefix %q", got, prefix)
			}
		})
	}
}

func TestEncodeOmitsEmptyImageStyle(t *testing.T) {
	cfg := NewImageConfig("x.png", "x")
	cfg.BorderRadius = RadiusNone

	got := Encode(cfg)
	if strings.Contains(got, "<img src=\"x.png\" alt=\"x\" style=") {
		t.Fatalf("unexpected style attribute in %q", got)
	}
	if !strings.Contains(got, `<img src="x.png" alt="x" loading="lazy" decoding="async" />`) {
		t.Fatalf("unexpected img tag in %q", got)
	}
}

func TestEncodeDropsWidthForFullWidth(t *testing.T) {
	cfg := NewImageConfig("x.png", "x")
	cfg.WrapMode = WrapFull
	cfg.Width = option.Some(300)

	if got := Encode(cfg); strings.Contains(got, "max-width: 300px") {
		t.Fatalf("full width figure carries image width: %q", got)
	}
}

func TestEncodeLinkSafety(t *testing.T) {
	for _, newTab := range []bool{true, false} {
		cfg := NewImageConfig("x.png", "x")
		cfg.LinkURL = "https://example.com"
		cfg.OpenInNewTab = newTab

		got := Encode(cfg)
		hasTarget := strings.Contains(got, `target="_blank"`)
		hasRel := strings.Contains(got, `rel="noopener noreferrer"`)

		if hasTarget != hasRel {
			t.Fatalf("target and rel disagree (newTab=%v): %q", newTab, got)
		}
		if hasTarget != newTab {
			t.Fatalf("target present = %v, want %v", hasTarget, newTab)
		}
	}
}

func TestEncodeEscapesText(t *testing.T) {
	cfg := NewImageConfig("x.png?a=1&b=2", `the "best" <cat>`)
	cfg.Caption = "Tom & Jerry"

	got := Encode(cfg)
	for _, want := range []string{
		`src="x.png?a=1&amp;b=2"`,
		`alt="the &#34;best&#34; &lt;cat&gt;"`,
		`<figcaption>Tom &amp; Jerry</figcaption>`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("Encode() = %q, missing %q", got, want)
		}
	}
}

func TestEncodeZeroConfigUsesDefaults(t *testing.T) {
	got := Encode(ImageConfig{Src: "x.png", Alt: "x"})
	if !strings.Contains(got, ClassCenter) || !strings.Contains(got, "border-radius: 8px") {
		t.Fatalf("Encode() = %q, want centred figure with medium radius", got)
	}
}
