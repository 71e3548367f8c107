package markdown

import (
	"strings"
	"testing"

	"github.com/bgraf/figurekit/figure"
)

func TestConvertFigureBlock(t *testing.T) {
	source := `---
title: Blocks
---
# Heading

:: figure ---
src: cat.png
alt: A cat
width: 320
wrap: float-right
shadow: medium
caption: Sleepy
---

Text after.
`

	res, err := Convert([]byte(source), "blocks.md")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if res.Meta["title"] != "Blocks" {
		t.Errorf("meta = %v", res.Meta)
	}
	if res.Figures != 1 {
		t.Errorf("figures = %d", res.Figures)
	}

	fig := res.HTML.Find("figure")
	if fig.Length() != 1 {
		t.Fatalf("figure count = %d", fig.Length())
	}

	got := figure.DecodeSelection(fig)
	if got.Src != "cat.png" || got.WrapMode != figure.WrapFloatRight || got.Shadow != figure.ShadowMedium {
		t.Errorf("decoded = %+v", got)
	}
	if got.Width.GetOr(0) != 320 || got.BorderRadius != figure.RadiusMD || got.Caption != "Sleepy" {
		t.Errorf("decoded = %+v", got)
	}

	if !strings.Contains(res.HTML.Find("p").Last().Text(), "Text after.") {
		t.Error("paragraph after block missing")
	}
}

func TestConvertFigureBlockWithoutAlt(t *testing.T) {
	source := ":: figure ---\nsrc: cat.png\n---\n"
	if _, err := Convert([]byte(source), "bad.md"); err == nil {
		t.Fatal("expected error for figure without alt text")
	}
}

func TestConvertPassesEmbeddedFigures(t *testing.T) {
	cfg := figure.NewImageConfig("dog.png", "dog")
	cfg.LinkURL = "https://dogs.example"
	cfg.Caption = "Good dog"

	res, err := Convert([]byte("Intro\n\n"+figure.Encode(cfg)+"\n\nOutro\n"), "embed.md")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if got := figure.DecodeSelection(res.HTML.Find("figure")); got != cfg {
		t.Fatalf("decoded = %+v, want %+v", got, cfg)
	}
}
