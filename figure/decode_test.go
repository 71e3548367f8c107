package figure

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/bgraf/figurekit/option"
)

func TestRoundTrip(t *testing.T) {
	var configs []ImageConfig

	for _, mode := range WrapModes {
		for _, radius := range BorderRadii {
			for _, shadow := range Shadows {
				cfg := NewImageConfig("https://cdn.example.com/img/"+string(mode)+".png", "alt "+string(radius))
				cfg.WrapMode = mode
				cfg.BorderRadius = radius
				cfg.Shadow = shadow
				if mode != WrapFull {
					cfg.Width = option.Some(640)
				}
				configs = append(configs, cfg)
			}
		}
	}

	linked := NewImageConfig("b.png", "bird")
	linked.LinkURL = "https://example.com/?q=1&r=2"
	linked.OpenInNewTab = false
	linked.Caption = "A <small> bird & friends"
	configs = append(configs, linked)

	newTab := NewImageConfig("c.png", "cow")
	newTab.LinkURL = "/blog/cows"
	newTab.Caption = "Cow"
	configs = append(configs, newTab)

	for _, cfg := range configs {
		got, err := DecodeFragment(Encode(cfg))
		if err != nil {
			t.Fatalf("DecodeFragment(%+v): %v", cfg, err)
		}
		if got != cfg {
			t.Fatalf("round trip mismatch\n got %+v\nwant %+v", got, cfg)
		}
	}
}

func TestDecodeMinimalFigure(t *testing.T) {
	got, err := DecodeFragment(`<figure><img src="x" alt="y"/></figure>`)
	if err != nil {
		t.Fatalf("DecodeFragment: %v", err)
	}

	want := ImageConfig{
		Src:          "x",
		Alt:          "y",
		WrapMode:     WrapCenter,
		OpenInNewTab: true,
		BorderRadius: RadiusNone,
		Shadow:       ShadowNone,
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if got.Width.IsSome() {
		t.Fatal("expected no width")
	}
}

func TestDecodeStyleSignals(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		wrap     WrapMode
		radius   BorderRadius
		shadow   Shadow
		width    option.Option[int]
	}{
		{
			name:     "style only float right",
			fragment: `<figure style="float:right"><img src="x" style="border-radius:0px"></figure>`,
			wrap:     WrapFloatRight,
			radius:   RadiusNone,
			shadow:   ShadowNone,
		},
		{
			name:     "inline by display",
			fragment: `<figure style="display: inline-block"><img src="x" style="border-radius: 9999px; box-shadow: 0 10px 15px red"></figure>`,
			wrap:     WrapInline,
			radius:   RadiusFull,
			shadow:   ShadowHard,
		},
		{
			name:     "full by width",
			fragment: `<figure style="width: 100%"><img src="x" style="border-radius: 3rem; box-shadow: 0 4px 6px blue; max-width: 250px"></figure>`,
			wrap:     WrapFull,
			radius:   RadiusMD,
			shadow:   ShadowMedium,
			width:    option.Some(250),
		},
		{
			name:     "class wins without style",
			fragment: `<figure class="image-float-left"><img src="x" style="box-shadow: 1px 1px 1px black; max-width: 50%"></figure>`,
			wrap:     WrapFloatLeft,
			radius:   RadiusNone,
			shadow:   ShadowNone,
		},
		{
			name:     "unknown wrap degrades to center",
			fragment: `<figure class="fancy" style="float: none"><img src="x"></figure>`,
			wrap:     WrapCenter,
			radius:   RadiusNone,
			shadow:   ShadowNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeFragment(tt.fragment)
			if err != nil {
				t.Fatalf("DecodeFragment: %v", err)
			}
			if got.WrapMode != tt.wrap {
				t.Errorf("wrap = %q, want %q", got.WrapMode, tt.wrap)
			}
			if got.BorderRadius != tt.radius {
				t.Errorf("radius = %q, want %q", got.BorderRadius, tt.radius)
			}
			if got.Shadow != tt.shadow {
				t.Errorf("shadow = %q, want %q", got.Shadow, tt.shadow)
			}
			if got.Width != tt.width {
				t.Errorf("width = %+v, want %+v", got.Width, tt.width)
			}
		})
	}
}

func TestDecodeFromClickedImage(t *testing.T) {
	cfg := NewImageConfig("d.png", "dog")
	cfg.LinkURL = "https://dogs.example"
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<p>intro</p>" + Encode(cfg)))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	got := DecodeSelection(doc.Find("img"))
	if got != cfg {
		t.Fatalf("got %+v, want %+v", got, cfg)
	}

	if got := Decode(doc.Find("figure").Nodes[0]); got != cfg {
		t.Fatalf("Decode() = %+v, want %+v", got, cfg)
	}
}

func TestDecodeFragmentWithoutFigure(t *testing.T) {
	_, err := DecodeFragment(`<p><img src="x"></p>`)
	if !errors.Is(err, ErrNoFigure) {
		t.Fatalf("err = %v, want ErrNoFigure", err)
	}
}

func TestFigures(t *testing.T) {
	a := NewImageConfig("a.png", "a")
	b := NewImageConfig("b.png", "b")
	b.WrapMode = WrapFloatRight

	doc := "# Title\n\n" + Encode(a) + "\n\nSome *markdown* text.\n\n" + Encode(b) + "\n"

	got, err := Figures(doc)
	if err != nil {
		t.Fatalf("Figures: %v", err)
	}
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("Figures() = %+v", got)
	}
}

func TestParseStyle(t *testing.T) {
	got := ParseStyle(" Max-Width : 10px;;color:;background: url(http://x/y.png) ;bogus")
	if len(got) != 2 {
		t.Fatalf("ParseStyle() = %v", got)
	}
	if got["max-width"] != "10px" {
		t.Errorf("max-width = %q", got["max-width"])
	}
	if got["background"] != "url(http://x/y.png)" {
		t.Errorf("background = %q", got["background"])
	}
}
