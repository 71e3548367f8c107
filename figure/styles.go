package figure

import (
	"regexp"
	"strconv"
	"strings"
)

// Class names carried by the figure element, one per wrap mode.
const (
	ClassInline     = "image-inline"
	ClassFloatLeft  = "image-float-left"
	ClassFloatRight = "image-float-right"
	ClassFullWidth  = "image-full-width"
	ClassCenter     = "image-center"
)

type figureLayout struct {
	style string
	class string
}

// layout is the wrap mode table. Unknown modes render centred.
func (m WrapMode) layout() figureLayout {
	switch m {
	case WrapInline:
		return figureLayout{"display: inline-block; vertical-align: middle; margin: 0 0.5rem;", ClassInline}
	case WrapFloatLeft:
		return figureLayout{"float: left; margin: 0 1.5rem 1rem 0; max-width: 50%;", ClassFloatLeft}
	case WrapFloatRight:
		return figureLayout{"float: right; margin: 0 0 1rem 1.5rem; max-width: 50%;", ClassFloatRight}
	case WrapFull:
		return figureLayout{"width: 100%; margin: 2rem 0;", ClassFullWidth}
	default:
		return figureLayout{"text-align: center; margin: 2rem auto; display: block;", ClassCenter}
	}
}

// FigureStyle returns the inline style written on the figure element.
func (m WrapMode) FigureStyle() string {
	return m.layout().style
}

// FigureClass returns the class written on the figure element.
func (m WrapMode) FigureClass() string {
	return m.layout().class
}

// CSSValue is the border-radius declaration value, empty for none.
func (r BorderRadius) CSSValue() string {
	switch r {
	case RadiusSM:
		return "4px"
	case RadiusMD:
		return "8px"
	case RadiusLG:
		return "16px"
	case RadiusFull:
		return "9999px"
	default:
		return ""
	}
}

// CSSValue is the box-shadow declaration value, empty for none.
func (s Shadow) CSSValue() string {
	switch s {
	case ShadowSoft:
		return "0 1px 3px rgba(0,0,0,0.12), 0 1px 2px rgba(0,0,0,0.08)"
	case ShadowMedium:
		return "0 4px 6px rgba(0,0,0,0.1), 0 2px 4px rgba(0,0,0,0.08)"
	case ShadowHard:
		return "0 10px 15px rgba(0,0,0,0.15), 0 4px 6px rgba(0,0,0,0.1)"
	default:
		return ""
	}
}

// Substrings identifying a shadow tier, most specific first. The hard shadow
// also contains "6px", so order matters.
var shadowSignatures = []struct {
	marker string
	shadow Shadow
}{
	{"15px", ShadowHard},
	{"6px", ShadowMedium},
	{"3px", ShadowSoft},
}

func wrapModeFromFigure(styles map[string]string, class string) WrapMode {
	switch {
	case strings.Contains(class, "float-left") || styles["float"] == "left":
		return WrapFloatLeft
	case strings.Contains(class, "float-right") || styles["float"] == "right":
		return WrapFloatRight
	case strings.Contains(class, "inline") || styles["display"] == "inline-block":
		return WrapInline
	case strings.Contains(class, "full-width") || styles["width"] == "100%":
		return WrapFull
	default:
		return WrapCenter
	}
}

func borderRadiusFromCSS(value string) BorderRadius {
	if value == "" || value == "0" || value == "0px" {
		return RadiusNone
	}

	for _, r := range BorderRadii {
		if r != RadiusNone && r.CSSValue() == value {
			return r
		}
	}

	return RadiusMD
}

func shadowFromCSS(value string) Shadow {
	if value == "" {
		return ShadowNone
	}

	for _, sig := range shadowSignatures {
		if strings.Contains(value, sig.marker) {
			return sig.shadow
		}
	}

	return ShadowNone
}

var pixelPattern = regexp.MustCompile(`(\d+)px`)

func widthFromCSS(value string) (int, bool) {
	m := pixelPattern.FindStringSubmatch(value)
	if m == nil {
		return 0, false
	}

	w, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}

	return w, true
}
