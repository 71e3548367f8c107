package figure

import "github.com/bgraf/figurekit/option"

// WrapMode controls how body text flows around a figure.
type WrapMode string

const (
	WrapInline     WrapMode = "inline"
	WrapFloatLeft  WrapMode = "float-left"
	WrapCenter     WrapMode = "center"
	WrapFloatRight WrapMode = "float-right"
	WrapFull       WrapMode = "full"
)

var WrapModes = []WrapMode{WrapInline, WrapFloatLeft, WrapCenter, WrapFloatRight, WrapFull}

type BorderRadius string

const (
	RadiusNone BorderRadius = "none"
	RadiusSM   BorderRadius = "sm"
	RadiusMD   BorderRadius = "md"
	RadiusLG   BorderRadius = "lg"
	RadiusFull BorderRadius = "full"
)

var BorderRadii = []BorderRadius{RadiusNone, RadiusSM, RadiusMD, RadiusLG, RadiusFull}

type Shadow string

const (
	ShadowNone   Shadow = "none"
	ShadowSoft   Shadow = "soft"
	ShadowMedium Shadow = "medium"
	ShadowHard   Shadow = "hard"
)

var Shadows = []Shadow{ShadowNone, ShadowSoft, ShadowMedium, ShadowHard}

// ImageConfig is the editable state of one embedded image. Only its encoded
// form is ever stored.
type ImageConfig struct {
	Src          string             `json:"src" yaml:"src"`
	Alt          string             `json:"alt" yaml:"alt"`
	Width        option.Option[int] `json:"width" yaml:"width,omitempty"`
	WrapMode     WrapMode           `json:"wrapMode" yaml:"wrap"`
	LinkURL      string             `json:"linkUrl" yaml:"link,omitempty"`
	OpenInNewTab bool               `json:"openInNewTab" yaml:"newTab"`
	BorderRadius BorderRadius       `json:"borderRadius" yaml:"radius"`
	Shadow       Shadow             `json:"shadow" yaml:"shadow"`
	Caption      string             `json:"caption" yaml:"caption,omitempty"`
}

// NewImageConfig returns a config with the editor defaults: centred, medium
// radius, no shadow and links opening in a new tab.
func NewImageConfig(src, alt string) ImageConfig {
	return ImageConfig{
		Src:          src,
		Alt:          alt,
		WrapMode:     WrapCenter,
		OpenInNewTab: true,
		BorderRadius: RadiusMD,
		Shadow:       ShadowNone,
	}
}

func (c ImageConfig) HasLink() bool {
	return len(c.LinkURL) > 0
}

func (c ImageConfig) HasCaption() bool {
	return len(c.Caption) > 0
}

// withDefaults fills empty enum fields so a zero-valued config still encodes.
func (c ImageConfig) withDefaults() ImageConfig {
	if c.WrapMode == "" {
		c.WrapMode = WrapCenter
	}
	if c.BorderRadius == "" {
		c.BorderRadius = RadiusMD
	}
	if c.Shadow == "" {
		c.Shadow = ShadowNone
	}
	return c
}
