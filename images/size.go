// Package images resolves size presets, reads image metadata and writes
// resized copies for figures.
package images

import (
	"fmt"
	"strings"

	"github.com/bgraf/figurekit/option"
)

type SizePreset string

const (
	SizeOriginal SizePreset = "original"
	SizeSmall    SizePreset = "small"
	SizeMedium   SizePreset = "medium"
	SizeLarge    SizePreset = "large"
	SizeFull     SizePreset = "full"
)

var SizePresets = []SizePreset{SizeOriginal, SizeSmall, SizeMedium, SizeLarge, SizeFull}

// Width is the figure width of the preset. Original and full leave the width
// unset.
func (p SizePreset) Width() option.Option[int] {
	switch p {
	case SizeSmall:
		return option.Some(400)
	case SizeMedium:
		return option.Some(600)
	case SizeLarge:
		return option.Some(800)
	}

	return option.None[int]()
}

func ParseSizePreset(s string) (SizePreset, error) {
	p := SizePreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SizePresets {
		if p == known {
			return p, nil
		}
	}

	return "", fmt.Errorf("unknown size preset '%s'", s)
}
