package cmd

import (
	"fmt"
	"strings"

	"github.com/bgraf/figurekit/figure"
	"github.com/bgraf/figurekit/images"
	"github.com/bgraf/figurekit/option"
	"github.com/spf13/cobra"
)

func joinValues[T ~string](values []T) string {
	return strings.Join(stringValues(values), ", ")
}

// addFigureFlags registers the flags that describe a figure. withSource
// adds --src and --alt.
func addFigureFlags(cmd *cobra.Command, withSource bool) {
	f := cmd.Flags()

	if withSource {
		f.String("src", "", "Image source URL or path")
		f.String("alt", "", "Alternative text")
	}

	f.Int("width", 0, "Maximum width in pixels (0 removes the width)")
	f.String("preset", "", "Size preset ("+joinValues(images.SizePresets)+")")
	f.String("wrap", string(figure.WrapCenter), "Wrap mode ("+joinValues(figure.WrapModes)+")")
	f.String("link", "", "Link target of the image")
	f.Bool("new-tab", true, "Open the link in a new tab")
	f.String("radius", string(figure.RadiusMD), "Border radius ("+joinValues(figure.BorderRadii)+")")
	f.String("shadow", string(figure.ShadowNone), "Shadow ("+joinValues(figure.Shadows)+")")
	f.String("caption", "", "Caption below the image")
}

// applyFigureFlags copies every flag set on the command line onto cfg.
// Flags left alone keep the value cfg already has.
func applyFigureFlags(cmd *cobra.Command, cfg *figure.ImageConfig) error {
	f := cmd.Flags()

	stringFlags := map[string]*string{
		"src":     &cfg.Src,
		"alt":     &cfg.Alt,
		"link":    &cfg.LinkURL,
		"caption": &cfg.Caption,
	}
	for name, target := range stringFlags {
		if f.Lookup(name) == nil || !f.Changed(name) {
			continue
		}
		v, err := f.GetString(name)
		if err != nil {
			return err
		}
		*target = v
	}

	if f.Changed("preset") {
		v, _ := f.GetString("preset")
		preset, err := images.ParseSizePreset(v)
		if err != nil {
			return err
		}
		cfg.Width = preset.Width()
		if preset == images.SizeFull {
			cfg.WrapMode = figure.WrapFull
		}
	}

	if f.Changed("width") {
		w, err := f.GetInt("width")
		if err != nil {
			return err
		}
		if w == 0 {
			cfg.Width = option.None[int]()
		} else {
			cfg.Width = option.Some(w)
		}
	}

	if f.Changed("wrap") {
		v, _ := f.GetString("wrap")
		cfg.WrapMode = figure.WrapMode(v)
	}
	if f.Changed("radius") {
		v, _ := f.GetString("radius")
		cfg.BorderRadius = figure.BorderRadius(v)
	}
	if f.Changed("shadow") {
		v, _ := f.GetString("shadow")
		cfg.Shadow = figure.Shadow(v)
	}
	if f.Changed("new-tab") {
		v, err := f.GetBool("new-tab")
		if err != nil {
			return err
		}
		cfg.OpenInNewTab = v
	}

	return nil
}

func addPositionFlags(cmd *cobra.Command) {
	cmd.Flags().String("position", string(figure.PositionEnd), "Insert position (start, end, cursor)")
	cmd.Flags().Int("offset", -1, "Byte offset in the body for --position cursor")
}

func positionFromFlags(cmd *cobra.Command) (figure.Position, int, error) {
	v, _ := cmd.Flags().GetString("position")
	offset, _ := cmd.Flags().GetInt("offset")

	switch pos := figure.Position(v); pos {
	case figure.PositionStart, figure.PositionEnd, figure.PositionCursor:
		return pos, offset, nil
	}

	return "", 0, fmt.Errorf("unknown position '%s'", v)
}
