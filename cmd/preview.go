package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/bgraf/figurekit/config"
	"github.com/bgraf/figurekit/document"
	"github.com/bgraf/figurekit/images"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview FILE [IMAGE]",
	Short: "Generate a square preview image for a post",
	Long: `Preview images are square images shown next to a post in listings.
Without IMAGE the source of the first figure of the post is used.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPreview,
}

var previewImageWidth *int

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringP("output", "o", "preview.jpg", "Output file name, relative to the post")
	previewImageWidth = previewCmd.Flags().IntP("size", "s", 600, "Preview image width, height")
}

func runPreview(cmd *cobra.Command, args []string) error {
	doc, err := document.LoadDocument(args[0])
	if err != nil {
		return err
	}

	var input string
	if len(args) == 2 {
		input = args[1]
	} else {
		cfgs, err := doc.Figures()
		if err != nil {
			return err
		}
		if len(cfgs) == 0 {
			return fmt.Errorf("%s has no figures, pass an image", doc.Path)
		}
		input = filepath.Join(doc.DocumentDirectory(), filepath.FromSlash(cfgs[0].Src))
	}

	output, _ := cmd.Flags().GetString("output")
	if !filepath.IsAbs(output) {
		output = filepath.Join(doc.DocumentDirectory(), output)
	}

	width := *previewImageWidth
	if err := images.SquarePreview(input, output, width, config.JPEGQuality()); err != nil {
		return err
	}

	logger.Info("preview created",
		zap.String("image", input),
		zap.String("output", output),
		zap.Int("size", width))

	return nil
}
