package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/bgraf/figurekit/config"
	"github.com/bgraf/figurekit/document"
	"github.com/bgraf/figurekit/figure"
	"github.com/bgraf/figurekit/filesystem"
	"github.com/bgraf/figurekit/images"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add FILE IMAGE-OR-DIRECTORY...",
	Short: "Copy local images next to a post and insert figures for them",
	Long: `Copies the images into the media directory of the post FILE, scaling
them down to the configured maximum width, and inserts one figure per image
in argument order. Directories are searched for image files. The alt text
defaults to the EXIF image description or the file name.`,
	Example: `  figurekit add post.md ~/Pictures/harbour-cats.jpg --preset small --wrap float-left
  figurekit add post.md ~/Pictures/trip/ --position start`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addFigureFlags(addCmd, false)
	addPositionFlags(addCmd)

	addCmd.Flags().String("alt", "", "Alternative text (default from EXIF or file name)")
	addCmd.Flags().Bool("keep-name", false, "Keep the file names instead of generating them")
}

type importedImage struct {
	source string
	target string
	src    string
	err    error
}

func runAdd(cmd *cobra.Command, args []string) error {
	docPath := args[0]

	pos, offset, err := positionFromFlags(cmd)
	if err != nil {
		return err
	}

	imagePaths, err := filesystem.GatherFiles(args[1:], filesystem.ImageExtensions)
	if err != nil {
		return fmt.Errorf("scanning files: %w", err)
	} else if len(imagePaths) == 0 {
		return fmt.Errorf("no images")
	}

	doc, err := document.LoadDocument(docPath)
	if err != nil {
		return err
	}

	mediaDir := config.MediaDirectory()
	targetDir := filepath.Join(doc.DocumentDirectory(), mediaDir)
	if err := filesystem.CreateDirectoryIfNotExists(targetDir); err != nil {
		return fmt.Errorf("create media directory: %w", err)
	}

	keepName, _ := cmd.Flags().GetBool("keep-name")

	imported := make([]importedImage, len(imagePaths))
	for i, path := range imagePaths {
		name := filepath.Base(path)
		ext := images.DestinationExtension(filepath.Ext(name))
		if keepName {
			name = name[:len(name)-len(filepath.Ext(name))] + ext
		} else {
			name = uuid.New().String() + ext
		}

		imported[i] = importedImage{
			source: path,
			target: filepath.Join(targetDir, name),
			src:    filepath.ToSlash(filepath.Join(mediaDir, name)),
		}
	}

	copyImages(imported, config.MaxImageWidth(), config.JPEGQuality())

	alt, _ := cmd.Flags().GetString("alt")

	preset, presetErr := images.ParseSizePreset(config.SizePreset())

	var cfgs []figure.ImageConfig
	for _, img := range imported {
		if img.err != nil {
			logger.Error("image not added", zap.String("image", img.source), zap.Error(img.err))
			continue
		}

		imgAlt := alt
		if imgAlt == "" {
			imgAlt = images.AltText(img.source)
		}

		cfg := figure.NewImageConfig(img.src, imgAlt)
		if presetErr == nil {
			cfg.Width = preset.Width()
		}
		if err := applyFigureFlags(cmd, &cfg); err != nil {
			return err
		}
		cfgs = append(cfgs, cfg)
	}

	if len(cfgs) == 0 {
		return fmt.Errorf("no image could be copied")
	}

	// Figures inserted at a fixed place go back to front so they read in
	// argument order.
	appends := pos == figure.PositionEnd ||
		(pos == figure.PositionCursor && (offset < 0 || offset > len(doc.Markdown())))

	for i := range cfgs {
		cfg := cfgs[i]
		if !appends {
			cfg = cfgs[len(cfgs)-1-i]
		}
		if err := doc.InsertFigure(cfg, pos, offset); err != nil {
			return err
		}
	}

	if err := document.Save(doc); err != nil {
		return err
	}

	for _, cfg := range cfgs {
		logger.Info("image added", zap.String("path", docPath), zap.String("src", cfg.Src), zap.String("alt", cfg.Alt))
		fmt.Fprintln(cmd.OutOrStdout(), cfg.Src)
	}

	return nil
}

// copyImages scales or copies every image on a pool of one worker per CPU
// and records each result in place.
func copyImages(imported []importedImage, maxWidth, quality int) {
	var wg sync.WaitGroup
	jobs := make(chan *importedImage)

	for i := 0; i < runtime.NumCPU(); i++ {
		wg.Add(1)
		go func(jobs <-chan *importedImage) {
			defer wg.Done()
			for img := range jobs {
				if _, err := os.Stat(img.target); err == nil {
					img.err = fmt.Errorf("'%s' already exists", img.target)
					continue
				}

				if maxWidth > 0 {
					img.err = images.ResizeCopy(img.source, img.target, maxWidth, quality)
				} else {
					img.err = filesystem.Copy(img.source, img.target)
				}
			}
		}(jobs)
	}

	for i := range imported {
		jobs <- &imported[i]
	}

	close(jobs)
	wg.Wait()
}
