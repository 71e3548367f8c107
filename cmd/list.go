package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/bgraf/figurekit/config"
	"github.com/bgraf/figurekit/document"
	"github.com/bgraf/figurekit/filesystem"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [FILE-OR-DIRECTORY...]",
	Short: "List the figures of posts",
	Long: `Lists every figure of the given posts. Directories are searched for
markdown files. Without arguments the configured content directory is used.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		if !config.HasContentDirectory() {
			return fmt.Errorf("no content directory configured")
		}
		args = []string{config.ContentDirectory()}
	}

	paths, err := filesystem.GatherFiles(args, filesystem.MarkdownExtensions)
	if err != nil {
		return fmt.Errorf("scanning files: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "POST\tSRC\tWRAP\tWIDTH\tALT")

	for _, path := range paths {
		doc, err := document.LoadDocument(path)
		if err != nil {
			logger.Warn("skipping post", zap.String("path", path), zap.Error(err))
			continue
		}

		cfgs, err := doc.Figures()
		if err != nil {
			return err
		}

		for _, cfg := range cfgs {
			width := "-"
			if cfg.Width.IsSome() {
				width = fmt.Sprintf("%dpx", cfg.Width.Get())
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", doc.Slug, cfg.Src, cfg.WrapMode, width, cfg.Alt)
		}
	}

	return w.Flush()
}
