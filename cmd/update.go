package cmd

import (
	"github.com/bgraf/figurekit/document"
	"github.com/bgraf/figurekit/figure"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update FILE SRC",
	Short: "Change the settings of the figure showing SRC",
	Long: `Locates the figure that shows the image SRC in FILE and rewrites it
with the given flags applied. Settings without a flag are kept.`,
	Example: `  figurekit update post.md photos/cat.jpg --wrap float-right --shadow soft`,
	Args:    cobra.ExactArgs(2),
	RunE:    runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
	addFigureFlags(updateCmd, true)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	path, src := args[0], args[1]

	doc, err := document.LoadDocument(path)
	if err != nil {
		return err
	}

	var flagErr error
	err = doc.UpdateFigure(src, func(cfg *figure.ImageConfig) {
		flagErr = applyFigureFlags(cmd, cfg)
	})
	if flagErr != nil {
		return flagErr
	}
	if err != nil {
		return err
	}

	if err := document.Save(doc); err != nil {
		return err
	}

	logger.Info("figure updated", zap.String("path", path), zap.String("src", src))
	return nil
}
