package cmd

import (
	"github.com/bgraf/figurekit/document"
	"github.com/bgraf/figurekit/figure"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// insertCmd represents the insert command
var insertCmd = &cobra.Command{
	Use:     "insert FILE",
	Short:   "Insert a new figure into a post",
	Example: `  figurekit insert post.md --src photos/cat.jpg --alt "A cat" --position start`,
	Args:    cobra.ExactArgs(1),
	RunE:    runInsert,
}

func init() {
	rootCmd.AddCommand(insertCmd)
	addFigureFlags(insertCmd, true)
	addPositionFlags(insertCmd)
}

func runInsert(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg := figure.NewImageConfig("", "")
	if err := applyFigureFlags(cmd, &cfg); err != nil {
		return err
	}

	pos, offset, err := positionFromFlags(cmd)
	if err != nil {
		return err
	}

	doc, err := document.LoadDocument(path)
	if err != nil {
		return err
	}

	if err := doc.InsertFigure(cfg, pos, offset); err != nil {
		return err
	}

	if err := document.Save(doc); err != nil {
		return err
	}

	logger.Info("figure inserted",
		zap.String("path", path),
		zap.String("src", cfg.Src),
		zap.String("position", string(pos)))
	return nil
}
