package cmd

import (
	"bytes"
	"fmt"

	"github.com/bgraf/figurekit/config"
	"github.com/bgraf/figurekit/document"
	"github.com/bgraf/figurekit/render"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Render a post to a standalone HTML preview",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("output", "o", "", "Output file (default standard output)")
	renderCmd.Flags().Bool("fragment", false, "Only print the body HTML")
}

func runRender(cmd *cobra.Command, args []string) error {
	doc, err := document.LoadDocument(args[0])
	if err != nil {
		return err
	}

	page, err := render.Render(doc, render.Options{})
	if err != nil {
		return err
	}

	logger.Debug("rendered",
		zap.String("path", doc.Path),
		zap.Int("blockFigures", page.BlockFigures),
		zap.Int("implicitFigures", page.ImplicitImages))

	var buf bytes.Buffer
	if fragmentOnly, _ := cmd.Flags().GetBool("fragment"); fragmentOnly {
		fragment, err := page.Fragment()
		if err != nil {
			return err
		}
		buf.WriteString(fragment)
	} else {
		templates, err := render.ReadTemplates(render.NewTagSet(), config.DateLocale())
		if err != nil {
			return err
		}
		if err := templates.Preview(&buf, page); err != nil {
			return err
		}
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		_, err = buf.WriteTo(cmd.OutOrStdout())
		return err
	}

	if err := atomic.WriteFile(output, &buf); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	logger.Info("preview written", zap.String("output", output))
	return nil
}
