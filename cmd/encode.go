package cmd

import (
	"fmt"

	"github.com/bgraf/figurekit/figure"
	"github.com/spf13/cobra"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Print the figure fragment for the given settings",
	Example: `  figurekit encode --src photos/cat.jpg --alt "A cat" --wrap float-left --width 320
  figurekit encode --src cat.jpg --alt "A cat" --preset medium --caption "Sleepy"`,
	Args: cobra.NoArgs,
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	addFigureFlags(encodeCmd, true)
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg := figure.NewImageConfig("", "")
	if err := applyFigureFlags(cmd, &cfg); err != nil {
		return err
	}

	if err := figure.Validate(cfg); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), figure.Encode(cfg))
	return nil
}
