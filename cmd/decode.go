package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/bgraf/figurekit/figure"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [FILE]",
	Short: "Print the settings of every figure in a fragment or post",
	Long: `Reads HTML or markdown from FILE, or from standard input when FILE is
missing or "-", and prints the decoded settings of each figure as YAML.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	var (
		source []byte
		err    error
	)

	if len(args) == 0 || args[0] == "-" {
		source, err = io.ReadAll(cmd.InOrStdin())
	} else {
		source, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	cfgs, err := figure.Figures(string(source))
	if err != nil {
		return err
	}
	if len(cfgs) == 0 {
		return figure.ErrNoFigure
	}

	out, err := yaml.Marshal(cfgs)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
