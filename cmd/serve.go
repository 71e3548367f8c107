package cmd

import (
	"github.com/bgraf/figurekit/cmd/serve"
	"github.com/bgraf/figurekit/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the figure editing API over the content directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve.Run(logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", ":8000", "Listen address")
	if err := viper.BindPFlag(config.KeyListenAddress, serveCmd.Flags().Lookup("listen")); err != nil {
		panic(err)
	}
}
