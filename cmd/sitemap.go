package cmd

import (
	"bytes"
	"fmt"

	"github.com/bgraf/figurekit/config"
	"github.com/bgraf/figurekit/document"
	"github.com/bgraf/figurekit/sitemap"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// sitemapCmd represents the sitemap command
var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Write the sitemap of all published posts",
	Long: `Lists every published post of the content directory as
{site}/blog/{slug}, newest first. Without published posts an empty urlset
is written.`,
	Args: cobra.NoArgs,
	RunE: runSitemap,
}

func init() {
	rootCmd.AddCommand(sitemapCmd)

	sitemapCmd.Flags().StringP("output", "o", "sitemap-blog.xml", "Output file, - for standard output")
	sitemapCmd.Flags().String("site", "", "Site URL (default from site.url)")
}

func runSitemap(cmd *cobra.Command, args []string) error {
	if !config.HasContentDirectory() {
		return fmt.Errorf("no content directory configured")
	}

	site, _ := cmd.Flags().GetString("site")
	if site == "" {
		site = config.SiteURL()
	}
	if site == "" {
		return fmt.Errorf("no site URL configured")
	}

	store, err := document.NewStore(config.ContentDirectory(), logger)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := sitemap.Write(&buf, site, store.Published()); err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "-" {
		_, err = buf.WriteTo(cmd.OutOrStdout())
		return err
	}

	if err := atomic.WriteFile(output, &buf); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	logger.Info("sitemap written",
		zap.String("output", output),
		zap.Int("posts", len(store.Published())))
	return nil
}
