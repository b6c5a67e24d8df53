package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kawalpreet/folio/internal/progress"
	"github.com/kawalpreet/folio/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the portfolio as a static site",
	Long: `Renders the page and copies the assets directory into the output
directory. The exported form posts to site.endpoint when it is set and
otherwise only validates in the browser.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to site.output_dir)")
	buildCmd.Flags().String("endpoint", "", "override the contact endpoint (defaults to site.endpoint)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.Site.OutputDir
	}
	endpoint, _ := cmd.Flags().GetString("endpoint")
	if endpoint == "" {
		endpoint = cfg.Site.Endpoint
	}

	profile, err := loadProfile(cfg)
	if err != nil {
		return err
	}
	renderer, err := site.NewRenderer()
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	gen := &site.Generator{
		Profile:   profile,
		Renderer:  renderer,
		OutputDir: outputDir,
		AssetsDir: cfg.Site.AssetsDir,
		Filter:    assetFilter(cfg),
		Endpoint:  endpoint,
		Reporter:  progress.NewReporter("Exporting site"),
	}
	res, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d files, %d assets copied, %d unchanged)\n",
		outputDir, res.Files, res.AssetsCopied, res.AssetsUnchanged)
	if endpoint == "" {
		fmt.Println("Note: no contact endpoint configured; the form will only validate in the browser.")
	}
	return nil
}
