package cmd

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Personal portfolio site with a live navigation tracker and contact form",
	Long: `Folio serves a single-page personal portfolio: hero, about, skills,
projects and contact sections, a navigation bar that follows the reader's
scroll position, and a validated contact form whose messages are stored
and forwarded to you. It can also export the page as a static site.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is normal.
		_ = godotenv.Load()
		if verbose {
			log.SetFlags(log.LstdFlags | log.Lshortfile)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".folio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
