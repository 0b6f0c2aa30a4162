package cmd

import (
	"github.com/spf13/cobra"

	"github.com/highrascal9098/Interview-Prep/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Random interview-question pages from JSON question banks",
	Long: `quiz draws a random set of questions from each configured topic's
JSON bank and renders them with collapsible solutions. Build a static
page, serve a live one that regenerates on demand, or expose the banks
to AI agents over MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
