package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/highrascal9098/Interview-Prep/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize quiz configuration",
	Long:  `Discovers question banks in the data directory and writes a .quiz.yml file, interactively unless --yes is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, _ := cmd.Flags().GetString("data-dir")
		yes, _ := cmd.Flags().GetBool("yes")

		if !yes {
			_, err := config.RunWizard(dataDir, cfgFile)
			return err
		}

		cfg, err := config.Scaffold(dataDir)
		if err != nil {
			return err
		}
		if err := cfg.Save(cfgFile); err != nil {
			return err
		}
		fmt.Printf("Configuration saved to %s (%d topics)\n", cfgFile, len(cfg.Topics))
		return nil
	},
}

func init() {
	initCmd.Flags().String("data-dir", "data", "directory containing JSON question banks")
	initCmd.Flags().BoolP("yes", "y", false, "accept discovered topics without prompting")
	rootCmd.AddCommand(initCmd)
}
