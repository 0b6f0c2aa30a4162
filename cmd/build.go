package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/highrascal9098/Interview-Prep/internal/orchestrator"
	"github.com/highrascal9098/Interview-Prep/internal/progress"
	"github.com/highrascal9098/Interview-Prep/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate a static quiz page",
	Long:  `Draws a fresh set of questions for every topic and writes index.html, style.css and script.js to the output directory.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	buildCmd.Flags().Int("count", -1, "questions per topic (defaults to questions_per_topic)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	count := cfg.QuestionsPerTopic
	if cmd.Flags().Changed("count") {
		count, _ = cmd.Flags().GetInt("count")
		if count < 0 {
			return fmt.Errorf("--count must be non-negative")
		}
	}

	logger := newLogger(cfg, os.Stderr)
	l, err := newLoader(cfg, logger)
	if err != nil {
		return err
	}
	registry, err := cfg.Registry()
	if err != nil {
		return err
	}

	o := orchestrator.New(registry, l,
		orchestrator.WithLogger(logger),
		orchestrator.WithAlerter(stderrAlerter{}),
		orchestrator.WithObserver(progress.NewPassObserver(progress.NewReporter(os.Stderr), registry.Len())),
	)

	g := site.NewGenerator(o, cfg.Title, cfg.OutputDir, count)
	g.Logger = logger
	pass, err := g.Generate(cmd.Context())
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Quiz page generated: %s (%d topics, %d failed)\n", cfg.OutputDir, len(pass.Results), pass.Failed())
	return nil
}
