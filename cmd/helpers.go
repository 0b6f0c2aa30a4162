package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/highrascal9098/Interview-Prep/internal/config"
	"github.com/highrascal9098/Interview-Prep/internal/loader"
	"github.com/highrascal9098/Interview-Prep/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `quiz init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger honours --verbose over the configured level.
func newLogger(cfg *config.Config, out io.Writer) *logrus.Logger {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	return logging.New(level, out)
}

// newLoader builds a topic loader reading banks from cfg.DataSource.
func newLoader(cfg *config.Config, logger *logrus.Logger) (*loader.Loader, error) {
	fetcher, err := loader.NewFetcher(cfg.DataSource)
	if err != nil {
		return nil, fmt.Errorf("data source %q: %w", cfg.DataSource, err)
	}
	return loader.New(fetcher, loader.WithLogger(logger)), nil
}

// stderrAlerter prints aggregate failures for the user.
type stderrAlerter struct{}

func (stderrAlerter) Alert(msg string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
}
