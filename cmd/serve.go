package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/highrascal9098/Interview-Prep/internal/server"
	"github.com/highrascal9098/Interview-Prep/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a live quiz page",
	Long:  `Starts an HTTP server whose page regenerates questions on demand, streaming each topic over a websocket as it settles.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to config port)")
	serveCmd.Flags().Int("count", -1, "default questions per topic (defaults to questions_per_topic)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Port = port
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

	srv := server.New(server.Config{
		Port:         cfg.Port,
		Title:        cfg.Title,
		DefaultCount: count,
		AllowAll:     cfg.AllowAllOrigins,
	}, registry, l, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Println("\nShutting down server...")
		srv.Shutdown(context.Background())
	}()

	url := fmt.Sprintf("http://localhost:%d", cfg.Port)
	fmt.Printf("Serving quiz at %s (%d topics)\n", url, registry.Len())
	fmt.Println("Press Ctrl+C to stop.")
	if open, _ := cmd.Flags().GetBool("open"); open {
		go site.OpenBrowser(url)
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
