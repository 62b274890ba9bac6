package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aulahub/exindex/internal/mcpserver"
)

var flagIndexFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the course index over MCP on stdio",
	Long: `Serve loads the course index JSON and exposes it to MCP clients over
stdio with three read-only tools: list_courses, search_exercises and
get_exercise. Logs go to stderr; stdout carries the protocol.

The index is read once at startup. Restart the server after rebuilding
the index to pick up new exercises.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&flagIndexFile, "index", "course_index.json", "Course index JSON built by the index command")
}

func runServe(cmd *cobra.Command, args []string) error {
	log := slog.Default()

	srv, err := mcpserver.NewServer(flagIndexFile)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		log.Info("mcp server ready, listening on stdio", "index", flagIndexFile)
		errChan <- srv.Serve(ctx)
	}()

	select {
	case sig := <-sigChan:
		log.Info("shutting down", "signal", sig.String())
		cancel()
		return nil
	case err := <-errChan:
		return err
	}
}
