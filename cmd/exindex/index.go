package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aulahub/exindex/internal/indexer"
)

var (
	flagArtifacts string
	flagIndexOut  string
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the JSON course index from exported artifacts",
	Long: `Index scans the artifact tree produced by extract, one directory per
course, and rebuilds the course index JSON from scratch. Course names
that differ only in accents or case merge under one key, so "Cálculo I"
and "calculo i" land in the same course.

The output file is fully overwritten on every run.`,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)

	indexCmd.Flags().StringVar(&flagArtifacts, "artifacts", "salida", "Artifact tree produced by extract")
	indexCmd.Flags().StringVar(&flagIndexOut, "out", "course_index.json", "Index output file")
}

func runIndex(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ix := indexer.New(flagArtifacts)
	index, err := ix.WriteFile(ctx, flagIndexOut)
	if err != nil {
		return err
	}

	fmt.Printf("Indexed %d exercises across %d courses\n", index.Exercises(), index.Courses())
	fmt.Printf("Index: %s\n", flagIndexOut)
	return nil
}
