package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aulahub/exindex/internal/catalog"
)

var flagQueryCatalog string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List recorded extraction runs",
	RunE:  runCatalog,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate counts across all recorded runs",
	RunE:  runStats,
}

var dupesCmd = &cobra.Command{
	Use:   "dupes",
	Short: "Report exported content hashes seen more than once",
	Long: `Dupes lists content hashes exported by more than one manifest row,
usually the result of re-running extract over the same sources. Rows are
reported, never removed: the manifest is append-only and the catalog
only mirrors it.`,
	RunE: runDupes,
}

func init() {
	rootCmd.AddCommand(catalogCmd, statsCmd, dupesCmd)

	for _, cmd := range []*cobra.Command{catalogCmd, statsCmd, dupesCmd} {
		cmd.Flags().StringVar(&flagQueryCatalog, "catalog", "salida/catalog.db", "Run catalog database path")
	}
}

func openQueryCatalog(ctx context.Context) (*catalog.Catalog, error) {
	if _, err := os.Stat(flagQueryCatalog); err != nil {
		return nil, fmt.Errorf("catalog database %s not found; run extract first", flagQueryCatalog)
	}
	return catalog.Open(ctx, flagQueryCatalog)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cat, err := openQueryCatalog(ctx)
	if err != nil {
		return err
	}
	defer cat.Close()

	runs, err := cat.Runs(ctx)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}

	for _, r := range runs {
		state := "running"
		if r.FinishedAt != nil {
			state = r.FinishedAt.Sub(r.StartedAt).Round(time.Second).String()
		}
		fmt.Printf("%s  %-5s  %-30s  %s\n", r.StartedAt.Format("2006-01-02 15:04:05"), r.Mode, r.Source, state)
		fmt.Printf("  run %s: %d processed, %d skipped, %d failed, %d exercises\n",
			r.ID, r.Stats.FilesProcessed, r.Stats.FilesSkipped,
			r.Stats.FilesFailed, r.Stats.ExercisesWritten)
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cat, err := openQueryCatalog(ctx)
	if err != nil {
		return err
	}
	defer cat.Close()

	totals, err := cat.Stats(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Runs:          %d\n", totals.Runs)
	fmt.Printf("Manifest rows: %d\n", totals.Rows)
	fmt.Printf("  ejercicio:   %d\n", totals.Exercises)
	fmt.Printf("  material:    %d\n", totals.Materials)
	fmt.Printf("Source files:  %d\n", totals.Sources)
	return nil
}

func runDupes(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cat, err := openQueryCatalog(ctx)
	if err != nil {
		return err
	}
	defer cat.Close()

	dupes, err := cat.DuplicateHashes(ctx)
	if err != nil {
		return err
	}
	if len(dupes) == 0 {
		fmt.Println("No duplicate exports found")
		return nil
	}

	for _, d := range dupes {
		fmt.Printf("%s  x%d  %s\n", d.Hash[:12], d.Count, strings.Join(d.ExerciseIDs, ", "))
	}
	fmt.Printf("%d duplicated hashes\n", len(dupes))
	return nil
}
