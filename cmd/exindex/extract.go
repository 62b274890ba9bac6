package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aulahub/exindex/internal/catalog"
	"github.com/aulahub/exindex/internal/drive"
	"github.com/aulahub/exindex/internal/manifest"
	"github.com/aulahub/exindex/internal/walker"
)

var (
	flagCSV         string
	flagInput       string
	flagOutput      string
	flagCatalogDB   string
	flagNoCatalog   bool
	flagCredentials string
	flagRPS         float64
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract exercises from course documents into artifacts and a CSV manifest",
	Long: `Extract walks course documents, splits them into individual exercises,
and appends one manifest row per exported artifact. Output is organized
as one directory per course under the output root.

Local mode walks --input; each file's parent folder becomes its course.
With --csv, rows of Drive URLs are downloaded instead and the CSV's
course column groups the output.

Examples:
  exindex extract --input ./materiales --output ./salida
  exindex extract --csv enlaces.csv --output ./salida --credentials sa.json`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&flagCSV, "csv", "", "CSV of Drive URLs to process instead of a local walk")
	extractCmd.Flags().StringVar(&flagInput, "input", "materiales", "Local directory of course documents")
	extractCmd.Flags().StringVar(&flagOutput, "output", "salida", "Output root for artifacts, manifest and issues report")
	extractCmd.Flags().StringVar(&flagCatalogDB, "catalog", "", "Run catalog database path (default <output>/catalog.db)")
	extractCmd.Flags().BoolVar(&flagNoCatalog, "no-catalog", false, "Skip recording this run in the catalog")
	extractCmd.Flags().StringVar(&flagCredentials, "credentials", "", "Google service account JSON (CSV mode; default: ambient credentials)")
	extractCmd.Flags().Float64Var(&flagRPS, "rps", 2, "Drive API request rate limit (CSV mode)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	log := slog.Default()

	writer, err := manifest.NewWriter(flagOutput)
	if err != nil {
		return err
	}
	defer writer.Close()
	issues := manifest.NewIssuesReport()

	mode, source := "local", flagInput
	if flagCSV != "" {
		mode, source = "csv", flagCSV
	}

	var cat *catalog.Catalog
	var recorder walker.RowRecorder
	runID := ""
	if !flagNoCatalog {
		cat, err = catalog.Open(ctx, catalogPath())
		if err != nil {
			return err
		}
		defer cat.Close()
		runID, err = cat.BeginRun(ctx, mode, source)
		if err != nil {
			return err
		}
		recorder = cat.Recorder(runID)
	}

	pipeline := walker.NewPipeline(writer, issues, recorder, log)

	var stats *walker.Stats
	if mode == "csv" {
		client, err := drive.NewGoogleClient(ctx, flagCredentials, flagRPS)
		if err != nil {
			return err
		}
		stats, err = pipeline.WalkCSV(ctx, flagCSV, client)
		if err != nil {
			return err
		}
	} else {
		stats, err = pipeline.WalkLocal(ctx, flagInput)
		if err != nil {
			return err
		}
	}

	if err := issues.Flush(filepath.Join(flagOutput, "issues.md")); err != nil {
		log.Warn("issues report not written", "error", err)
	}

	if cat != nil {
		err := cat.FinishRun(ctx, runID, catalog.RunStats{
			FilesProcessed:   stats.FilesProcessed,
			FilesSkipped:     stats.FilesSkipped,
			FilesFailed:      stats.FilesFailed,
			DownloadsFailed:  stats.DownloadsFailed,
			ExercisesWritten: stats.ExercisesWritten,
		})
		if err != nil {
			log.Warn("run not finalized in catalog", "run", runID, "error", err)
		}
	}

	fmt.Printf("Processed: %d  Skipped: %d  Failed: %d  Low-text: %d  Download failures: %d\n",
		stats.FilesProcessed, stats.FilesSkipped, stats.FilesFailed,
		stats.LowTextFiles, stats.DownloadsFailed)
	fmt.Printf("Exercises written: %d\n", stats.ExercisesWritten)
	fmt.Printf("Manifest: %s\n", writer.ManifestPath())
	if issues.Len() > 0 {
		fmt.Printf("Issues: %d (see %s)\n", issues.Len(), filepath.Join(flagOutput, "issues.md"))
	}
	return nil
}

// catalogPath resolves the catalog database location for extract and the
// catalog query commands.
func catalogPath() string {
	if flagCatalogDB != "" {
		return flagCatalogDB
	}
	return filepath.Join(flagOutput, "catalog.db")
}
