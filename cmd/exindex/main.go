// Command exindex turns a corpus of university course documents into
// per-exercise artifacts, an append-only CSV manifest, and a JSON course
// index, and can serve the built index over MCP.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aulahub/exindex/internal/catalog"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "exindex",
	Short: "Extract and index exercises from university course documents",
	Long: `exindex walks a corpus of course documents (PDF, DOCX, plain text),
splits them into individual exercises, and writes per-exercise artifacts
plus an append-only CSV manifest. A second pass builds the JSON course
index the front end consumes.

Typical flow:
  exindex extract --input ./materiales --output ./salida
  exindex index --artifacts ./salida --out ./course_index.json`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("exindex\n")
		fmt.Printf("Version: %s\n", version)
		fmt.Printf("Build Time: %s\n", buildTime)
		fmt.Printf("Build Mode: %s\n", catalog.BuildMode)
		fmt.Printf("SQLite Driver: %s\n", catalog.DriverName)
	},
}

// setupLogging sends structured logs to stderr; stdout stays clean for
// command output and, under serve, the MCP protocol.
func setupLogging() {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
