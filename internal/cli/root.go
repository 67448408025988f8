// Package cli implements the command-line interface for pocketcube.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/feldi/pocketcube/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "pocketcube",
	Short: "Pocket cube state-space explorer",
	Long: `Pocket cube state-space explorer - a CLI for the 2x2 corner-cube
move algebra.

Apply move sequences to the solved cube, generate and record random
scrambles, inspect the one-hot feature encoding used for model input,
or walk the state space interactively.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.pocketcube/pocketcube.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// openDB opens the scramble history database from the --db flag or the
// default location.
func openDB() (*storage.DB, error) {
	if dbPath != "" {
		return storage.Open(dbPath)
	}
	return storage.OpenDefault()
}
