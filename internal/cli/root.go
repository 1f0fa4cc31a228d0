// Package cli implements the command-line interface for cubesolver.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath    string
	tablePath string
	verbose   bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesolver",
	Short: "Optimal Rubik's Cube solver",
	Long: `cubesolver - An optimal 3x3 Rubik's Cube solver using IDA* search
guided by a corner pattern database.

Generate the pattern database once with 'cubesolver build', then solve
scrambles with 'cubesolver solve'. Solved scrambles are recorded to a
local history database.`,
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
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "History database path (default: ~/.cubesolver/cubesolver.db)")
	rootCmd.PersistentFlags().StringVar(&tablePath, "table", "", "Pattern database path (default: ~/.cubesolver/corners.pdb)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// getTablePath returns the pattern database path from flag or default.
func getTablePath() (string, error) {
	if tablePath != "" {
		return tablePath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	dir := filepath.Join(home, ".cubesolver")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return filepath.Join(dir, "corners.pdb"), nil
}
