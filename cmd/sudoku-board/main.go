package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "sudoku-board",
	Short: "Interactive 9x9 Sudoku board with on-demand validation",
	Long: `sudoku-board serves a fixed starter puzzle with per-cell digit entry,
conflict validation (rows, columns, 3x3 boxes) and reset. Run "serve" for
the embedded web UI or "play" for the terminal UI.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to YAML config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(playCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
