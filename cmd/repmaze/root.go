// Command repmaze is the offline CLI: solve a single maze string, normalize
// one, or run a quizmaster search locally without the HTTP service, grounded
// on original_source/main.c's solve/search subcommand shape and the
// cobra wiring pattern from the pack's rybkr-sudoku/cmd/gen.go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "repmaze",
	Short:   "Search and solve repeated mazes",
	Version: version,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
