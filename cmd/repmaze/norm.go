package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vinom-labs/repmaze/maze"
	"github.com/vinom-labs/repmaze/normalize"
)

func init() {
	cmd := &cobra.Command{
		Use:   "norm <nterm> <maze-string>",
		Short: "Print the canonical form of a maze string",
		Args:  cobra.ExactArgs(2),
		RunE:  runNorm,
	}

	rootCmd.AddCommand(cmd)
}

func runNorm(cmd *cobra.Command, args []string) error {
	nterm, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("nterm must be an integer: %w", err)
	}

	m, err := maze.Parse(nterm, args[1])
	if err != nil {
		return fmt.Errorf("parsing maze string: %w", err)
	}

	if normalize.IsNormalized(m) {
		fmt.Println("Already normalized")
	}
	normalize.Normalize(m)
	fmt.Println(m.String())
	return nil
}
