package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vinom-labs/repmaze/internal/render"
	"github.com/vinom-labs/repmaze/maze"
	"github.com/vinom-labs/repmaze/solver"
)

var (
	solveBFS     bool
	solveVerbose bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "solve <nterm> <maze-string>",
		Short: "Find the shortest Start->Goal path of a maze",
		Args:  cobra.ExactArgs(2),
		RunE:  runSolve,
	}

	cmd.Flags().BoolVar(&solveBFS, "bfs", false, "Use breadth-first search instead of iterative-deepening DFS")
	cmd.Flags().BoolVarP(&solveVerbose, "verbose", "v", false, "Annotate each path edge with the block and port it crosses")

	rootCmd.AddCommand(cmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	nterm, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("nterm must be an integer: %w", err)
	}

	m, err := maze.Parse(nterm, args[1])
	if err != nil {
		return fmt.Errorf("parsing maze string: %w", err)
	}

	fmt.Printf("Maze: %s\n", m.String())

	var path solver.Path
	var length int
	if solveBFS {
		path, length = solver.BFS(m)
	} else {
		path, length = solver.IDDFS(m, solver.Options{})
	}

	if length == solver.NoPath {
		fmt.Println("No path found")
		return nil
	}

	fmt.Printf("Path length: %d\n", length)
	fmt.Printf("Path: %s\n\n", path.String())
	render.Table(os.Stdout, m)
	if solveVerbose {
		fmt.Println()
		render.Verbose(os.Stdout, m, path)
	}
	return nil
}
