package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vinom-labs/repmaze/config"
	"github.com/vinom-labs/repmaze/internal/logging"
	"github.com/vinom-labs/repmaze/quizmaster"
	"github.com/vinom-labs/repmaze/solver"
)

var (
	searchRandom  bool
	searchTopDown bool
	searchSeed    uint64
	searchMinPort int
	searchMaxPort int
	searchMaxLen  int
)

func init() {
	cmd := &cobra.Command{
		Use:   "search <nterm>",
		Short: "Search for the maze whose shortest path is as long as possible",
		Args:  cobra.ExactArgs(1),
		RunE:  runSearch,
	}

	cmd.Flags().BoolVar(&searchRandom, "random", false, "Sample random port subsets instead of enumerating them exhaustively")
	cmd.Flags().BoolVar(&searchTopDown, "topdown", false, "Walk down from the fully-connected maze, deleting one port at a time")
	cmd.Flags().Uint64Var(&searchSeed, "seed", 0, "Random seed (--random only)")
	cmd.Flags().IntVar(&searchMinPort, "min-aport", 0, "Minimum number of active ports")
	cmd.Flags().IntVar(&searchMaxPort, "max-aport", 0, "Maximum number of active ports (0 = all candidates)")
	cmd.Flags().IntVar(&searchMaxLen, "max-len", 0, "Stop as soon as a path at least this long is found (0 = unbounded)")

	rootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	nterm, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("nterm must be an integer: %w", err)
	}

	logger := logging.New("SEARCH", config.ColorCyan, os.Stderr)

	maxPort := searchMaxPort
	if maxPort == 0 {
		maxPort = math.MaxInt
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		if _, ok := <-sigCh; ok {
			logger.Info("interrupt received, stopping and reporting best-so-far")
			cancel()
		}
	}()
	defer signal.Stop(sigCh)

	var best quizmaster.Best
	switch {
	case searchTopDown:
		best = quizmaster.TopDown(ctx, quizmaster.TopDownOptions{
			NTerm: nterm, LengthCap: searchMaxLen, Logger: logger,
		})
	case searchRandom:
		best = quizmaster.Random(ctx, quizmaster.RandomOptions{
			NTerm: nterm, KMin: searchMinPort, KMax: maxPort, LengthCap: searchMaxLen,
			Seed: searchSeed, Logger: logger,
		})
	default:
		best = quizmaster.Exhaustive(quizmaster.ExhaustiveOptions{
			NTerm: nterm, KMin: searchMinPort, KMax: maxPort, LengthCap: searchMaxLen, Logger: logger,
		})
	}

	if best.Maze == nil {
		fmt.Println("No maze with a valid path found")
		return nil
	}

	fmt.Println("\n=== Best result ===")
	fmt.Printf("Path length: %d\n", best.Length)
	fmt.Printf("Maze: %s\n", best.Maze.String())
	fmt.Printf("Path: %s\n", (solver.Path{States: best.Path}).String())
	return nil
}
