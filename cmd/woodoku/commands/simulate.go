package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/woodoku/internal/autoplay"
	"svw.info/woodoku/internal/domain"
	"svw.info/woodoku/internal/game"
	"svw.info/woodoku/internal/hint"
	"svw.info/woodoku/internal/infrastructure/catalog"
	"svw.info/woodoku/internal/ports"
	"svw.info/woodoku/internal/printer"
	"svw.info/woodoku/internal/solver"
)

var (
	simGames   int
	simSeed    int64
	simTurns   int
	simTier    string
	simShow    bool
	simTimeout time.Duration
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play games unattended by following hints",
	Long: `Play one or more games where every move is the hinter's suggestion,
then print a score summary.

Examples:
  # Five seeded games with the lookahead hinter
  woodoku simulate --games 5 --seed 42

  # Compare with the greedy hinter and show the final boards
  woodoku simulate --games 5 --seed 42 --tier greedy --show`,
	RunE: runSimulate,
}

// newHinter builds the hinter the simulated player follows.
var newHinter = func() ports.Hinter { return hint.NewPlacement(solver.NewHandSolver()) }

func init() {
	simulateCmd.Flags().IntVarP(&simGames, "games", "g", 1, "Number of games to play")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "Seed of the first game; game i uses seed+i (0 picks one)")
	simulateCmd.Flags().IntVar(&simTurns, "turns", 0, "Stop each game after this many placements (0 = until game over)")
	simulateCmd.Flags().StringVar(&simTier, "tier", "lookahead", "Hint tier: greedy or lookahead")
	simulateCmd.Flags().BoolVar(&simShow, "show", false, "Print the final board of each game")
	simulateCmd.Flags().DurationVar(&simTimeout, "timeout", time.Minute, "Give up on a game after this long")

	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	var tier domain.StrategyTier
	if err := tier.UnmarshalText([]byte(strings.ToLower(simTier))); err != nil {
		return printer.Error(
			"invalid hint tier",
			fmt.Sprintf("Unknown tier: %s", simTier),
			[]string{"Valid tiers: greedy, lookahead"},
		)
	}
	if simGames < 1 {
		return printer.Error("invalid game count", fmt.Sprintf("--games must be at least 1, got %d", simGames), nil)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	shapes, err := catalog.NewFS(cfg.Game.Catalog).Load(ctx)
	if err != nil {
		return printer.Error("failed to load shape catalog", err.Error(), nil)
	}

	seed := simSeed
	if seed == 0 {
		seed = cfg.Game.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	player := autoplay.NewPlayer(newHinter(), tier)
	rules := cfg.Scoring
	var total, best int
	for i := 0; i < simGames; i++ {
		gameCtx, cancel := context.WithTimeout(ctx, simTimeout)
		opts := game.Options{HandSize: cfg.Game.HandSize, Seed: seed + int64(i), Rules: &rules}
		res, err := player.Play(gameCtx, shapes, opts, simTurns)
		cancel()
		timedOut := errors.Is(err, context.DeadlineExceeded)
		if err != nil && !timedOut {
			return printer.Error("simulation failed", fmt.Sprintf("game %d (seed %d): %v", i+1, opts.Seed, err), nil)
		}

		printer.Step("game %d  seed=%d  score=%d  turns=%d  clears=%d  best=%d  streak=%d  (%s)\n",
			i+1, res.Seed, res.Score, res.Turns, res.Clears, res.BestMove, res.MaxStreak,
			res.Duration.Round(time.Millisecond))
		if timedOut {
			printer.Warning("game %d stopped after %s\n", i+1, simTimeout)
		}
		if simShow {
			printer.Board(os.Stdout, res.Final.Cells, nil)
			printer.Println()
		}
		total += res.Score
		best = max(best, res.Score)
	}

	printer.Success("%d game(s), %s tier: mean score %.1f, best %d\n",
		simGames, tier, float64(total)/float64(simGames), best)
	return nil
}
