// Package autoplay plays whole games unattended by following hints. It backs
// the simulate command and is a quick way to compare hint tiers.
package autoplay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/woodoku/internal/domain"
	"svw.info/woodoku/internal/game"
	"svw.info/woodoku/internal/ports"
	"svw.info/woodoku/internal/shape"
)

// ErrNoHint means the hinter found nothing although the game was not over.
var ErrNoHint = errors.New("hinter returned no move")

// Player plays games using a Hinter capped at Tier.
type Player struct {
	Hinter ports.Hinter
	Tier   domain.StrategyTier
}

// NewPlayer wires a player that asks h for every move.
func NewPlayer(h ports.Hinter, tier domain.StrategyTier) *Player {
	return &Player{Hinter: h, Tier: tier}
}

// Result summarizes one played game.
type Result struct {
	Seed      int64
	Score     int
	Turns     int
	Clears    int // placements that cleared at least one group
	Groups    int
	BestMove  int // most points earned by one placement
	MaxStreak int
	Over      bool
	Final     domain.BoardState
	Duration  time.Duration
}

// Play runs a game until it is over or maxTurns placements were made
// (0 means no limit). The partial result is returned with ctx errors.
func (p *Player) Play(ctx context.Context, catalog []shape.Shape, opts game.Options, maxTurns int) (Result, error) {
	start := time.Now()
	g, err := game.New(catalog, opts)
	if err != nil {
		return Result{}, err
	}
	res := Result{Seed: g.Seed()}
	finish := func() Result {
		res.Score = g.Score()
		res.Turns = g.Turn()
		res.Over = g.Over()
		res.Final = g.State().Board
		res.Duration = time.Since(start)
		return res
	}

	for !g.Over() && (maxTurns == 0 || g.Turn() < maxTurns) {
		if err := ctx.Err(); err != nil {
			return finish(), err
		}
		hand, avail := g.Hand()
		h, ok, err := p.Hinter.Hint(ctx, g.Board(), hand, avail, p.Tier)
		if err != nil {
			return finish(), err
		}
		if !ok {
			return finish(), fmt.Errorf("%w at turn %d", ErrNoHint, g.Turn())
		}
		out, err := g.Play(h.Move.Slot, h.Move.Origin.Row, h.Move.Origin.Col)
		if err != nil {
			return finish(), fmt.Errorf("turn %d: %w", g.Turn(), err)
		}
		if len(out.Groups) > 0 {
			res.Clears++
			res.Groups += len(out.Groups)
		}
		res.BestMove = max(res.BestMove, out.Earned)
		res.MaxStreak = max(res.MaxStreak, out.Streak)
	}
	return finish(), nil
}
