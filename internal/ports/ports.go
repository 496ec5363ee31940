package ports

import (
	"context"
	"time"

	"svw.info/woodoku/internal/board"
	"svw.info/woodoku/internal/domain"
	"svw.info/woodoku/internal/shape"
)

// Stats captures performance characteristics of a search.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// HandSolver finds moves that place every shape of a hand.
type HandSolver interface {
	Solve(ctx context.Context, b *board.Board, shapes []shape.Shape) ([]domain.Move, Stats, error)
}

// Hinter suggests the next placement for the available slots of a hand.
type Hinter interface {
	Hint(ctx context.Context, b *board.Board, hand []shape.Shape, avail []bool, max domain.StrategyTier) (domain.Hint, bool, error)
}

// Catalog supplies the shapes a game deals from.
type Catalog interface {
	Load(ctx context.Context) ([]shape.Shape, error)
}
