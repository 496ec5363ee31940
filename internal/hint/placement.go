package hint

import (
	"context"
	"fmt"

	"svw.info/woodoku/internal/board"
	"svw.info/woodoku/internal/domain"
	"svw.info/woodoku/internal/ports"
	"svw.info/woodoku/internal/shape"
)

// Placement suggests moves by simulating them on copies of the board.
type Placement struct {
	Solver ports.HandSolver
}

// NewPlacement wires a hinter; s is only needed for StrategyLookahead.
func NewPlacement(s ports.HandSolver) *Placement { return &Placement{Solver: s} }

type candidate struct {
	move   domain.Move
	cells  []domain.CellCoord
	earned int
	groups int
	after  *board.Board
}

// better orders candidates by points, then groups cleared. Earlier
// candidates win ties, so results follow slot then row-major order.
func (c candidate) better(o candidate) bool {
	if c.earned != o.earned {
		return c.earned > o.earned
	}
	return c.groups > o.groups
}

func candidates(b *board.Board, hand []shape.Shape, avail []bool) []candidate {
	var out []candidate
	for i, s := range hand {
		if !avail[i] || repeated(hand, avail, i) {
			continue
		}
		for _, o := range b.Origins(s) {
			next := b.Clone()
			p := next.Place(s, o.Row, o.Col)
			out = append(out, candidate{
				move:   domain.Move{Slot: i, Origin: o},
				cells:  p.Cells,
				earned: p.Earned,
				groups: len(p.Groups),
				after:  next,
			})
		}
	}
	return out
}

func repeated(hand []shape.Shape, avail []bool, i int) bool {
	for j := 0; j < i; j++ {
		if avail[j] && hand[j].Equal(hand[i]) {
			return true
		}
	}
	return false
}

// Hint returns the best placement up to the max tier. found is false when no
// available shape fits anywhere.
func (h *Placement) Hint(ctx context.Context, b *board.Board, hand []shape.Shape, avail []bool, max domain.StrategyTier) (domain.Hint, bool, error) {
	if len(hand) != len(avail) {
		return domain.Hint{}, false, fmt.Errorf("hand has %d shapes but %d availability flags", len(hand), len(avail))
	}
	cands := candidates(b, hand, avail)
	if len(cands) == 0 {
		return domain.Hint{}, false, nil
	}

	best := cands[0]
	for _, c := range cands[1:] {
		if c.better(best) {
			best = c
		}
	}
	if max < domain.StrategyLookahead || h.Solver == nil {
		return toHint(hand, best, domain.StrategyGreedy, ""), true, nil
	}

	var safe *candidate
	for i := range cands {
		c := cands[i]
		if safe != nil && !c.better(*safe) {
			continue
		}
		rest := remaining(hand, avail, c.move.Slot)
		if _, _, err := h.Solver.Solve(ctx, c.after, rest); err != nil {
			if ctx.Err() != nil {
				return domain.Hint{}, false, ctx.Err()
			}
			continue
		}
		safe = &cands[i]
	}
	if safe == nil {
		return toHint(hand, best, domain.StrategyGreedy, "; the rest of the hand will not fit"), true, nil
	}
	return toHint(hand, *safe, domain.StrategyLookahead, ""), true, nil
}

// remaining lists the available shapes other than slot.
func remaining(hand []shape.Shape, avail []bool, slot int) []shape.Shape {
	var out []shape.Shape
	for i, s := range hand {
		if avail[i] && i != slot {
			out = append(out, s)
		}
	}
	return out
}

func toHint(hand []shape.Shape, c candidate, tier domain.StrategyTier, note string) domain.Hint {
	msg := fmt.Sprintf("Place %s at (%d,%d) for %d points", hand[c.move.Slot], c.move.Origin.Row, c.move.Origin.Col, c.earned)
	if c.groups > 1 {
		msg += fmt.Sprintf(", clearing %d groups", c.groups)
	} else if c.groups == 1 {
		msg += ", clearing a group"
	}
	return domain.Hint{
		Message:  msg + note,
		Move:     c.move,
		Cells:    c.cells,
		Earned:   c.earned,
		Strategy: tier,
	}
}
