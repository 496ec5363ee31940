package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/woodoku/internal/board"
	"svw.info/woodoku/internal/domain"
	"svw.info/woodoku/internal/ports"
	"svw.info/woodoku/internal/shape"
)

var ErrUnsolvable = errors.New("hand cannot be placed")

// HandSolver is a depth-first search over shape order and origins.
// Positions already shown to be dead ends are not searched twice.
type HandSolver struct{}

func NewHandSolver() *HandSolver { return &HandSolver{} }

// position identifies a search state: board occupancy plus the set of shapes
// already placed.
type position struct {
	occ  board.Bitset
	used uint64
}

// Solve finds moves placing every shape on a copy of b. Move.Slot indexes
// shapes. b is not modified.
func (s *HandSolver) Solve(ctx context.Context, b *board.Board, shapes []shape.Shape) ([]domain.Move, ports.Stats, error) {
	start := time.Now()
	if len(shapes) > 64 {
		return nil, ports.Stats{}, errors.New("too many shapes")
	}
	nodes := 0
	dead := make(map[position]struct{})
	moves := make([]domain.Move, 0, len(shapes))
	full := uint64(1)<<len(shapes) - 1

	var dfs func(cur *board.Board, used uint64) bool
	dfs = func(cur *board.Board, used uint64) bool {
		if ctx.Err() != nil {
			return false
		}
		if used == full {
			return true
		}
		pos := position{occ: cur.Bits(), used: used}
		if _, ok := dead[pos]; ok {
			return false
		}
		for i, sh := range shapes {
			if used&(1<<i) != 0 || duplicateBefore(shapes, used, i) {
				continue
			}
			for _, o := range cur.Origins(sh) {
				nodes++
				next := cur.Clone()
				next.Place(sh, o.Row, o.Col)
				moves = append(moves, domain.Move{Slot: i, Origin: o})
				if dfs(next, used|1<<i) {
					return true
				}
				moves = moves[:len(moves)-1]
			}
		}
		if ctx.Err() == nil {
			dead[pos] = struct{}{}
		}
		return false
	}

	ok := dfs(b.Clone(), 0)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}
	if !ok {
		return nil, st, ErrUnsolvable
	}
	return moves, st, nil
}

// duplicateBefore skips a shape when an equal, still unused shape comes
// earlier in the hand; trying it would repeat the same subtree.
func duplicateBefore(shapes []shape.Shape, used uint64, i int) bool {
	for j := 0; j < i; j++ {
		if used&(1<<j) == 0 && shapes[j].Equal(shapes[i]) {
			return true
		}
	}
	return false
}
