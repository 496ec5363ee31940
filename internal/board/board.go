// Package board is the Woodoku rules engine: placement validation, group
// detection and clearing, with scoring delegated to a score.Agent.
//
// A Board is not safe for concurrent use; callers serialize placements.
package board

import (
	"fmt"
	"math/rand"
	"time"

	"svw.info/woodoku/internal/domain"
	"svw.info/woodoku/internal/score"
	"svw.info/woodoku/internal/shape"
)

// Board owns the occupancy grid and the score of one game.
type Board struct {
	grid  Grid
	agent *score.Agent
	rng   *rand.Rand
}

// Placement reports the effect of Place.
type Placement struct {
	Cells   []domain.CellCoord
	Groups  []domain.Group
	Cleared []domain.CellCoord
	Earned  int
}

type Option func(*Board)

// WithRules sets the point values used by the board's score agent.
func WithRules(r score.Rules) Option {
	return func(b *Board) { b.agent = score.NewAgent(r) }
}

// WithRand sets the source used to shuffle CanPlaceAnywhere's scan order.
func WithRand(rng *rand.Rand) Option {
	return func(b *Board) { b.rng = rng }
}

// New returns an empty board with score, streak and combo at 0.
func New(opts ...Option) *Board {
	b := &Board{agent: score.NewAgent(score.DefaultRules())}
	for _, o := range opts {
		o(b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return b
}

// FromCells returns a board with cells already occupied and no score.
// Groups completed by cells are left in place.
func FromCells(cells []domain.CellCoord, opts ...Option) (*Board, error) {
	b := New(opts...)
	if err := b.grid.Add(cells...); err != nil {
		return nil, err
	}
	return b, nil
}

// footprint maps s to board cells at (x, y); ok is false when any cell falls
// off the board.
func footprint(s shape.Shape, x, y int) (set Bitset, ok bool) {
	for c := range s.All() {
		c.Row += x
		c.Col += y
		if !inBounds(c) {
			return Bitset{}, false
		}
		set.Set(cellIndex(c.Row, c.Col))
	}
	return set, true
}

// CanPlaceAt reports whether s fits with its top-left corner at (x, y): every
// cell on the board and currently empty. Off-board is simply false.
func (b *Board) CanPlaceAt(s shape.Shape, x, y int) bool {
	set, ok := footprint(s, x, y)
	return ok && !b.grid.occ.Intersects(set)
}

// CanPlaceAnywhere reports whether s fits at any origin. Origins are tried in
// a shuffled order; a false result always means all of them were examined.
func (b *Board) CanPlaceAnywhere(s shape.Shape) bool {
	for _, i := range b.rng.Perm(cellCount) {
		if b.CanPlaceAt(s, i/domain.BoardSize, i%domain.BoardSize) {
			return true
		}
	}
	return false
}

// FirstFit returns the first origin in row-major order where s fits.
func (b *Board) FirstFit(s shape.Shape) (domain.CellCoord, bool) {
	for x := 0; x < domain.BoardSize; x++ {
		for y := 0; y < domain.BoardSize; y++ {
			if b.CanPlaceAt(s, x, y) {
				return domain.CellCoord{Row: x, Col: y}, true
			}
		}
	}
	return domain.CellCoord{}, false
}

// Origins lists every origin where s fits, in row-major order.
func (b *Board) Origins(s shape.Shape) []domain.CellCoord {
	var out []domain.CellCoord
	for x := 0; x < domain.BoardSize; x++ {
		for y := 0; y < domain.BoardSize; y++ {
			if b.CanPlaceAt(s, x, y) {
				out = append(out, domain.CellCoord{Row: x, Col: y})
			}
		}
	}
	return out
}

// Place puts s at (x, y), scores the placement and clears every completed
// group. The caller must have checked CanPlaceAt; Place panics otherwise.
func (b *Board) Place(s shape.Shape, x, y int) Placement {
	cells := s.MapToBoardAt(x, y)
	if free, err := b.grid.NoneOccupied(cells...); err != nil || !free {
		panic(fmt.Sprintf("board: cannot place %s at (%d,%d)", s, x, y))
	}
	mustApply(b.grid.Add(cells...))

	groups, clear := detectGroups(b.grid.occ)
	earned := b.agent.CalculateWinning(s.Size(), len(groups))
	cleared := clear.Cells()
	mustApply(b.grid.Remove(cleared...))

	return Placement{
		Cells:   cells,
		Groups:  groups,
		Cleared: cleared,
		Earned:  earned,
	}
}

// mustApply panics on a grid error that validated input cannot produce.
func mustApply(err error) {
	if err != nil {
		panic(fmt.Sprintf("board: grid out of sync: %v", err))
	}
}

// DetectGroups reports the complete groups of the current board without
// clearing them. After Place it is always empty.
func (b *Board) DetectGroups() ([]domain.Group, []domain.CellCoord) {
	groups, clear := detectGroups(b.grid.occ)
	return groups, clear.Cells()
}

func (b *Board) Score() int  { return b.agent.Score() }
func (b *Board) Streak() int { return b.agent.Streak() }
func (b *Board) Combo() int  { return b.agent.Combo() }

// Occupied reports the state of one cell; off-board cells return *OutOfBoardError.
func (b *Board) Occupied(row, col int) (bool, error) { return b.grid.Occupied(row, col) }

// Cells lists occupied cells in row-major order.
func (b *Board) Cells() []domain.CellCoord { return b.grid.occ.Cells() }

// Bits returns the occupancy set, usable as a map key for board positions.
func (b *Board) Bits() Bitset { return b.grid.Bits() }

func (b *Board) Empty() bool { return b.grid.occ.IsEmpty() }

// Clone returns an independent copy with its own scan-order source.
func (b *Board) Clone() *Board {
	return &Board{
		grid:  b.grid,
		agent: b.agent.Clone(),
		rng:   rand.New(rand.NewSource(b.rng.Int63())),
	}
}

// Snapshot returns a read-only view for renderers.
func (b *Board) Snapshot() domain.BoardState {
	st := domain.BoardState{Score: b.Score(), Streak: b.Streak(), Combo: b.Combo()}
	for _, c := range b.Cells() {
		st.Cells[c.Row][c.Col] = true
	}
	return st
}
