// Package game drives turns: it deals hands, applies moves to a board and
// decides when the game is over.
package game

import (
	"errors"
	"fmt"
	"math/rand"

	"svw.info/woodoku/internal/board"
	"svw.info/woodoku/internal/dealer"
	"svw.info/woodoku/internal/domain"
	"svw.info/woodoku/internal/score"
	"svw.info/woodoku/internal/shape"
)

var (
	ErrInvalidSlot = errors.New("invalid hand slot")
	ErrSlotUsed    = errors.New("shape already placed this round")
	ErrCannotPlace = errors.New("shape does not fit there")
	ErrGameOver    = errors.New("game is over")
)

// Options configures a new game. Zero values select the defaults.
type Options struct {
	HandSize int
	Seed     int64
	Rules    *score.Rules
}

// Game is one session. It is not safe for concurrent use.
type Game struct {
	board  *board.Board
	dealer *dealer.Dealer
	hand   []shape.Shape
	avail  []bool
	turn   int
	over   bool
}

// New starts a game over catalog and deals the first hand.
func New(catalog []shape.Shape, opts Options) (*Game, error) {
	if opts.HandSize < 0 {
		return nil, fmt.Errorf("hand size must be positive, got %d", opts.HandSize)
	}
	if opts.HandSize == 0 {
		opts.HandSize = dealer.DefaultHandSize
	}
	rules := score.DefaultRules()
	if opts.Rules != nil {
		rules = *opts.Rules
	}
	d, err := dealer.New(catalog, opts.Seed)
	if err != nil {
		return nil, err
	}
	g := &Game{
		board:  board.New(board.WithRules(rules), board.WithRand(rand.New(rand.NewSource(d.Int63())))),
		dealer: d,
		hand:   make([]shape.Shape, opts.HandSize),
		avail:  make([]bool, opts.HandSize),
	}
	g.deal()
	g.checkOver()
	return g, nil
}

func (g *Game) deal() {
	copy(g.hand, g.dealer.Deal(len(g.hand)))
	for i := range g.avail {
		g.avail[i] = true
	}
}

// checkOver ends the game when no available shape fits anywhere.
func (g *Game) checkOver() {
	for i, s := range g.hand {
		if g.avail[i] && g.board.CanPlaceAnywhere(s) {
			return
		}
	}
	g.over = true
}

// Play places the shape in slot with its top-left corner at (x, y).
func (g *Game) Play(slot, x, y int) (domain.Outcome, error) {
	if g.over {
		return domain.Outcome{}, ErrGameOver
	}
	if slot < 0 || slot >= len(g.hand) {
		return domain.Outcome{}, fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	if !g.avail[slot] {
		return domain.Outcome{}, fmt.Errorf("%w: %d", ErrSlotUsed, slot)
	}
	s := g.hand[slot]
	if !g.board.CanPlaceAt(s, x, y) {
		return domain.Outcome{}, fmt.Errorf("%w: %s at (%d,%d)", ErrCannotPlace, s, x, y)
	}

	p := g.board.Place(s, x, y)
	g.avail[slot] = false
	g.turn++

	out := domain.Outcome{
		Move:    domain.Move{Slot: slot, Origin: domain.CellCoord{Row: x, Col: y}},
		Placed:  s.Size(),
		Groups:  p.Groups,
		Cleared: p.Cleared,
		Earned:  p.Earned,
		Score:   g.board.Score(),
		Streak:  g.board.Streak(),
		Combo:   g.board.Combo(),
	}
	if g.handSpent() {
		g.deal()
		out.Dealt = true
	}
	g.checkOver()
	out.Over = g.over
	return out, nil
}

func (g *Game) handSpent() bool {
	for _, a := range g.avail {
		if a {
			return false
		}
	}
	return true
}

func (g *Game) Over() bool  { return g.over }
func (g *Game) Turn() int   { return g.turn }
func (g *Game) Score() int  { return g.board.Score() }
func (g *Game) Seed() int64 { return g.dealer.Seed() }

// Hand returns the shapes of the current round and which are still unplaced.
func (g *Game) Hand() ([]shape.Shape, []bool) {
	return append([]shape.Shape(nil), g.hand...), append([]bool(nil), g.avail...)
}

// Board returns a copy of the board for read-only use such as hint search.
func (g *Game) Board() *board.Board { return g.board.Clone() }

// State returns a snapshot for renderers.
func (g *Game) State() domain.GameState {
	st := domain.GameState{
		Seed:  g.dealer.Seed(),
		Board: g.board.Snapshot(),
		Hand:  make([]domain.HandSlot, len(g.hand)),
		Turn:  g.turn,
		Over:  g.over,
	}
	for i, s := range g.hand {
		st.Hand[i] = domain.HandSlot{Shape: s.Coords(), Available: g.avail[i]}
	}
	return st
}
