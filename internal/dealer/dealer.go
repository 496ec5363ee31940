package dealer

import (
	"errors"
	"math/rand"
	"slices"

	"svw.info/woodoku/internal/shape"
)

// DefaultHandSize is the number of shapes offered per round.
const DefaultHandSize = 3

var ErrEmptyCatalog = errors.New("dealer: shape catalog is empty")

// Dealer draws hands from a shape catalog using a seeded source, so a seed
// replays the same sequence of hands.
type Dealer struct {
	shapes []shape.Shape
	rng    *rand.Rand
	seed   int64
}

// New wires a dealer over catalog.
func New(catalog []shape.Shape, seed int64) (*Dealer, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	return &Dealer{
		shapes: slices.Clone(catalog),
		rng:    rand.New(rand.NewSource(seed)),
		seed:   seed,
	}, nil
}

// Deal draws n shapes with replacement; a hand may repeat a shape.
func (d *Dealer) Deal(n int) []shape.Shape {
	hand := make([]shape.Shape, n)
	for i := range hand {
		hand[i] = d.shapes[d.rng.Intn(len(d.shapes))]
	}
	return hand
}

// Int63 exposes the dealer's source for dependent randomness (board scan order).
func (d *Dealer) Int63() int64 { return d.rng.Int63() }

func (d *Dealer) Seed() int64 { return d.seed }
