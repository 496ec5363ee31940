package game

import (
	"svw.info/woodoku/internal/domain"
	"svw.info/woodoku/internal/shape"
)

// ObservationSize is the length of Observation for a hand of handSize shapes.
func ObservationSize(handSize int) int {
	return domain.BoardSize*domain.BoardSize + handSize*shape.MaxSize*shape.MaxSize + 1
}

// Observation flattens the game for learning agents: board occupancy as 0/1,
// then each hand slot as a MaxSize x MaxSize 0/1 grid (all zero once placed),
// then the current streak.
func (g *Game) Observation() []float64 {
	obs := make([]float64, ObservationSize(len(g.hand)))
	for _, c := range g.board.Cells() {
		obs[c.Row*domain.BoardSize+c.Col] = 1
	}
	base := domain.BoardSize * domain.BoardSize
	for i, s := range g.hand {
		if !g.avail[i] {
			continue
		}
		off := base + i*shape.MaxSize*shape.MaxSize
		for c := range s.All() {
			obs[off+c.Row*shape.MaxSize+c.Col] = 1
		}
	}
	obs[len(obs)-1] = float64(g.board.Streak())
	return obs
}
