package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/woodoku/internal/domain"
)

var (
	oneBlock   = []domain.CellCoord{{Row: 0, Col: 0}}
	threeBlock = []domain.CellCoord{{Row: 1, Col: 3}, {Row: 5, Col: 8}, {Row: 0, Col: 7}}
	fiveBlock  = append(append([]domain.CellCoord{}, threeBlock...), domain.CellCoord{Row: 2, Col: 1}, domain.CellCoord{Row: 0, Col: 8})
)

func occupancy(g *Grid) [domain.BoardSize][domain.BoardSize]bool {
	var out [domain.BoardSize][domain.BoardSize]bool
	for _, c := range g.Bits().Cells() {
		out[c.Row][c.Col] = true
	}
	return out
}

func TestGridAddRemove(t *testing.T) {
	for _, cells := range [][]domain.CellCoord{oneBlock, threeBlock, fiveBlock} {
		var g Grid
		require.NoError(t, g.Add(cells...))

		var want [domain.BoardSize][domain.BoardSize]bool
		for _, c := range cells {
			want[c.Row][c.Col] = true
		}
		assert.Equal(t, want, occupancy(&g))

		require.NoError(t, g.Remove(cells...))
		assert.True(t, g.Bits().IsEmpty())
	}
}

func TestGridRemoveSubset(t *testing.T) {
	var g Grid
	require.NoError(t, g.Add(fiveBlock...))
	require.NoError(t, g.Remove(threeBlock...))
	assert.ElementsMatch(t, []domain.CellCoord{{Row: 2, Col: 1}, {Row: 0, Col: 8}}, g.Bits().Cells())
}

func TestGridOccupancyQueries(t *testing.T) {
	var g Grid

	ok, err := g.NoneOccupied()
	require.NoError(t, err)
	assert.True(t, ok, "empty list is trivially empty")

	ok, _ = g.NoneOccupied(fiveBlock...)
	assert.True(t, ok)

	require.NoError(t, g.Add(threeBlock...))
	ok, _ = g.NoneOccupied(fiveBlock...)
	assert.False(t, ok)
	ok, _ = g.NoneOccupied(domain.CellCoord{Row: 8, Col: 8})
	assert.True(t, ok)
}

func TestGridOutOfBoard(t *testing.T) {
	bad := []domain.CellCoord{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 9, Col: 0}, {Row: 0, Col: 9}, {Row: 9, Col: 9}}
	for _, c := range bad {
		var g Grid
		err := g.Add(domain.CellCoord{Row: 4, Col: 4}, c)
		var oob *OutOfBoardError
		require.ErrorAs(t, err, &oob)
		assert.Equal(t, c.Row, oob.Row)
		assert.Equal(t, c.Col, oob.Col)
		assert.True(t, g.Bits().IsEmpty(), "failed Add must not mutate")

		require.NoError(t, g.Add(domain.CellCoord{Row: 4, Col: 4}))
		assert.ErrorAs(t, g.Remove(domain.CellCoord{Row: 4, Col: 4}, c), &oob)
		occ, _ := g.Occupied(4, 4)
		assert.True(t, occ, "failed Remove must not mutate")

		_, err = g.NoneOccupied(c)
		assert.ErrorAs(t, err, &oob)
		_, err = g.Occupied(c.Row, c.Col)
		assert.ErrorAs(t, err, &oob)
	}
}

func TestBitset(t *testing.T) {
	var b Bitset
	b.Set(0)
	b.Set(63)
	b.Set(64)
	b.Set(80)
	assert.Equal(t, 4, b.Len())
	assert.True(t, b.Has(63))
	assert.True(t, b.Has(64))
	assert.Equal(t, []domain.CellCoord{{Row: 0, Col: 0}, {Row: 7, Col: 0}, {Row: 7, Col: 1}, {Row: 8, Col: 8}}, b.Cells())

	b.Unset(63)
	assert.False(t, b.Has(63))

	var o Bitset
	o.Set(64)
	assert.True(t, b.Covers(o))
	assert.True(t, b.Intersects(o))
	assert.False(t, b.Minus(o).Has(64))
	assert.Equal(t, 3, b.Union(o).Len())
}
