package board

import (
	"fmt"

	"svw.info/woodoku/internal/domain"
)

// OutOfBoardError reports an access to a cell outside the board.
type OutOfBoardError struct {
	Row, Col int
}

func (e *OutOfBoardError) Error() string {
	return fmt.Sprintf("cell (%d,%d) is outside the %dx%d board", e.Row, e.Col, domain.BoardSize, domain.BoardSize)
}

func inBounds(c domain.CellCoord) bool {
	return c.Row >= 0 && c.Row < domain.BoardSize && c.Col >= 0 && c.Col < domain.BoardSize
}

func validate(c domain.CellCoord) error {
	if !inBounds(c) {
		return &OutOfBoardError{Row: c.Row, Col: c.Col}
	}
	return nil
}

// Grid is the occupancy of a board. Every accessor validates all coordinates
// before touching state, so a failed call never leaves a partial mutation.
type Grid struct {
	occ Bitset
}

func toSet(cells []domain.CellCoord) (Bitset, error) {
	var set Bitset
	for _, c := range cells {
		if err := validate(c); err != nil {
			return Bitset{}, err
		}
		set.Set(cellIndex(c.Row, c.Col))
	}
	return set, nil
}

// Add marks cells occupied.
func (g *Grid) Add(cells ...domain.CellCoord) error {
	set, err := toSet(cells)
	if err != nil {
		return err
	}
	g.occ = g.occ.Union(set)
	return nil
}

// Remove marks cells empty.
func (g *Grid) Remove(cells ...domain.CellCoord) error {
	set, err := toSet(cells)
	if err != nil {
		return err
	}
	g.occ = g.occ.Minus(set)
	return nil
}

// NoneOccupied reports whether every cell is empty; true for no cells.
func (g *Grid) NoneOccupied(cells ...domain.CellCoord) (bool, error) {
	set, err := toSet(cells)
	if err != nil {
		return false, err
	}
	return !g.occ.Intersects(set), nil
}

func (g *Grid) Occupied(row, col int) (bool, error) {
	if err := validate(domain.CellCoord{Row: row, Col: col}); err != nil {
		return false, err
	}
	return g.occ.Has(cellIndex(row, col)), nil
}

// Bits returns a copy of the occupancy set.
func (g *Grid) Bits() Bitset { return g.occ }
