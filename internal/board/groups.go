package board

import "svw.info/woodoku/internal/domain"

const groupsPerAxis = domain.BoardSize

// groupMasks[axis][i] holds the cells of row i, column i or box i.
var groupMasks [3][groupsPerAxis]Bitset

func init() {
	for i := 0; i < groupsPerAxis; i++ {
		groupMasks[domain.AxisRow][i] = mustSet(RowCoords(i))
		groupMasks[domain.AxisCol][i] = mustSet(ColCoords(i))
		groupMasks[domain.AxisBox][i] = mustSet(BoxCoords(i))
	}
}

func mustSet(cells []domain.CellCoord) Bitset {
	set, err := toSet(cells)
	if err != nil {
		panic(err)
	}
	return set
}

func RowCoords(row int) []domain.CellCoord {
	out := make([]domain.CellCoord, domain.BoardSize)
	for c := range out {
		out[c] = domain.CellCoord{Row: row, Col: c}
	}
	return out
}

func ColCoords(col int) []domain.CellCoord {
	out := make([]domain.CellCoord, domain.BoardSize)
	for r := range out {
		out[r] = domain.CellCoord{Row: r, Col: col}
	}
	return out
}

// BoxCoords returns the cells of box index, numbered left to right, top to bottom:
//
//	0 1 2
//	3 4 5
//	6 7 8
func BoxCoords(index int) []domain.CellCoord {
	br, bc := (index/domain.BoxSize)*domain.BoxSize, (index%domain.BoxSize)*domain.BoxSize
	out := make([]domain.CellCoord, 0, domain.BoxSize*domain.BoxSize)
	for dr := 0; dr < domain.BoxSize; dr++ {
		for dc := 0; dc < domain.BoxSize; dc++ {
			out = append(out, domain.CellCoord{Row: br + dr, Col: bc + dc})
		}
	}
	return out
}

// BoxIndex returns the box containing (row, col).
func BoxIndex(row, col int) int {
	return domain.BoxSize*(row/domain.BoxSize) + col/domain.BoxSize
}

// GroupCoords returns the cells of a group.
func GroupCoords(g domain.Group) []domain.CellCoord {
	return groupMasks[g.Axis][g.Index].Cells()
}

// detectGroups finds every complete row, column and box of occ. A cell in
// several complete groups appears once in the returned set.
func detectGroups(occ Bitset) ([]domain.Group, Bitset) {
	var (
		groups []domain.Group
		clear  Bitset
	)
	for i := 0; i < groupsPerAxis; i++ {
		for _, axis := range [...]domain.Axis{domain.AxisRow, domain.AxisCol, domain.AxisBox} {
			m := groupMasks[axis][i]
			if occ.Covers(m) {
				groups = append(groups, domain.Group{Axis: axis, Index: i})
				clear = clear.Union(m)
			}
		}
	}
	return groups, clear
}
