package board

import (
	"math/bits"

	"svw.info/woodoku/internal/domain"
)

const cellCount = domain.BoardSize * domain.BoardSize

// Bitset is a set of board cells; cell (r, c) is bit r*BoardSize+c.
type Bitset [2]uint64

func cellIndex(r, c int) int { return r*domain.BoardSize + c }

func (b *Bitset) Set(i int)   { b[i>>6] |= 1 << (i & 63) }
func (b *Bitset) Unset(i int) { b[i>>6] &^= 1 << (i & 63) }

func (b Bitset) Has(i int) bool { return b[i>>6]&(1<<(i&63)) != 0 }

func (b Bitset) Union(o Bitset) Bitset { return Bitset{b[0] | o[0], b[1] | o[1]} }
func (b Bitset) Minus(o Bitset) Bitset { return Bitset{b[0] &^ o[0], b[1] &^ o[1]} }

// Covers reports whether every cell of o is in b.
func (b Bitset) Covers(o Bitset) bool { return b[0]&o[0] == o[0] && b[1]&o[1] == o[1] }

func (b Bitset) Intersects(o Bitset) bool { return b[0]&o[0] != 0 || b[1]&o[1] != 0 }

func (b Bitset) Len() int { return bits.OnesCount64(b[0]) + bits.OnesCount64(b[1]) }

func (b Bitset) IsEmpty() bool { return b[0] == 0 && b[1] == 0 }

// Cells lists the members in row-major order.
func (b Bitset) Cells() []domain.CellCoord {
	out := make([]domain.CellCoord, 0, b.Len())
	for w := range b {
		for m := b[w]; m != 0; m &= m - 1 {
			i := w<<6 + bits.TrailingZeros64(m)
			out = append(out, domain.CellCoord{Row: i / domain.BoardSize, Col: i % domain.BoardSize})
		}
	}
	return out
}
