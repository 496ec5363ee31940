// Package shape holds the immutable pieces that are placed on the board.
package shape

import (
	"errors"
	"fmt"
	"iter"
	"math/bits"
	"slices"
	"strings"

	"svw.info/woodoku/internal/domain"
)

// MaxSize bounds the normalized extent of a shape in either direction.
const MaxSize = 5

var (
	ErrEmptyShape    = errors.New("shape has no cells")
	ErrShapeTooLarge = fmt.Errorf("shape does not fit in %dx%d", MaxSize, MaxSize)
)

// Shape is a normalized set of cell offsets: the minimum row and the minimum
// column are both 0. Shapes are values; Rotate returns a new one.
//
// The coordinate set is kept twice: as a row-major slice for iteration and as
// a bitmask (bit r*MaxSize+c) for equality and hashing.
type Shape struct {
	coords []domain.CellCoord
	mask   uint64
}

// New normalizes coords and collapses duplicates.
func New(coords ...domain.CellCoord) (Shape, error) {
	if len(coords) == 0 {
		return Shape{}, ErrEmptyShape
	}
	minR, minC := coords[0].Row, coords[0].Col
	for _, c := range coords[1:] {
		minR = min(minR, c.Row)
		minC = min(minC, c.Col)
	}
	var mask uint64
	for _, c := range coords {
		r, col := c.Row-minR, c.Col-minC
		if r < 0 || col < 0 || r >= MaxSize || col >= MaxSize { // negative only on int overflow
			return Shape{}, fmt.Errorf("%w: offset (%d,%d)", ErrShapeTooLarge, r, col)
		}
		mask |= 1 << (r*MaxSize + col)
	}
	return fromMask(mask), nil
}

// MustNew is New for literals; it panics on invalid input.
func MustNew(coords ...domain.CellCoord) Shape {
	s, err := New(coords...)
	if err != nil {
		panic(err)
	}
	return s
}

// FromPairs builds a shape from [row, col] pairs as found in catalog files.
func FromPairs(pairs [][2]int) (Shape, error) {
	coords := make([]domain.CellCoord, len(pairs))
	for i, p := range pairs {
		coords[i] = domain.CellCoord{Row: p[0], Col: p[1]}
	}
	return New(coords...)
}

func fromMask(mask uint64) Shape {
	coords := make([]domain.CellCoord, 0, bits.OnesCount64(mask))
	for m := mask; m != 0; m &= m - 1 {
		i := bits.TrailingZeros64(m)
		coords = append(coords, domain.CellCoord{Row: i / MaxSize, Col: i % MaxSize})
	}
	return Shape{coords: coords, mask: mask}
}

// Coords returns the coordinate set in row-major order.
func (s Shape) Coords() []domain.CellCoord { return slices.Clone(s.coords) }

// All yields the offsets in row-major order without copying.
func (s Shape) All() iter.Seq[domain.CellCoord] {
	return func(yield func(domain.CellCoord) bool) {
		for _, c := range s.coords {
			if !yield(c) {
				return
			}
		}
	}
}

func (s Shape) Size() int { return len(s.coords) }

// Mask is the canonical key of the shape; equal shapes have equal masks.
func (s Shape) Mask() uint64 { return s.mask }

func (s Shape) IsZero() bool { return s.mask == 0 }

func (s Shape) Equal(o Shape) bool { return s.mask == o.mask }

// MapToBoardAt translates every offset by (x, y). No bounds checking.
func (s Shape) MapToBoardAt(x, y int) []domain.CellCoord {
	out := make([]domain.CellCoord, len(s.coords))
	for i, c := range s.coords {
		out[i] = domain.CellCoord{Row: x + c.Row, Col: y + c.Col}
	}
	return out
}

// Rotate turns the shape by 90 degrees inside its bounding square.
func (s Shape) Rotate() Shape {
	if s.IsZero() {
		return s
	}
	m := 0
	for _, c := range s.coords {
		m = max(m, c.Row, c.Col)
	}
	rotated := make([]domain.CellCoord, len(s.coords))
	for i, c := range s.coords {
		rotated[i] = domain.CellCoord{Row: m - c.Col, Col: c.Row}
	}
	return MustNew(rotated...)
}

// Rotations lists the distinct orientations of s, starting with s itself.
func (s Shape) Rotations() []Shape {
	out := []Shape{s}
	r := s.Rotate()
	for range 3 {
		if !slices.ContainsFunc(out, r.Equal) {
			out = append(out, r)
		}
		r = r.Rotate()
	}
	return out
}

// Bounds returns the height and width of the shape.
func (s Shape) Bounds() (rows, cols int) {
	for _, c := range s.coords {
		rows = max(rows, c.Row+1)
		cols = max(cols, c.Col+1)
	}
	return rows, cols
}

// String renders rows separated by '/', e.g. "##/#." for a small L.
func (s Shape) String() string {
	rows, cols := s.Bounds()
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := 0; c < cols; c++ {
			if s.mask&(1<<(r*MaxSize+c)) != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
