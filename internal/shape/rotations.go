package shape

import "github.com/kamstrup/intmap"

// ExpandRotations returns every prototype followed by its rotations, keeping
// the first occurrence of each distinct shape.
func ExpandRotations(protos []Shape) []Shape {
	seen := intmap.New[uint64, struct{}](len(protos) * 4)
	out := make([]Shape, 0, len(protos)*4)
	for _, p := range protos {
		for _, r := range p.Rotations() {
			if _, ok := seen.Get(r.Mask()); ok {
				continue
			}
			seen.Put(r.Mask(), struct{}{})
			out = append(out, r)
		}
	}
	return out
}

// Index maps catalog shapes to positions by canonical mask.
type Index struct {
	byMask *intmap.Map[uint64, int]
	shapes []Shape
}

// NewIndex indexes shapes; later duplicates resolve to the first position.
func NewIndex(shapes []Shape) *Index {
	idx := &Index{byMask: intmap.New[uint64, int](len(shapes)), shapes: shapes}
	for i, s := range shapes {
		if _, ok := idx.byMask.Get(s.Mask()); !ok {
			idx.byMask.Put(s.Mask(), i)
		}
	}
	return idx
}

func (x *Index) Len() int { return len(x.shapes) }

func (x *Index) At(i int) Shape { return x.shapes[i] }

// Family returns the lowest position holding s or one of its rotations, so
// every orientation of a prototype shares one id.
func (x *Index) Family(s Shape) (int, bool) {
	best, found := 0, false
	for _, r := range s.Rotations() {
		if i, ok := x.byMask.Get(r.Mask()); ok && (!found || i < best) {
			best, found = i, true
		}
	}
	return best, found
}
