package index

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/ffwd/internal/bitmap"
)

// Positions is an ascending, duplicate-free list of list positions.
type Positions []int

// NewPositions creates Positions from unsorted input.
func NewPositions(pos ...int) Positions {
	p := slices.Clone(pos)
	slices.Sort(p)
	return slices.Compact(p)
}

// Positions implements Set.
func (p Positions) Positions() Positions { return p }

// Or returns the union of p and other.
func (p Positions) Or(other Positions) Positions {
	return Union(p, other)
}

// And returns the intersection of p and other.
func (p Positions) And(other Positions) Positions {
	return Intersection(p, other)
}

// Contains reports whether pos is part of p.
func (p Positions) Contains(pos int) bool {
	_, found := slices.BinarySearch(p, pos)
	return found
}

// Len returns the number of positions.
func (p Positions) Len() int { return len(p) }

// Bitmap converts the positions into a roaring bitmap.
// Negative positions and positions above bitmap.MaxPosition are skipped.
func (p Positions) Bitmap() *roaring.Bitmap {
	b := bitmap.New()
	for _, pos := range p {
		b.Add(pos)
	}
	return b.Roaring()
}

// PositionsFromBitmap converts a roaring bitmap into Positions.
func PositionsFromBitmap(rb *roaring.Bitmap) Positions {
	if rb == nil || rb.IsEmpty() {
		return nil
	}
	return bitmap.FromRoaring(rb).ToSlice()
}
