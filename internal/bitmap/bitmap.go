// Package bitmap provides a position set backed by a Roaring bitmap.
package bitmap

import (
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// MaxPosition is the largest position a Bitmap can hold.
const MaxPosition = math.MaxUint32

// Bitmap is a set of list positions.
// The zero value is not usable; use New.
type Bitmap struct {
	rb *roaring.Bitmap
}

// New creates a new empty bitmap.
func New() *Bitmap {
	return &Bitmap{
		rb: roaring.New(),
	}
}

// FromRoaring wraps an existing roaring bitmap without copying it.
func FromRoaring(rb *roaring.Bitmap) *Bitmap {
	if rb == nil {
		rb = roaring.New()
	}
	return &Bitmap{rb: rb}
}

// Add adds a position to the bitmap. Positions outside [0, MaxPosition]
// are ignored and reported as false.
func (b *Bitmap) Add(pos int) bool {
	if pos < 0 || pos > MaxPosition {
		return false
	}
	return b.rb.CheckedAdd(uint32(pos))
}

// Contains checks if a position is in the bitmap.
func (b *Bitmap) Contains(pos int) bool {
	if pos < 0 || pos > MaxPosition {
		return false
	}
	return b.rb.Contains(uint32(pos))
}

// IsEmpty returns true if the bitmap is empty.
func (b *Bitmap) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// Cardinality returns the number of positions in the bitmap.
func (b *Bitmap) Cardinality() int {
	return int(b.rb.GetCardinality())
}

// All returns an iterator over the positions in ascending order.
func (b *Bitmap) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// ToSlice returns the positions in ascending order.
func (b *Bitmap) ToSlice() []int {
	out := make([]int, 0, b.rb.GetCardinality())
	for p := range b.All() {
		out = append(out, p)
	}
	return out
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{
		rb: b.rb.Clone(),
	}
}

// Roaring returns the underlying roaring bitmap.
func (b *Bitmap) Roaring() *roaring.Bitmap {
	return b.rb
}
