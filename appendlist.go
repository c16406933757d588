package ffwd

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/ffwd/index"
)

// AppendOnlyList is a collection whose positions never change.
//
// Delete leaves a tombstone instead of moving items, so positions stay valid
// for the lifetime of the list and are never reused.
type AppendOnlyList[T any] struct {
	*core[T]
}

var _ Indexed[int] = (*AppendOnlyList[int])(nil)

// NewAppendOnlyList creates a new, empty AppendOnlyList.
func NewAppendOnlyList[T any](optFns ...Option) *AppendOnlyList[T] {
	return &AppendOnlyList[T]{
		core: newCore[T](true, optFns),
	}
}

// Delete tombstones the item at pos and returns it. Deleting a position twice
// reports false.
func (l *AppendOnlyList[T]) Delete(pos int) (T, bool) {
	return l.tombstone(pos)
}

// IsDeleted reports whether pos was deleted.
func (l *AppendOnlyList[T]) IsDeleted(pos int) bool {
	return l.deleted.Contains(pos)
}

// Deleted returns the deleted positions in ascending order.
func (l *AppendOnlyList[T]) Deleted() index.Positions {
	if l.deleted.IsEmpty() {
		return nil
	}
	return index.PositionsFromBitmap(l.deleted.Roaring())
}

// DeletedBitmap returns a copy of the deleted positions as a roaring bitmap,
// ready to be combined with Positions.Bitmap.
func (l *AppendOnlyList[T]) DeletedBitmap() *roaring.Bitmap {
	return l.deleted.Clone().Roaring()
}

// Count returns the number of live items.
func (l *AppendOnlyList[T]) Count() int {
	return len(l.items) - l.deleted.Cardinality()
}
