package ffwd

import "github.com/hupe1980/ffwd/index"

// List is a collection of items whose attached fields are kept in sync with
// every mutation.
//
// Positions are dense: Remove moves the last item into the freed slot, so a
// position is only stable until the next removal.
type List[T any] struct {
	*core[T]
}

var _ Indexed[int] = (*List[int])(nil)

// NewList creates a new, empty List.
func NewList[T any](optFns ...Option) *List[T] {
	return &List[T]{
		core: newCore[T](false, optFns),
	}
}

// Remove removes the item at pos and returns it.
//
// The last item is moved into pos and every field is repaired: the keys of
// the removed item are deleted, the moved item's keys are deleted at its old
// position and inserted at pos.
func (l *List[T]) Remove(pos int) (T, bool) {
	return l.swapRemove(pos)
}

// Positions returns every position of the list.
func (l *List[T]) Positions() index.Positions {
	ps := make(index.Positions, len(l.items))
	for i := range ps {
		ps[i] = i
	}
	return ps
}
