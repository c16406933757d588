package ffwd

import (
	"iter"

	"github.com/hupe1980/ffwd/index"
)

// Retriever is the read side of a field, optionally restricted to a View.
type Retriever[T any, K comparable] struct {
	src index.Viewable[K]
	c   *core[T]
}

// Contains reports whether key has at least one item.
func (r Retriever[T, K]) Contains(key K) bool {
	return r.src.Contains(key)
}

// Positions returns the positions of key.
func (r Retriever[T, K]) Positions(key K) index.Positions {
	return r.src.Get(key)
}

// Eq starts an expression with the positions of key.
func (r Retriever[T, K]) Eq(key K) index.Expr {
	return index.Where(r.src.Get(key))
}

// Get returns the items with key.
func (r Retriever[T, K]) Get(key K) iter.Seq[T] {
	return r.Resolve(r.src.Get(key))
}

// GetMany returns the items matching any of keys, in position order.
func (r Retriever[T, K]) GetMany(keys ...K) iter.Seq[T] {
	return r.Resolve(index.GetMany[K](r.src, keys...))
}

// Filter evaluates the expression built by fn and returns the matching
// items.
//
//	r.Filter(func(f index.Filter[string]) index.Set {
//		return f.Eq("BMW").Or(f.Eq("Audi"))
//	})
func (r Retriever[T, K]) Filter(fn func(index.Filter[K]) index.Set) iter.Seq[T] {
	return r.Resolve(fn(index.NewFilter[K](r.src)))
}

// Resolve returns the items at the positions of set.
func (r Retriever[T, K]) Resolve(set index.Set) iter.Seq[T] {
	return r.c.Find(set)
}

// View returns a Retriever limited to keys. Views can be narrowed further.
func (r Retriever[T, K]) View(keys ...K) Retriever[T, K] {
	return Retriever[T, K]{
		src: index.NewView(r.src, keys...),
		c:   r.c,
	}
}

// MinKey returns the smallest key, if the underlying store tracks it.
func (r Retriever[T, K]) MinKey() (K, bool) {
	if rg, ok := r.src.(index.Ranged[K]); ok {
		return rg.MinKey()
	}
	var zero K
	return zero, false
}

// MaxKey returns the largest key, if the underlying store tracks it.
func (r Retriever[T, K]) MaxKey() (K, bool) {
	if rg, ok := r.src.(index.Ranged[K]); ok {
		return rg.MaxKey()
	}
	var zero K
	return zero, false
}
