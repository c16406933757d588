package ffwd

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/hupe1980/ffwd/index"
)

// Field is a named store attached to a list. It keeps the store in sync with
// every mutation of the list.
type Field[T any, K comparable] struct {
	name  string
	store index.Store[K]
	key   func(*T) K
	c     *core[T]

	old K // key captured by prepare
}

// Attach attaches store to l under name. key projects an item onto its key
// and must return the same key for an unchanged item.
//
// Items already in l are indexed immediately; if one of them is rejected by
// the store, nothing is attached.
func Attach[T any, K comparable](l Indexed[T], name string, store index.Store[K], key func(*T) K) (*Field[T, K], error) {
	if store == nil || key == nil {
		return nil, ErrNilStore
	}

	f := &Field[T, K]{
		name:  name,
		store: store,
		key:   key,
		c:     l.base(),
	}

	if err := f.c.attach(f); err != nil {
		return nil, err
	}

	return f, nil
}

// Name returns the name of the field.
func (f *Field[T, K]) Name() string { return f.name }

// Store returns the underlying store.
func (f *Field[T, K]) Store() index.Store[K] { return f.store }

// Retriever returns the read side of the field.
func (f *Field[T, K]) Retriever() Retriever[T, K] {
	return Retriever[T, K]{src: f.store, c: f.c}
}

// Eq starts an expression with the positions of key.
func (f *Field[T, K]) Eq(key K) index.Expr {
	return index.Where(f.store.Get(key))
}

// Contains reports whether any live item has key.
func (f *Field[T, K]) Contains(key K) bool {
	return f.store.Contains(key)
}

// Get returns the items with key.
func (f *Field[T, K]) Get(key K) iter.Seq[T] {
	return f.Retriever().Get(key)
}

// View returns a Retriever limited to keys.
func (f *Field[T, K]) View(keys ...K) Retriever[T, K] {
	return f.Retriever().View(keys...)
}

// RemoveByKey removes every item with key and returns them in removal order.
//
// On a List the first position of key is swap-removed until the key is gone;
// on an AppendOnlyList the items are tombstoned.
func (f *Field[T, K]) RemoveByKey(key K) []T {
	var removed []T

	for {
		positions := f.store.Get(key)
		if len(positions) == 0 {
			break
		}

		item, ok := f.c.remove(positions[0])
		if !ok {
			// The store points at a dead slot; drop the stale entry.
			f.store.Delete(key, positions[0])
			continue
		}
		removed = append(removed, item)
	}

	if len(removed) > 0 {
		f.c.logger.WithField(f.name).WithCount(len(removed)).Debug("removed by key", "key", key)
	}

	return removed
}

func (f *Field[T, K]) fieldName() string { return f.name }

func (f *Field[T, K]) insert(item *T, pos int) error {
	return f.store.Insert(f.key(item), pos)
}

func (f *Field[T, K]) delete(item *T, pos int) {
	f.store.Delete(f.key(item), pos)
}

func (f *Field[T, K]) prepare(item *T) {
	f.old = f.key(item)
}

func (f *Field[T, K]) commit(item *T, pos int) error {
	if k := f.key(item); k != f.old {
		return f.store.Update(f.old, pos, k)
	}
	return nil
}

func (f *Field[T, K]) revert(item *T, pos int) {
	if k := f.key(item); k != f.old {
		if err := f.store.Update(k, pos, f.old); err != nil {
			panic(fmt.Sprintf("ffwd: field %q: restoring key of %d: %v", f.name, pos, err))
		}
	}
}

func (f *Field[T, K]) lookup(key any) (index.Positions, error) {
	k, ok := key.(K)
	if !ok {
		return nil, &InvalidKeyTypeError{
			Field:    f.name,
			Expected: reflect.TypeFor[K]().String(),
			Got:      fmt.Sprintf("%T", key),
		}
	}
	return f.store.Get(k), nil
}
