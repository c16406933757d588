package index

// View restricts a store to a fixed set of keys.
//
// The entries of the allowed keys are captured when the view is created, so
// positions added to or removed from those keys later are visible through the
// view. Keys that are not allowed, or that were absent at creation, stay
// absent. A View is itself Viewable and can be narrowed further.
type View[K comparable] struct {
	src     Viewable[K]
	entries map[K]*KeyIndex
}

var _ Viewable[string] = (*View[string])(nil)

// NewView creates a View of src limited to keys.
func NewView[K comparable](src Viewable[K], keys ...K) *View[K] {
	v := &View[K]{
		src:     src,
		entries: make(map[K]*KeyIndex, len(keys)),
	}
	for _, key := range keys {
		if ki, ok := src.KeyIndex(key); ok {
			v.entries[key] = ki
		}
	}
	return v
}

func (v *View[K]) entry(key K) *KeyIndex {
	ki, ok := v.entries[key]
	if !ok {
		return nil
	}
	if ki.Len() == 0 {
		// A store drops an entry once it drains and allocates a new one if
		// the key comes back, e.g. while a swap-remove relocates an item.
		if fresh, ok := v.src.KeyIndex(key); ok {
			return fresh
		}
	}
	return ki
}

// Contains reports whether key is allowed and has at least one position.
func (v *View[K]) Contains(key K) bool {
	return v.entry(key).Len() > 0
}

// Get returns the positions of key, or none if key is not part of the view.
func (v *View[K]) Get(key K) Positions {
	return v.entry(key).Positions()
}

// KeyIndex returns the current entry of key.
func (v *View[K]) KeyIndex(key K) (*KeyIndex, bool) {
	ki := v.entry(key)
	if ki.Len() == 0 {
		return nil, false
	}
	return ki, true
}

// Len returns the number of captured keys.
func (v *View[K]) Len() int { return len(v.entries) }
