package index

import "cmp"

// MapStore is a hash-based store for arbitrary comparable keys.
type MapStore[K comparable] struct {
	card Cardinality
	keys map[K]*KeyIndex

	// compare enables MinKey and MaxKey when set.
	compare  func(a, b K) int
	min, max K
}

var _ Store[string] = (*MapStore[string])(nil)

// NewMapStore creates a new MapStore.
func NewMapStore[K comparable](c Cardinality, optFns ...Option) *MapStore[K] {
	o := applyOptions(optFns)
	return &MapStore[K]{
		card: c,
		keys: make(map[K]*KeyIndex, o.capacity),
	}
}

// NewOrderedMapStore creates a MapStore that tracks its smallest and largest
// key.
func NewOrderedMapStore[K cmp.Ordered](c Cardinality, optFns ...Option) *MapStore[K] {
	s := NewMapStore[K](c, optFns...)
	s.compare = cmp.Compare[K]
	return s
}

// Contains reports whether key has at least one position.
func (s *MapStore[K]) Contains(key K) bool {
	_, ok := s.keys[key]
	return ok
}

// Get returns the positions of key.
func (s *MapStore[K]) Get(key K) Positions {
	return s.keys[key].Positions()
}

// KeyIndex returns the entry of key, if present.
func (s *MapStore[K]) KeyIndex(key K) (*KeyIndex, bool) {
	ki, ok := s.keys[key]
	return ki, ok
}

// Insert adds pos to key.
func (s *MapStore[K]) Insert(key K, pos int) error {
	if ki, ok := s.keys[key]; ok {
		return withKey(ki.Add(pos), key)
	}

	s.keys[key] = NewKeyIndex(s.card, pos)

	if s.compare != nil {
		if len(s.keys) == 1 {
			s.min, s.max = key, key
		} else {
			if s.compare(key, s.min) < 0 {
				s.min = key
			}
			if s.compare(key, s.max) > 0 {
				s.max = key
			}
		}
	}

	return nil
}

// Delete removes pos from key.
func (s *MapStore[K]) Delete(key K, pos int) {
	ki, ok := s.keys[key]
	if !ok || !ki.Remove(pos) {
		return
	}

	delete(s.keys, key)

	if s.compare != nil && (key == s.min || key == s.max) {
		s.rescan()
	}
}

func (s *MapStore[K]) rescan() {
	var zero K
	s.min, s.max = zero, zero

	first := true
	for k := range s.keys {
		if first {
			s.min, s.max = k, k
			first = false
			continue
		}
		if s.compare(k, s.min) < 0 {
			s.min = k
		}
		if s.compare(k, s.max) > 0 {
			s.max = k
		}
	}
}

// Update moves pos from oldKey to newKey.
func (s *MapStore[K]) Update(oldKey K, pos int, newKey K) error {
	return update[K](s, oldKey, pos, newKey)
}

// Len returns the number of distinct keys.
func (s *MapStore[K]) Len() int { return len(s.keys) }

// Ordered reports whether the store tracks its smallest and largest key.
func (s *MapStore[K]) Ordered() bool { return s.compare != nil }

// MinKey returns the smallest key. It always fails for stores created with
// NewMapStore.
func (s *MapStore[K]) MinKey() (K, bool) {
	return s.min, s.compare != nil && len(s.keys) > 0
}

// MaxKey returns the largest key. It always fails for stores created with
// NewMapStore.
func (s *MapStore[K]) MaxKey() (K, bool) {
	return s.max, s.compare != nil && len(s.keys) > 0
}
