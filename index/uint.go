package index

import "math"

// DefaultMaxKey is the largest key a dense store accepts unless WithMaxKey
// says otherwise.
const DefaultMaxKey = 1<<24 - 1

// maxDenseKey is the largest limit WithMaxKey can set.
const maxDenseKey = math.MaxInt / 2

// Unsigned is the key constraint of UintStore.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// UintStore is a dense store addressed directly by key.
//
// Memory grows with the largest key, so it suits small, densely used key
// spaces such as ids or enum values. Keys above the limit set by WithMaxKey
// (DefaultMaxKey by default) are rejected with ErrKeyOutOfRange.
type UintStore[K Unsigned] struct {
	card   Cardinality
	maxKey int
	keys   []*KeyIndex
	count  int // occupied slots
	min    int // slot of the smallest key, valid if count > 0
	max    int // slot of the largest key, valid if count > 0
}

var (
	_ Store[uint]  = (*UintStore[uint])(nil)
	_ Ranged[uint] = (*UintStore[uint])(nil)
)

// NewUintStore creates a new UintStore.
func NewUintStore[K Unsigned](c Cardinality, optFns ...Option) *UintStore[K] {
	o := applyOptions(optFns)
	return &UintStore[K]{
		card:   c,
		maxKey: o.maxKey,
		keys:   make([]*KeyIndex, 0, min(o.capacity, o.maxKey+1)),
	}
}

func (s *UintStore[K]) slot(key K) (int, bool) {
	k := uint64(key)
	if k > uint64(s.maxKey) {
		return 0, false
	}
	return int(k), true
}

func (s *UintStore[K]) entry(key K) *KeyIndex {
	i, ok := s.slot(key)
	if !ok || i >= len(s.keys) {
		return nil
	}
	return s.keys[i]
}

// Contains reports whether key has at least one position.
func (s *UintStore[K]) Contains(key K) bool {
	return s.entry(key) != nil
}

// Get returns the positions of key.
func (s *UintStore[K]) Get(key K) Positions {
	return s.entry(key).Positions()
}

// KeyIndex returns the entry of key, if present.
func (s *UintStore[K]) KeyIndex(key K) (*KeyIndex, bool) {
	ki := s.entry(key)
	return ki, ki != nil
}

// Insert adds pos to key.
func (s *UintStore[K]) Insert(key K, pos int) error {
	return withKey(s.insert(key, pos), key)
}

// insert is Insert without the key attached to a uniqueness error.
func (s *UintStore[K]) insert(key K, pos int) error {
	i, ok := s.slot(key)
	if !ok {
		return ErrKeyOutOfRange
	}

	if i >= len(s.keys) {
		s.grow(min(max(2*i, 2), s.maxKey+1))
	}

	if ki := s.keys[i]; ki != nil {
		return ki.Add(pos)
	}

	s.keys[i] = NewKeyIndex(s.card, pos)
	if s.count == 0 {
		s.min, s.max = i, i
	} else {
		s.min = min(s.min, i)
		s.max = max(s.max, i)
	}
	s.count++

	return nil
}

func (s *UintStore[K]) grow(n int) {
	if n <= cap(s.keys) {
		s.keys = s.keys[:n]
		return
	}
	keys := make([]*KeyIndex, n)
	copy(keys, s.keys)
	s.keys = keys
}

// Delete removes pos from key.
func (s *UintStore[K]) Delete(key K, pos int) {
	i, ok := s.slot(key)
	if !ok || i >= len(s.keys) || s.keys[i] == nil {
		return
	}

	if !s.keys[i].Remove(pos) {
		return
	}

	s.keys[i] = nil
	s.count--

	switch {
	case s.count == 0:
		s.min, s.max = 0, 0
	case i == s.min:
		for s.keys[s.min] == nil {
			s.min++
		}
	case i == s.max:
		for s.keys[s.max] == nil {
			s.max--
		}
	}
}

// Update moves pos from oldKey to newKey.
func (s *UintStore[K]) Update(oldKey K, pos int, newKey K) error {
	return update[K](s, oldKey, pos, newKey)
}

// Len returns the number of distinct keys.
func (s *UintStore[K]) Len() int { return s.count }

// MinKey returns the smallest key.
func (s *UintStore[K]) MinKey() (K, bool) {
	return K(s.min), s.count > 0
}

// MaxKey returns the largest key.
func (s *UintStore[K]) MaxKey() (K, bool) {
	return K(s.max), s.count > 0
}

// MinKeyIndex returns the slot of the smallest key.
func (s *UintStore[K]) MinKeyIndex() (int, bool) {
	return s.min, s.count > 0
}

// MaxKeyIndex returns the slot of the largest key.
func (s *UintStore[K]) MaxKeyIndex() (int, bool) {
	return s.max, s.count > 0
}
