package index

// Signed is the key constraint of IntStore.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// IntStore is a dense store for signed keys.
//
// Non-negative keys are stored by value, negative keys by magnitude in a
// second dense store, so -1 and 1 both occupy slot 1 of their half.
type IntStore[K Signed] struct {
	pos *UintStore[uint64]
	neg *UintStore[uint64]
}

var (
	_ Store[int]  = (*IntStore[int])(nil)
	_ Ranged[int] = (*IntStore[int])(nil)
)

// NewIntStore creates a new IntStore.
func NewIntStore[K Signed](c Cardinality, optFns ...Option) *IntStore[K] {
	return &IntStore[K]{
		pos: NewUintStore[uint64](c, optFns...),
		neg: NewUintStore[uint64](c, optFns...),
	}
}

func (s *IntStore[K]) split(key K) (*UintStore[uint64], uint64) {
	v := int64(key)
	if v >= 0 {
		return s.pos, uint64(v)
	}
	return s.neg, uint64(-(v + 1)) + 1
}

func fromMagnitude[K Signed](m uint64) K {
	return K(-int64(m-1) - 1)
}

// Contains reports whether key has at least one position.
func (s *IntStore[K]) Contains(key K) bool {
	half, k := s.split(key)
	return half.Contains(k)
}

// Get returns the positions of key.
func (s *IntStore[K]) Get(key K) Positions {
	half, k := s.split(key)
	return half.Get(k)
}

// KeyIndex returns the entry of key, if present.
func (s *IntStore[K]) KeyIndex(key K) (*KeyIndex, bool) {
	half, k := s.split(key)
	return half.KeyIndex(k)
}

// Insert adds pos to key.
func (s *IntStore[K]) Insert(key K, pos int) error {
	half, k := s.split(key)
	return withKey(half.insert(k, pos), key)
}

// Delete removes pos from key.
func (s *IntStore[K]) Delete(key K, pos int) {
	half, k := s.split(key)
	half.Delete(k, pos)
}

// Update moves pos from oldKey to newKey.
func (s *IntStore[K]) Update(oldKey K, pos int, newKey K) error {
	return update[K](s, oldKey, pos, newKey)
}

// Len returns the number of distinct keys.
func (s *IntStore[K]) Len() int {
	return s.pos.Len() + s.neg.Len()
}

// MinKey returns the smallest key.
func (s *IntStore[K]) MinKey() (K, bool) {
	if m, ok := s.neg.MaxKey(); ok {
		return fromMagnitude[K](m), true
	}
	m, ok := s.pos.MinKey()
	return K(m), ok
}

// MaxKey returns the largest key.
func (s *IntStore[K]) MaxKey() (K, bool) {
	if m, ok := s.pos.MaxKey(); ok {
		return K(m), true
	}
	if m, ok := s.neg.MinKey(); ok {
		return fromMagnitude[K](m), true
	}
	return 0, false
}
