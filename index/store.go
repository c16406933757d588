package index

// Filterable is the read contract every store fulfils.
type Filterable[K any] interface {
	// Contains reports whether key has at least one position.
	Contains(key K) bool
	// Get returns the positions of key. A missing key yields no positions.
	Get(key K) Positions
}

// Viewable is a Filterable that exposes its KeyIndex entries.
type Viewable[K any] interface {
	Filterable[K]
	// KeyIndex returns the entry of key, if present.
	KeyIndex(key K) (*KeyIndex, bool)
}

// Store maps keys of one field to positions.
type Store[K any] interface {
	Viewable[K]
	// Insert adds pos to key.
	Insert(key K, pos int) error
	// Delete removes pos from key. A key without positions is dropped.
	Delete(key K, pos int)
	// Update moves pos from oldKey to newKey. On failure pos stays at oldKey.
	Update(oldKey K, pos int, newKey K) error
	// Len returns the number of distinct keys.
	Len() int
}

// Ranged is implemented by stores that track their smallest and largest key.
type Ranged[K any] interface {
	MinKey() (K, bool)
	MaxKey() (K, bool)
}

// Option configures a store.
type Option func(*options)

type options struct {
	capacity int
	maxKey   int
}

func applyOptions(optFns []Option) options {
	o := options{maxKey: DefaultMaxKey}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.capacity < 0 {
		o.capacity = 0
	}
	if o.maxKey < 0 {
		o.maxKey = DefaultMaxKey
	}
	o.maxKey = min(o.maxKey, maxDenseKey)
	return o
}

// WithCapacity preallocates room for n keys.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithMaxKey sets the largest key a dense store accepts. Larger keys are
// rejected with ErrKeyOutOfRange. For an IntStore the limit applies to the
// magnitude of negative keys as well.
//
// A dense store allocates one slot per key up to the largest key in use, so
// the limit bounds its memory. Map stores ignore it.
func WithMaxKey(n int) Option {
	return func(o *options) {
		o.maxKey = n
	}
}

// GetMany returns the union of the positions of keys.
func GetMany[K any](f Filterable[K], keys ...K) Positions {
	var out Positions
	for _, key := range keys {
		out = Union(out, f.Get(key))
	}
	return out
}

// FromSlice inserts keys[i] at position i.
func FromSlice[K any](s Store[K], keys []K) error {
	for pos, key := range keys {
		if err := s.Insert(key, pos); err != nil {
			return err
		}
	}
	return nil
}

// FromMap inserts every key at its position.
func FromMap[K any](s Store[K], m map[int]K) error {
	for pos, key := range m {
		if err := s.Insert(key, pos); err != nil {
			return err
		}
	}
	return nil
}

// update is the shared Delete-then-Insert of Store.Update.
func update[K any](s Store[K], oldKey K, pos int, newKey K) error {
	s.Delete(oldKey, pos)
	if err := s.Insert(newKey, pos); err != nil {
		// pos was present at oldKey, so re-adding it cannot conflict.
		_ = s.Insert(oldKey, pos)
		return err
	}
	return nil
}
