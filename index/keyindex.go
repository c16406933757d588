package index

import "slices"

// Cardinality defines how many positions a key may hold.
type Cardinality uint8

const (
	// Multi allows any number of positions per key.
	Multi Cardinality = iota
	// Unique allows at most one position per key.
	Unique
)

// String returns a string representation of the Cardinality.
func (c Cardinality) String() string {
	switch c {
	case Multi:
		return "Multi"
	case Unique:
		return "Unique"
	default:
		return "Unknown"
	}
}

// KeyIndex holds the positions of one key.
//
// Positions are kept ascending and duplicate-free; the set algebra relies on
// this ordering. Add and Remove never touch a slice handed out by Positions,
// so an earlier result stays valid while the store keeps changing.
type KeyIndex struct {
	unique bool
	pos    []int
}

// NewKeyIndex creates a KeyIndex holding the initial position.
func NewKeyIndex(c Cardinality, pos int) *KeyIndex {
	return &KeyIndex{
		unique: c == Unique,
		pos:    []int{pos},
	}
}

// Add adds a position.
//
// A Unique KeyIndex that already holds a different position rejects the
// insert with a *NotUniqueKeyError. Adding a position that is already
// present is a no-op.
func (ki *KeyIndex) Add(pos int) error {
	if ki.unique && len(ki.pos) > 0 {
		if ki.pos[0] == pos {
			return nil
		}
		return &NotUniqueKeyError{Position: pos, Existing: ki.pos[0]}
	}

	i, found := slices.BinarySearch(ki.pos, pos)
	if found {
		return nil
	}

	next := make([]int, 0, len(ki.pos)+1)
	next = append(next, ki.pos[:i]...)
	next = append(next, pos)
	ki.pos = append(next, ki.pos[i:]...)
	return nil
}

// Remove removes pos and reports whether the KeyIndex is empty afterwards.
func (ki *KeyIndex) Remove(pos int) bool {
	i, found := slices.BinarySearch(ki.pos, pos)
	if !found {
		return len(ki.pos) == 0
	}

	next := make([]int, 0, len(ki.pos)-1)
	next = append(next, ki.pos[:i]...)
	ki.pos = append(next, ki.pos[i+1:]...)
	return len(ki.pos) == 0
}

// Positions returns the positions in ascending order.
//
// The result is a snapshot: later calls to Add or Remove do not change it.
// It must not be modified.
func (ki *KeyIndex) Positions() Positions {
	if ki == nil {
		return nil
	}
	return Positions(ki.pos)
}

// Len returns the number of positions.
func (ki *KeyIndex) Len() int {
	if ki == nil {
		return 0
	}
	return len(ki.pos)
}

// Cardinality returns the cardinality of the KeyIndex.
func (ki *KeyIndex) Cardinality() Cardinality {
	if ki.unique {
		return Unique
	}
	return Multi
}
