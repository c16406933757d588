package index

import (
	"errors"
	"fmt"
)

var (
	// ErrNotUniqueKey is returned when a second position is inserted for a key
	// of a Unique store.
	ErrNotUniqueKey = errors.New("index key is not unique")

	// ErrKeyOutOfRange is returned when a dense store cannot address a key.
	ErrKeyOutOfRange = errors.New("index key out of range")
)

// NotUniqueKeyError indicates a uniqueness violation.
//
// It matches ErrNotUniqueKey via errors.Is.
type NotUniqueKeyError struct {
	Key      any // Key, if known
	Position int // Rejected position
	Existing int // Position already holding the key
}

func (e *NotUniqueKeyError) Error() string {
	if e.Key == nil {
		return fmt.Sprintf("index key is not unique: cannot add position %d, already held by %d", e.Position, e.Existing)
	}
	return fmt.Sprintf("index key %v is not unique: cannot add position %d, already held by %d", e.Key, e.Position, e.Existing)
}

func (e *NotUniqueKeyError) Is(target error) bool { return target == ErrNotUniqueKey }

// withKey returns a copy of err with the key attached, if err is a
// NotUniqueKeyError.
func withKey(err error, key any) error {
	var nu *NotUniqueKeyError
	if errors.As(err, &nu) && nu.Key == nil {
		return &NotUniqueKeyError{Key: key, Position: nu.Position, Existing: nu.Existing}
	}
	return err
}
