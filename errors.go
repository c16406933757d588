package ffwd

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPosition is returned when a position is out of range or
	// deleted.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrDuplicateField is returned when a field name is attached twice.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrUnknownField is returned when a query names a field that is not
	// attached.
	ErrUnknownField = errors.New("unknown field")

	// ErrNilStore is returned by Attach when the store or the key function
	// is nil.
	ErrNilStore = errors.New("nil store or key function")
)

// FieldError wraps a store failure with the name of the field it occurred on.
//
// The original store error can be accessed via errors.Unwrap.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// InvalidKeyTypeError indicates a query key whose type does not match the
// key type of the field.
type InvalidKeyTypeError struct {
	Field    string
	Expected string
	Got      string
}

func (e *InvalidKeyTypeError) Error() string {
	return fmt.Sprintf("field %q: invalid key type: expected %s, got %s", e.Field, e.Expected, e.Got)
}

func fieldError(name string, err error) error {
	if err == nil {
		return nil
	}
	return &FieldError{Field: name, Err: err}
}
