package list

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports an absent value or a nil source.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange reports an index outside the bounds of the list.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNotFound reports that no element equals the requested value.
	ErrNotFound = errors.New("element not found")
	// ErrCorrupted reports that the chain and the cached length disagree.
	ErrCorrupted = errors.New("list corrupted")
)

var errAbsentValue = fmt.Errorf("value is absent: %w", ErrInvalidArgument)

func outOfRange(op string, index, length int) error {
	return fmt.Errorf("list.%s: index %d, length %d: %w", op, index, length, ErrIndexOutOfRange)
}
