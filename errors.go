package boundix

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRange = errors.New("invalid range")
	ErrOverlap      = errors.New("range overlap")
	ErrNotFound     = errors.New("not found")
	ErrCorrupted    = errors.New("store corrupted")
)

// OverlapError is returned by Insert when the new range intersects an
// existing entry in more than a single shared endpoint. It wraps ErrOverlap.
type OverlapError[T any] struct {
	Range    Range[T]
	Conflict Range[T]
}

func (e OverlapError[T]) Error() string {
	return fmt.Sprintf("range %s overlaps existing range %s", e.Range, e.Conflict)
}

func (e OverlapError[T]) Unwrap() error {
	return ErrOverlap
}
