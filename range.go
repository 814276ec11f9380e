package boundix

import "fmt"

func NewRange[T any](lower, upper T) Range[T] {
	return Range[T]{
		Lower: lower,
		Upper: upper,
	}
}

// Range is a closed interval [Lower, Upper]. The ordering of T is not a
// property of the range but of the store holding it, so T is unconstrained
// here.
type Range[T any] struct {
	Lower T
	Upper T
}

func (r Range[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.Lower, r.Upper)
}
