// Package boundix provides a lookup store keyed by ranges instead of
// discrete keys. A value is inserted with a closed [lower, upper] range and
// queried back with a single point. Two stored ranges may share at most a
// single point, and only where the upper bound of one meets the lower bound
// of the other; inserts violating that are rejected.
package boundix

import (
	"fmt"
	"iter"
	"slices"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// New creates a store for naturally ordered bounds.
func New[T constraints.Ordered, V any]() *Store[T, V] {
	return NewFunc[T, V](func(t1, t2 T) int {
		switch {
		case t1 < t2:
			return -1
		case t1 > t2:
			return 1
		}
		return 0
	})
}

// NewFunc creates a store whose bounds are ordered by cmp. cmp must define a
// total order and return a value below, equal to or above zero as t1 is less
// than, equal to or greater than t2.
func NewFunc[T any, V any](cmp func(t1, t2 T) int) *Store[T, V] {
	return &Store[T, V]{
		cmp: cmp,
	}
}

// Entry is a stored range paired with its value.
type Entry[T any, V any] struct {
	Range Range[T]
	Value V
}

// Store maps ranges to values. Entries are kept sorted by their lower bound.
// A Store is not safe for concurrent use; when readers and writers share
// one, guard it with an external sync.RWMutex.
type Store[T any, V any] struct {
	cmp     func(t1, t2 T) int
	entries []Entry[T, V]
}

func (s *Store[T, V]) Len() int {
	return len(s.entries)
}

// Insert adds value keyed by the closed range [lower, upper]. It fails with
// ErrInvalidRange if lower exceeds upper, and with an OverlapError if the
// range intersects an existing entry in more than a shared endpoint. On
// failure the store is left unchanged.
func (s *Store[T, V]) Insert(lower, upper T, value V) error {
	if s.cmp(lower, upper) > 0 {
		return fmt.Errorf("%w: lower %v exceeds upper %v", ErrInvalidRange, lower, upper)
	}
	r := NewRange(lower, upper)
	idx := sort.Search(len(s.entries), func(i int) bool {
		return s.rangeCmp(s.entries[i].Range, r) >= 0
	})
	// Only ranges adjacent in sort order can collide with r. Walk outward
	// from the insert position until the candidates are strictly clear.
	for i := idx - 1; i >= 0; i-- {
		e := s.entries[i].Range
		if s.cmp(e.Upper, r.Lower) < 0 {
			break
		}
		if s.partialOverlap(r, e) {
			return OverlapError[T]{Range: r, Conflict: e}
		}
	}
	for i := idx; i < len(s.entries); i++ {
		e := s.entries[i].Range
		if s.cmp(e.Lower, r.Upper) > 0 {
			break
		}
		if s.partialOverlap(r, e) {
			return OverlapError[T]{Range: r, Conflict: e}
		}
	}
	s.entries = slices.Insert(s.entries, idx, Entry[T, V]{Range: r, Value: value})
	return nil
}

// Lookup returns the value of the entry whose range contains point. At a
// point shared by two adjacent entries, the entry ending there wins over the
// entry beginning there. It fails with ErrNotFound when no range contains
// point, and with ErrCorrupted when the non-overlap invariant no longer
// holds for point.
func (s *Store[T, V]) Lookup(point T) (V, error) {
	var zero V
	// All candidates lie left of the first entry with Lower > point.
	idx := sort.Search(len(s.entries), func(i int) bool {
		return s.cmp(s.entries[i].Range.Lower, point) > 0
	})
	var covering []int
	for i := idx - 1; i >= 0; i-- {
		if s.cmp(s.entries[i].Range.Upper, point) < 0 {
			break
		}
		covering = append(covering, i)
		if len(covering) > 2 {
			break
		}
	}
	switch len(covering) {
	case 0:
		return zero, fmt.Errorf("%w: no range contains %v", ErrNotFound, point)
	case 1:
		return s.entries[covering[0]].Value, nil
	case 2:
		first := s.entries[covering[1]]
		if s.cmp(first.Range.Upper, point) == 0 {
			return first.Value, nil
		}
		return zero, fmt.Errorf("%w: %v is interior to both %s and %s",
			ErrCorrupted, point, first.Range, s.entries[covering[0]].Range)
	default:
		return zero, fmt.Errorf("%w: more than two ranges contain %v", ErrCorrupted, point)
	}
}

// LookupOr is Lookup with a fallback: it returns def when the lookup fails.
func (s *Store[T, V]) LookupOr(point T, def V) V {
	v, err := s.Lookup(point)
	if err != nil {
		return def
	}
	return v
}

// LookupRange returns the value of the entry whose range contains the whole
// closed range [lower, upper]. A degenerate query (lower equals upper)
// behaves exactly like Lookup, including the shared-endpoint rule.
func (s *Store[T, V]) LookupRange(lower, upper T) (V, error) {
	var zero V
	switch c := s.cmp(lower, upper); {
	case c > 0:
		return zero, fmt.Errorf("%w: lower %v exceeds upper %v", ErrInvalidRange, lower, upper)
	case c == 0:
		return s.Lookup(lower)
	}
	// A non-degenerate range fits in at most one entry.
	idx := sort.Search(len(s.entries), func(i int) bool {
		return s.cmp(s.entries[i].Range.Lower, lower) > 0
	})
	for i := idx - 1; i >= 0; i-- {
		e := s.entries[i]
		if s.cmp(e.Range.Upper, lower) < 0 {
			break
		}
		if s.cmp(upper, e.Range.Upper) <= 0 {
			return e.Value, nil
		}
	}
	return zero, fmt.Errorf("%w: no range contains [%v, %v]", ErrNotFound, lower, upper)
}

// All iterates over the entries in ascending range order. Yielded ranges and
// values are copies; mutating them does not affect the store.
func (s *Store[T, V]) All() iter.Seq2[Range[T], V] {
	return func(yield func(Range[T], V) bool) {
		for _, e := range s.entries {
			if !yield(e.Range, e.Value) {
				return
			}
		}
	}
}

func (s *Store[T, V]) String() string {
	var sb strings.Builder
	for i, e := range s.entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s => %v", e.Range, e.Value)
	}
	return sb.String()
}

// rangeCmp orders ranges by lower bound, then by upper bound, so that a
// degenerate range sorts before a range starting at the same point.
func (s *Store[T, V]) rangeCmp(r1, r2 Range[T]) int {
	if c := s.cmp(r1.Lower, r2.Lower); c != 0 {
		return c
	}
	return s.cmp(r1.Upper, r2.Upper)
}

// partialOverlap reports whether r1 and r2 intersect in more than a single
// point, or in a single point that is not the upper bound of one and the
// lower bound of the other.
func (s *Store[T, V]) partialOverlap(r1, r2 Range[T]) bool {
	lo := r1.Lower
	if s.cmp(r2.Lower, lo) > 0 {
		lo = r2.Lower
	}
	hi := r1.Upper
	if s.cmp(r2.Upper, hi) < 0 {
		hi = r2.Upper
	}
	switch c := s.cmp(lo, hi); {
	case c > 0:
		return false
	case c < 0:
		return true
	}
	return s.cmp(r1.Upper, r2.Lower) != 0 && s.cmp(r2.Upper, r1.Lower) != 0
}
