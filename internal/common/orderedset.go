package common

// OrderedSet is a set that remembers insertion order.
// The zero value is ready to use.
type OrderedSet[T comparable] struct {
	index  map[T]struct{}
	values []T
}

// Add inserts v and reports whether it was not already present.
func (s *OrderedSet[T]) Add(v T) bool {
	if s.index == nil {
		s.index = make(map[T]struct{})
	}

	if _, ok := s.index[v]; ok {
		return false
	}

	s.index[v] = struct{}{}
	s.values = append(s.values, v)

	return true
}

// Len returns the number of distinct values.
func (s *OrderedSet[T]) Len() int {
	return len(s.values)
}

// Values returns the values in first-insertion order.
// The returned slice must not be modified.
func (s *OrderedSet[T]) Values() []T {
	return s.values
}
