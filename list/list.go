// Package list implements a growable, index-addressable container with an
// in-place quicksort.
//
// A List is not safe for concurrent use. Callers sharing one between
// goroutines must guard it themselves.
package list

import "golang.org/x/exp/slices"

// DefaultCapacity is the capacity of a list created with New.
const DefaultCapacity = 10

type List[T any] struct {
	data []T // len(data) is the capacity
	size int
}

func New[T any]() *List[T] {
	return &List[T]{data: make([]T, DefaultCapacity)}
}

// FromSlice wraps buf without copying it. The list owns buf afterwards and
// starts out full: Len and Cap both equal len(buf).
func FromSlice[T any](buf []T) *List[T] {
	return &List[T]{data: buf[:len(buf):len(buf)], size: len(buf)}
}

func (s *List[T]) Len() int {
	return s.size
}

func (s *List[T]) Cap() int {
	return len(s.data)
}

// Values returns a copy of the elements in order.
func (s *List[T]) Values() []T {
	return slices.Clone(s.data[:s.size])
}

func (s *List[T]) Add(v T) {
	if s.size == len(s.data) {
		s.grow()
	}
	s.data[s.size] = v
	s.size++
}

// Insert places v at index i, shifting the elements at [i, Len) one slot
// to the right. i == Len appends.
func (s *List[T]) Insert(i int, v T) error {
	if i < 0 || i > s.size {
		return indexError("insert", i, s.size)
	}
	if s.size == len(s.data) {
		s.grow()
	}
	copy(s.data[i+1:s.size+1], s.data[i:s.size])
	s.data[i] = v
	s.size++
	return nil
}

func (s *List[T]) Get(i int) (T, error) {
	if i < 0 || i >= s.size {
		var zero T
		return zero, indexError("get", i, s.size)
	}
	return s.data[i], nil
}

// Remove deletes the element at index i and closes the gap.
func (s *List[T]) Remove(i int) error {
	if i < 0 || i >= s.size {
		return indexError("remove", i, s.size)
	}
	copy(s.data[i:], s.data[i+1:s.size])
	s.size--

	var zero T
	s.data[s.size] = zero
	return nil
}

func (s *List[T]) Replace(i int, v T) error {
	if i < 0 || i >= s.size {
		return indexError("replace", i, s.size)
	}
	s.data[i] = v
	return nil
}

// Clear zeroes every slot and resets the length. Capacity is kept.
func (s *List[T]) Clear() {
	clear(s.data)
	s.size = 0
}

// Filter removes every element for which drop returns true, keeping the
// order of the rest, and returns how many were removed.
func (s *List[T]) Filter(drop func(v T) bool) int {
	n := 0
	for i := 0; i < s.size; i++ {
		if drop(s.data[i]) {
			continue
		}
		s.data[n] = s.data[i]
		n++
	}
	removed := s.size - n
	clear(s.data[n:s.size])
	s.size = n
	return removed
}

func (s *List[T]) grow() {
	n := len(s.data) * 2
	if n == 0 {
		n = DefaultCapacity
	}
	data := make([]T, n)
	copy(data, s.data[:s.size])
	s.data = data
}
