package list

import "golang.org/x/exp/constraints"

// Comparator returns a negative number when a orders before b, zero when
// they are equal and a positive number otherwise.
type Comparator[T any] func(a, b T) int

func Ascending[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func Descending[T constraints.Ordered](a, b T) int {
	return Ascending(b, a)
}

// Reverse flips the order defined by cmp.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return cmp(b, a)
	}
}
