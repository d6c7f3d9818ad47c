package list

// Sort reorders the list in place by cmp using quicksort with the last
// element of each range as pivot. The sort is not stable; sorted and
// reverse-sorted input take quadratic time.
func (s *List[T]) Sort(cmp Comparator[T]) {
	if s.size <= 1 {
		return
	}
	s.quickSort(cmp, 0, s.size-1)
}

// IsSorted reports whether every adjacent pair a, b satisfies cmp(a, b) <= 0.
func (s *List[T]) IsSorted(cmp Comparator[T]) bool {
	for i := 1; i < s.size; i++ {
		if cmp(s.data[i-1], s.data[i]) > 0 {
			return false
		}
	}
	return true
}

func (s *List[T]) quickSort(cmp Comparator[T], left, right int) {
	if left >= right {
		return
	}
	p := s.partition(cmp, left, right)
	s.quickSort(cmp, left, p-1)
	s.quickSort(cmp, p+1, right)
}

// partition moves every element <= pivot in front of it and returns the
// pivot's final index. left and right are always within [0, size).
func (s *List[T]) partition(cmp Comparator[T], left, right int) int {
	pivot := s.data[right]
	i := left - 1
	for j := left; j < right; j++ {
		if cmp(s.data[j], pivot) <= 0 {
			i++
			s.swap(i, j)
		}
	}
	s.swap(i+1, right)
	return i + 1
}

func (s *List[T]) swap(i, j int) {
	s.data[i], s.data[j] = s.data[j], s.data[i]
}
