package list

import (
	"errors"
	"testing"

	"golang.org/x/exp/slices"
)

func filled(n int) *List[int] {
	l := New[int]()
	for i := 0; i < n; i++ {
		l.Add(i)
	}
	return l
}

func TestNew(t *testing.T) {
	l := New[string]()
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
	if l.Cap() != DefaultCapacity {
		t.Errorf("Cap() = %d, want %d", l.Cap(), DefaultCapacity)
	}
}

func TestFromSlice(t *testing.T) {
	buf := []int{4, 2, 7}
	l := FromSlice(buf)
	if l.Len() != 3 || l.Cap() != 3 {
		t.Fatalf("Len() = %d, Cap() = %d, want 3, 3", l.Len(), l.Cap())
	}

	l.Add(1)
	if l.Cap() != 6 {
		t.Errorf("Cap() after growth = %d, want 6", l.Cap())
	}
	if got := l.Values(); !slices.Equal(got, []int{4, 2, 7, 1}) {
		t.Errorf("Values() = %v", got)
	}
}

func TestFromSlice_Empty(t *testing.T) {
	l := FromSlice([]int{})
	l.Add(1)
	if l.Len() != 1 || l.Cap() != DefaultCapacity {
		t.Errorf("Len() = %d, Cap() = %d, want 1, %d", l.Len(), l.Cap(), DefaultCapacity)
	}
}

func TestAdd(t *testing.T) {
	l := New[int]()
	l.Add(1)
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}

func TestGet(t *testing.T) {
	l := New[int]()
	for i := 0; i < 10; i++ {
		l.Add(i)
		v, err := l.Get(i)
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
		if v != i {
			t.Errorf("Get(%d) = %d, want %d", i, v, i)
		}
	}
}

func TestAdd_Growth(t *testing.T) {
	l := filled(1000)
	if l.Len() != 1000 {
		t.Fatalf("Len() = %d, want 1000", l.Len())
	}
	if l.Cap() != 1280 {
		t.Errorf("Cap() = %d, want 1280", l.Cap())
	}
	for i := 0; i < l.Len(); i++ {
		if v, _ := l.Get(i); v != i {
			t.Fatalf("Get(%d) = %d after growth", i, v)
		}
	}
}

func TestInsert(t *testing.T) {
	l := New[int]()
	l.Add(5)
	if err := l.Insert(0, 1); err != nil {
		t.Fatal(err)
	}
	if got := l.Values(); !slices.Equal(got, []int{1, 5}) {
		t.Errorf("Values() = %v, want [1 5]", got)
	}
}

func TestInsert_AtEnd(t *testing.T) {
	l := New[int]()
	for i := 0; i < 10; i++ {
		if err := l.Insert(i, i); err != nil {
			t.Fatalf("Insert(%d): %v", i, err)
		}
	}
	if l.Len() != 10 {
		t.Errorf("Len() = %d, want 10", l.Len())
	}
}

func TestInsert_ShiftsRight(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []int
	}{
		{"front", 0, []int{9, 0, 1, 2}},
		{"middle", 2, []int{0, 1, 9, 2}},
		{"end", 3, []int{0, 1, 2, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := filled(3)
			if err := l.Insert(tt.index, 9); err != nil {
				t.Fatal(err)
			}
			if got := l.Values(); !slices.Equal(got, tt.want) {
				t.Errorf("Values() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInsert_FullList(t *testing.T) {
	l := filled(DefaultCapacity)
	if err := l.Insert(4, 100); err != nil {
		t.Fatal(err)
	}
	if l.Cap() != 2*DefaultCapacity {
		t.Errorf("Cap() = %d, want %d", l.Cap(), 2*DefaultCapacity)
	}
	want := []int{0, 1, 2, 3, 100, 4, 5, 6, 7, 8, 9}
	if got := l.Values(); !slices.Equal(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
}

func TestRemove(t *testing.T) {
	l := filled(10)
	for i := 0; i < 3; i++ {
		if err := l.Remove(i); err != nil {
			t.Fatalf("Remove(%d): %v", i, err)
		}
	}
	if l.Len() != 7 {
		t.Errorf("Len() = %d, want 7", l.Len())
	}
	want := []int{1, 3, 5, 6, 7, 8, 9}
	if got := l.Values(); !slices.Equal(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
}

func TestRemove_Front(t *testing.T) {
	l := filled(10)
	for i := 0; i < 3; i++ {
		if err := l.Remove(0); err != nil {
			t.Fatal(err)
		}
	}
	want := []int{3, 4, 5, 6, 7, 8, 9}
	if got := l.Values(); !slices.Equal(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
}

func TestRemove_ClearsTrailingSlot(t *testing.T) {
	l := FromSlice([]*int{new(int), new(int)})
	if err := l.Remove(0); err != nil {
		t.Fatal(err)
	}
	if l.data[1] != nil {
		t.Error("Remove left a reference in the unused slot")
	}
}

func TestClear(t *testing.T) {
	l := filled(15)
	c := l.Cap()
	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
	if l.Cap() != c {
		t.Errorf("Cap() = %d, want %d", l.Cap(), c)
	}
	if _, err := l.Get(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Get(0) after Clear: err = %v", err)
	}
	for i, v := range l.data {
		if v != 0 {
			t.Fatalf("slot %d = %d after Clear", i, v)
		}
	}
}

func TestReplace(t *testing.T) {
	l := New[int]()
	for i := 0; i < 10; i++ {
		l.Add(i)
		if err := l.Replace(i, 2); err != nil {
			t.Fatal(err)
		}
		if v, _ := l.Get(i); v != 2 {
			t.Errorf("Get(%d) = %d, want 2", i, v)
		}
	}
	if l.Len() != 10 {
		t.Errorf("Len() = %d, want 10", l.Len())
	}
}

func TestReplace_OnlyTouchesIndex(t *testing.T) {
	l := filled(5)
	if err := l.Replace(2, 42); err != nil {
		t.Fatal(err)
	}
	if got := l.Values(); !slices.Equal(got, []int{0, 1, 42, 3, 4}) {
		t.Errorf("Values() = %v", got)
	}
}

func TestValues_IsCopy(t *testing.T) {
	l := filled(3)
	v := l.Values()
	v[0] = 99
	if got, _ := l.Get(0); got != 0 {
		t.Error("Values() aliases the list storage")
	}
}

func TestFilter(t *testing.T) {
	l := filled(10)
	removed := l.Filter(func(v int) bool { return v%2 == 1 })
	if removed != 5 {
		t.Errorf("Filter removed %d, want 5", removed)
	}
	if got := l.Values(); !slices.Equal(got, []int{0, 2, 4, 6, 8}) {
		t.Errorf("Values() = %v", got)
	}
}

func TestFilter_ClearsTrailingSlots(t *testing.T) {
	a, b, c := new(int), new(int), new(int)
	l := FromSlice([]*int{a, b, c})
	if removed := l.Filter(func(v *int) bool { return v != b }); removed != 2 {
		t.Fatalf("Filter removed %d, want 2", removed)
	}
	if l.Len() != 1 || l.data[0] != b {
		t.Fatalf("Values() = %v, want [%p]", l.Values(), b)
	}
	if l.data[1] != nil || l.data[2] != nil {
		t.Error("Filter left references in unused slots")
	}
}

func TestFilter_None(t *testing.T) {
	l := filled(4)
	if removed := l.Filter(func(int) bool { return false }); removed != 0 {
		t.Errorf("Filter removed %d, want 0", removed)
	}
	if l.Len() != 4 {
		t.Errorf("Len() = %d, want 4", l.Len())
	}
}

func TestIndexOutOfRange(t *testing.T) {
	l := filled(3)

	tests := []struct {
		name string
		call func() error
	}{
		{"get negative", func() error { _, err := l.Get(-1); return err }},
		{"get len", func() error { _, err := l.Get(3); return err }},
		{"replace negative", func() error { return l.Replace(-1, 0) }},
		{"replace len", func() error { return l.Replace(3, 0) }},
		{"remove negative", func() error { return l.Remove(-1) }},
		{"remove len", func() error { return l.Remove(3) }},
		{"insert negative", func() error { return l.Insert(-1, 0) }},
		{"insert past len", func() error { return l.Insert(4, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Fatalf("err = %v, want ErrIndexOutOfRange", err)
			}
			var ie *IndexError
			if !errors.As(err, &ie) || ie.Size != 3 {
				t.Errorf("err = %#v, want *IndexError with Size 3", err)
			}
			if got := l.Values(); !slices.Equal(got, []int{0, 1, 2}) {
				t.Errorf("list modified by failed call: %v", got)
			}
		})
	}
}

func TestIndexOutOfRange_Empty(t *testing.T) {
	l := New[int]()
	if _, err := l.Get(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Get(0) err = %v", err)
	}
	if err := l.Remove(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Remove(0) err = %v", err)
	}
	if err := l.Replace(0, 10); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Replace(0) err = %v", err)
	}
}

func TestIndexError(t *testing.T) {
	err := &IndexError{Op: "get", Index: 5, Size: 2}
	expected := "list: get: index 5 out of range [0:2]"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}
