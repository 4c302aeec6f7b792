package prop

import (
	"iter"
	"slices"
	"testing"

	"github.com/nuralabs/luatable/adt"
)

const numSample = 5

func odds(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range n {
			if !yield(2*i + 1) {
				break
			}
		}
	}
}

type Spec struct {
	Name string
	Test func(t *testing.T)
}

func Append[Abstract interface {
	adt.Sizer
	adt.Emptier
	adt.Tailer[int]
	adt.Appender[int]
}](f func() Abstract) Spec {
	return Spec{
		Name: "Append",
		Test: func(t *testing.T) {
			s := f()
			Empty(t, s)
			mustPanic(t, func() { _ = s.Tail() })

			s.Append(42)
			eq(t, s.Size(), 1)
			eq(t, s.Tail(), 42)

			s.Append(99)
			eq(t, s.Size(), 2)
			eq(t, s.Tail(), 99)

			for x := range odds(numSample) {
				s.Append(x)
				eq(t, s.Tail(), x)
			}
			eq(t, s.Size(), 2+numSample)
		},
	}
}

func Prepend[Abstract interface {
	adt.Sizer
	adt.Emptier
	adt.Header[int]
	adt.Prepender[int]
}](f func() Abstract) Spec {
	return Spec{
		Name: "Prepend",
		Test: func(t *testing.T) {
			s := f()
			Empty(t, s)
			mustPanic(t, func() { _ = s.Head() })

			s.Prepend(42)
			eq(t, s.Size(), 1)
			eq(t, s.Head(), 42)

			s.Prepend(99)
			eq(t, s.Size(), 2)
			eq(t, s.Head(), 99)

			for x := range odds(numSample) {
				s.Prepend(x)
				eq(t, s.Head(), x)
			}
			eq(t, s.Size(), 2+numSample)
		},
	}
}

func GetSet[Abstract interface {
	adt.Sizer
	adt.Getter[int]
	adt.Setter[int]
	adt.Appender[int]
}](f func() Abstract) Spec {
	return Spec{
		Name: "GetSet",
		Test: func(t *testing.T) {
			s := f()

			mustPanic(t, func() { s.Get(0) })
			mustPanic(t, func() { s.Get(-1) })
			mustPanic(t, func() { s.Get(100) })
			mustPanic(t, func() { s.Set(0, 1) })
			mustPanic(t, func() { s.Set(-1, 1) })

			s.Append(10)
			eq(t, s.Get(0), 10)
			s.Set(0, 20)
			eq(t, s.Get(0), 20)
			mustPanic(t, func() { s.Get(1) })
			mustPanic(t, func() { s.Set(1, 0) })

			s.Append(30)
			s.Append(40)
			eq(t, s.Get(0), 20)
			eq(t, s.Get(1), 30)
			eq(t, s.Get(2), 40)

			s.Set(1, 999)
			eq(t, s.Get(0), 20)
			eq(t, s.Get(1), 999)
			eq(t, s.Get(2), 40)

			mustPanic(t, func() { s.Get(s.Size()) })
			mustPanic(t, func() { s.Set(s.Size(), 0) })
			mustPanic(t, func() { s.Get(-1) })
			mustPanic(t, func() { s.Set(-1, 0) })
		},
	}
}

func HeadTail[Abstract interface {
	adt.Sizer
	adt.Emptier
	adt.Header[int]
	adt.Tailer[int]
	adt.Appender[int]
}](f func() Abstract) Spec {
	return Spec{
		Name: "HeadTail",
		Test: func(t *testing.T) {
			s := f()
			Empty(t, s)
			mustPanic(t, func() { _ = s.Head() })
			mustPanic(t, func() { _ = s.Tail() })

			s.Append(1)
			eq(t, s.Head(), 1)
			eq(t, s.Tail(), 1)

			s.Append(2)
			eq(t, s.Head(), 1)
			eq(t, s.Tail(), 2)

			s.Append(3)
			eq(t, s.Head(), 1)
			eq(t, s.Tail(), 3)

			for range 10 {
				_ = s.Head()
				_ = s.Tail()
			}
			eq(t, s.Size(), 3)
		},
	}
}

func Pop[Abstract interface {
	adt.Sizer
	adt.Emptier
	adt.Tailer[int]
	adt.Popper[int]
	adt.Appender[int]
}](f func() Abstract) Spec {
	return Spec{
		Name: "Pop",
		Test: func(t *testing.T) {
			s := f()
			mustPanic(t, func() { s.Pop() })

			s.Append(1)
			eq(t, s.Tail(), 1)
			eq(t, s.Pop(), 1)
			Empty(t, s)
			mustPanic(t, func() { s.Pop() })

			s.Append(10)
			s.Append(20)
			s.Append(30)
			eq(t, s.Pop(), 30)
			eq(t, s.Size(), 2)
			eq(t, s.Pop(), 20)
			eq(t, s.Size(), 1)
			eq(t, s.Tail(), 10)
			eq(t, s.Pop(), 10)
			Empty(t, s)

			var want []int
			for x := range odds(numSample) {
				s.Append(x)
				want = append(want, x)
			}
			for i := len(want) - 1; i >= 0; i-- {
				eq(t, s.Tail(), want[i])
				eq(t, s.Pop(), want[i])
			}
			Empty(t, s)
		},
	}
}

func Shift[Abstract interface {
	adt.Sizer
	adt.Emptier
	adt.Header[int]
	adt.Shifter[int]
	adt.Appender[int]
}](f func() Abstract) Spec {
	return Spec{
		Name: "Shift",
		Test: func(t *testing.T) {
			s := f()
			mustPanic(t, func() { s.Shift() })

			s.Append(1)
			eq(t, s.Head(), 1)
			eq(t, s.Shift(), 1)
			Empty(t, s)
			mustPanic(t, func() { s.Shift() })

			s.Append(10)
			s.Append(20)
			s.Append(30)
			eq(t, s.Shift(), 10)
			eq(t, s.Size(), 2)
			eq(t, s.Shift(), 20)
			eq(t, s.Size(), 1)
			eq(t, s.Head(), 30)
			eq(t, s.Shift(), 30)
			Empty(t, s)

			var want []int
			for x := range odds(numSample) {
				s.Append(x)
				want = append(want, x)
			}
			for _, w := range want {
				eq(t, s.Head(), w)
				eq(t, s.Shift(), w)
			}
			Empty(t, s)
		},
	}
}

func TryPop[Abstract interface {
	adt.Sizer
	adt.Emptier
	adt.Appender[int]
	TryPop() (int, bool)
}](f func() Abstract) Spec {
	return Spec{
		Name: "TryPop",
		Test: func(t *testing.T) {
			s := f()

			v, found := s.TryPop()
			eq(t, v, 0)
			eq(t, found, false)

			s.Append(10)
			s.Append(20)
			s.Append(30)

			v, found = s.TryPop()
			eq(t, v, 30)
			eq(t, found, true)
			eq(t, s.Size(), 2)

			v, found = s.TryPop()
			eq(t, v, 20)
			eq(t, found, true)
			eq(t, s.Size(), 1)

			v, found = s.TryPop()
			eq(t, v, 10)
			eq(t, found, true)
			Empty(t, s)

			v, found = s.TryPop()
			eq(t, v, 0)
			eq(t, found, false)
		},
	}
}

func TryShift[Abstract interface {
	adt.Sizer
	adt.Emptier
	adt.Appender[int]
	TryShift() (int, bool)
}](f func() Abstract) Spec {
	return Spec{
		Name: "TryShift",
		Test: func(t *testing.T) {
			s := f()

			v, found := s.TryShift()
			eq(t, v, 0)
			eq(t, found, false)

			s.Append(10)
			s.Append(20)
			s.Append(30)

			v, found = s.TryShift()
			eq(t, v, 10)
			eq(t, found, true)
			eq(t, s.Size(), 2)

			v, found = s.TryShift()
			eq(t, v, 20)
			eq(t, found, true)
			eq(t, s.Size(), 1)

			v, found = s.TryShift()
			eq(t, v, 30)
			eq(t, found, true)
			Empty(t, s)

			v, found = s.TryShift()
			eq(t, v, 0)
			eq(t, found, false)
		},
	}
}

func Iter[Abstract interface {
	adt.Sizer
	adt.Iterator[int]
	adt.Appender[int]
}](f func() Abstract) Spec {
	return Spec{
		Name: "Iter",
		Test: func(t *testing.T) {
			s := f()

			got := slices.Collect(s.Iter)
			eq(t, len(got), 0)

			s.Append(42)
			got = slices.Collect(s.Iter)
			ok(t, slices.Equal(got, []int{42}))

			s.Append(43)
			s.Append(44)
			got = slices.Collect(s.Iter)
			ok(t, slices.Equal(got, []int{42, 43, 44}))

			count := 0
			for range s.Iter {
				count++
				if count == 1 {
					break
				}
			}
			eq(t, count, 1)

			count = 0
			for range s.Iter {
				count++
				if count == 2 {
					break
				}
			}
			eq(t, count, 2)

			eq(t, s.Size(), 3)
		},
	}
}

func IterBackward[Abstract interface {
	adt.Sizer
	adt.BackwardIterator[int]
	adt.Appender[int]
}](f func() Abstract) Spec {
	return Spec{
		Name: "IterBackward",
		Test: func(t *testing.T) {
			s := f()

			got := slices.Collect(s.IterBackward)
			eq(t, len(got), 0)

			s.Append(1)
			got = slices.Collect(s.IterBackward)
			ok(t, slices.Equal(got, []int{1}))

			s.Append(2)
			s.Append(3)
			got = slices.Collect(s.IterBackward)
			ok(t, slices.Equal(got, []int{3, 2, 1}))

			count := 0
			for range s.IterBackward {
				count++
				if count == 2 {
					break
				}
			}
			eq(t, count, 2)

			eq(t, s.Size(), 3)
		},
	}
}

func Insert[Abstract interface {
	adt.Sizer
	adt.Getter[int]
	adt.Inserter[int]
}](f func() Abstract) Spec {
	return Spec{
		Name: "Insert",
		Test: func(t *testing.T) {
			s := f()
			mustPanic(t, func() { s.Insert(-1, 0) })
			mustPanic(t, func() { s.Insert(1, 0) })

			s.Insert(0, 10)
			eq(t, s.Get(0), 10)
			eq(t, s.Size(), 1)

			s.Insert(0, 5)
			eq(t, s.Get(0), 5)
			eq(t, s.Get(1), 10)
			eq(t, s.Size(), 2)

			s.Insert(2, 20)
			eq(t, s.Get(0), 5)
			eq(t, s.Get(1), 10)
			eq(t, s.Get(2), 20)
			eq(t, s.Size(), 3)

			s.Insert(1, 7)
			eq(t, s.Get(0), 5)
			eq(t, s.Get(1), 7)
			eq(t, s.Get(2), 10)
			eq(t, s.Get(3), 20)
			eq(t, s.Size(), 4)

			mustPanic(t, func() { s.Insert(-1, 0) })
			mustPanic(t, func() { s.Insert(s.Size()+1, 0) })
		},
	}
}

func Remove[Abstract interface {
	adt.Sizer
	adt.Emptier
	adt.Getter[int]
	adt.Remover[int]
	adt.Appender[int]
}](f func() Abstract) Spec {
	return Spec{
		Name: "Remove",
		Test: func(t *testing.T) {
			s := f()
			mustPanic(t, func() { s.Remove(0) })
			mustPanic(t, func() { s.Remove(-1) })

			s.Append(10)
			eq(t, s.Remove(0), 10)
			Empty(t, s)
			mustPanic(t, func() { s.Remove(0) })

			s.Append(1)
			s.Append(2)
			s.Append(3)
			s.Append(4)
			s.Append(5)

			eq(t, s.Remove(2), 3)
			eq(t, s.Size(), 4)
			eq(t, s.Get(0), 1)
			eq(t, s.Get(1), 2)
			eq(t, s.Get(2), 4)
			eq(t, s.Get(3), 5)

			eq(t, s.Remove(0), 1)
			eq(t, s.Get(0), 2)

			eq(t, s.Remove(s.Size()-1), 5)
			eq(t, s.Get(s.Size()-1), 4)

			mustPanic(t, func() { s.Remove(s.Size()) })
			mustPanic(t, func() { s.Remove(-1) })
		},
	}
}

func TryHead[Abstract interface {
	adt.Sizer
	adt.Emptier
	adt.Appender[int]
	TryHead() (int, bool)
}](f func() Abstract) Spec {
	return Spec{
		Name: "TryHead",
		Test: func(t *testing.T) {
			s := f()

			v, found := s.TryHead()
			eq(t, v, 0)
			eq(t, found, false)

			s.Append(42)
			v, found = s.TryHead()
			eq(t, v, 42)
			eq(t, found, true)

			s.Append(99)
			v, found = s.TryHead()
			eq(t, v, 42)
			eq(t, found, true)
		},
	}
}

func TryTail[Abstract interface {
	adt.Sizer
	adt.Emptier
	adt.Appender[int]
	TryTail() (int, bool)
}](f func() Abstract) Spec {
	return Spec{
		Name: "TryTail",
		Test: func(t *testing.T) {
			s := f()

			v, found := s.TryTail()
			eq(t, v, 0)
			eq(t, found, false)

			s.Append(42)
			v, found = s.TryTail()
			eq(t, v, 42)
			eq(t, found, true)

			s.Append(99)
			v, found = s.TryTail()
			eq(t, v, 99)
			eq(t, found, true)
		},
	}
}

func TryGet[Abstract interface {
	adt.Sizer
	adt.Emptier
	adt.Appender[int]
	TryGet(int) (int, bool)
}](f func() Abstract) Spec {
	return Spec{
		Name: "TryGet",
		Test: func(t *testing.T) {
			s := f()

			v, found := s.TryGet(0)
			eq(t, v, 0)
			eq(t, found, false)

			v, found = s.TryGet(-1)
			eq(t, found, false)

			s.Append(10)
			s.Append(20)
			s.Append(30)

			v, found = s.TryGet(0)
			eq(t, v, 10)
			eq(t, found, true)

			v, found = s.TryGet(1)
			eq(t, v, 20)
			eq(t, found, true)

			v, found = s.TryGet(2)
			eq(t, v, 30)
			eq(t, found, true)

			v, found = s.TryGet(3)
			eq(t, found, false)

			v, found = s.TryGet(-1)
			eq(t, found, false)
		},
	}
}

func TrySet[Abstract interface {
	adt.Sizer
	adt.Emptier
	adt.Getter[int]
	adt.Appender[int]
	TrySet(int, int) bool
}](f func() Abstract) Spec {
	return Spec{
		Name: "TrySet",
		Test: func(t *testing.T) {
			s := f()

			ok := s.TrySet(0, 42)
			eq(t, ok, false)

			ok = s.TrySet(-1, 42)
			eq(t, ok, false)

			s.Append(10)
			s.Append(20)
			s.Append(30)

			ok = s.TrySet(1, 99)
			eq(t, ok, true)
			eq(t, s.Get(1), 99)

			ok = s.TrySet(0, 88)
			eq(t, ok, true)
			eq(t, s.Get(0), 88)

			ok = s.TrySet(3, 100)
			eq(t, ok, false)

			ok = s.TrySet(-1, 100)
			eq(t, ok, false)
		},
	}
}

func TryRemove[Abstract interface {
	adt.Sizer
	adt.Emptier
	adt.Getter[int]
	adt.Appender[int]
	TryRemove(int) (int, bool)
}](f func() Abstract) Spec {
	return Spec{
		Name: "TryRemove",
		Test: func(t *testing.T) {
			s := f()

			v, found := s.TryRemove(0)
			eq(t, found, false)

			s.Append(10)
			s.Append(20)
			s.Append(30)

			v, found = s.TryRemove(1)
			eq(t, v, 20)
			eq(t, found, true)
			eq(t, s.Size(), 2)

			v, found = s.TryRemove(0)
			eq(t, v, 10)
			eq(t, found, true)
			eq(t, s.Size(), 1)

			v, found = s.TryRemove(0)
			eq(t, v, 30)
			eq(t, found, true)
			Empty(t, s)

			v, found = s.TryRemove(0)
			eq(t, found, false)
		},
	}
}

func Size(t *testing.T, s interface {
	adt.Sizer
	adt.Emptier
}, n int) {
	t.Helper()
	ok(t, !s.Empty())
	eq(t, s.Size(), n)
}

func Empty(t *testing.T, s interface {
	adt.Sizer
	adt.Emptier
}) {
	t.Helper()
	ok(t, s.Empty())
	eq(t, s.Size(), 0)
}

func mustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	fn()
}

func ok(t *testing.T, cond bool) {
	t.Helper()
	if !cond {
		t.Error("condition failed")
	}
}

func eq[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
