package prop

import (
	"math/rand/v2"
	"testing"

	"github.com/nuralabs/luatable/table"
	"github.com/nuralabs/luatable/value"
)

// TableMainPositionInvariant drives f through a randomized mutation
// sequence of integer, fractional-number and boolean keys and, after every
// insertion, checks that every live hash node sits at its own main position,
// or at the position whose current occupant is itself at its own main
// position — the invariant table.Table's newkey displacement exists to
// preserve.
func TableMainPositionInvariant(f func() *table.Table) Spec {
	return Spec{
		Name: "TableMainPositionInvariant",
		Test: func(t *testing.T) {
			tb := f()
			for i := 0; i < 500; i++ {
				var key value.Value
				switch rand.IntN(3) {
				case 0:
					key = value.Int(int64(rand.IntN(64)))
				case 1:
					key = value.Number(float64(rand.IntN(64)) + 0.5)
				case 2:
					key = value.Bool(rand.IntN(2) == 0)
				}
				slot, _ := tb.Set(key)
				*slot = value.Int(int64(i + 1))
				assertMainPositions(t, tb)
			}
		},
	}
}

func assertMainPositions(t *testing.T, tb *table.Table) {
	t.Helper()
	n := tb.NodeLen()
	for i := 0; i < n; i++ {
		key, val, ok := tb.NodeAt(i)
		if !ok || val.IsNil() {
			continue
		}
		mp := tb.MainPositionOf(key)
		if mp == i {
			continue
		}
		// i is not key's main position: the occupant at mp must itself be
		// at its own main position (the intruder, never the owner, moves).
		occKey, occVal, occOK := tb.NodeAt(mp)
		if !occOK || occVal.IsNil() {
			t.Fatalf("node %d holds key away from main position %d, but %d is empty", i, mp, mp)
			continue
		}
		if tb.MainPositionOf(occKey) != mp {
			t.Fatalf("main-position invariant violated at node %d (main position %d occupied by a non-owner)", i, mp)
		}
	}
}

// TableArrayDensityAfterRehash inserts an increasing run of integer keys
// one at a time and, after every insertion that grows the array region,
// asserts the array's non-nil density exceeds 50%.
func TableArrayDensityAfterRehash(f func() *table.Table) Spec {
	return Spec{
		Name: "TableArrayDensityAfterRehash",
		Test: func(t *testing.T) {
			tb := f()
			prevArrayLen := tb.ArrayLen()
			for i := int64(1); i <= 4096; i++ {
				slot, _ := tb.Set(value.Int(i))
				*slot = value.Int(i)
				if n := tb.ArrayLen(); n != prevArrayLen {
					prevArrayLen = n
					if n == 0 {
						continue
					}
					live := 0
					for j := 1; j <= n; j++ {
						if !tb.GetInt(int64(j)).IsNil() {
							live++
						}
					}
					if live*2 <= n {
						t.Fatalf("array density after rehash: %d/%d live entries, want >50%%", live, n)
					}
				}
			}
		},
	}
}

// TableIterationCompleteness inserts a fixed key set, then drives Next
// from nil to exhaustion, asserting every key is visited exactly once.
func TableIterationCompleteness(f func() *table.Table) Spec {
	return Spec{
		Name: "TableIterationCompleteness",
		Test: func(t *testing.T) {
			tb := f()
			want := map[value.Value]bool{}
			for i := int64(1); i <= 20; i++ {
				k := value.Int(i)
				slot, _ := tb.Set(k)
				*slot = value.Int(i)
				want[k] = true
			}
			for i := 0; i < 20; i++ {
				k := value.StringRef(fakeStr(i))
				slot, _ := tb.Set(k)
				*slot = value.Int(int64(i))
				want[k] = true
			}

			seen := map[value.Value]int{}
			cur := value.Nil
			for {
				k, v, ok, err := tb.Next(cur)
				if err != nil {
					t.Fatalf("unexpected Next error: %v", err)
				}
				if !ok {
					break
				}
				if v.IsNil() {
					t.Fatalf("Next returned a nil value for a live key")
				}
				seen[k]++
				cur = k
			}
			for k := range want {
				if seen[k] != 1 {
					t.Fatalf("key visited %d times, want 1", seen[k])
				}
			}
			if len(seen) != len(want) {
				t.Fatalf("visited %d distinct keys, want %d", len(seen), len(want))
			}
		},
	}
}

// TableLengthLaw asserts Length()'s boundary contract holds for a table
// built by f with holes punched into it.
func TableLengthLaw(f func() *table.Table) Spec {
	return Spec{
		Name: "TableLengthLaw",
		Test: func(t *testing.T) {
			tb := f()
			for i := int64(1); i <= 32; i++ {
				slot, _ := tb.Set(value.Int(i))
				*slot = value.Int(i)
			}
			for _, hole := range []int64{17, 20, 25} {
				slot, _ := tb.Set(value.Int(hole))
				*slot = value.Nil
			}
			n := tb.Length()
			if n == 0 {
				if !tb.GetInt(1).IsNil() {
					t.Fatalf("length 0 but Get(1) is non-nil")
				}
			} else {
				if tb.GetInt(int64(n)).IsNil() {
					t.Fatalf("length %d but Get(n) is nil", n)
				}
				if !tb.GetInt(int64(n + 1)).IsNil() {
					t.Fatalf("length %d but Get(n+1) is non-nil", n)
				}
			}
		},
	}
}

// fakeStr builds a distinct value.Value-comparable string reference for
// iteration tests without depending on strpool, using a pointer to a
// freshly allocated string as the ref identity.
func fakeStr(i int) *string {
	s := string(rune('a' + i%26))
	return &s
}
