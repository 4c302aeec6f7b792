package table_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuralabs/luatable/adt/prop"
	"github.com/nuralabs/luatable/luaerr"
	"github.com/nuralabs/luatable/table"
	"github.com/nuralabs/luatable/value"
)

// ScenarioA: insert keys 1..10 with value 42, delete key 5.
func TestScenarioA_InsertThenDeleteMiddle(t *testing.T) {
	tb := table.New(0, 0)
	for i := int64(1); i <= 10; i++ {
		slot, err := tb.Set(value.Int(i))
		require.NoError(t, err)
		*slot = value.Number(42)
	}

	slot, err := tb.Set(value.Int(5))
	require.NoError(t, err)
	*slot = value.Nil

	n := tb.Length()
	assert.Contains(t, []int{4, 10}, n)

	for i := int64(1); i <= 4; i++ {
		assert.Equal(t, float64(42), tb.GetInt(i).AsNumber())
	}
	assert.True(t, tb.GetInt(5).IsNil())
	for i := int64(6); i <= 10; i++ {
		assert.Equal(t, float64(42), tb.GetInt(i).AsNumber())
	}
}

// ScenarioB mirrors the example driver's key sequence: 1, 2, "key1"..."key5",
// 3, 4, 5, 6 — checking the array/hash split at named checkpoints. The exact
// split a real rehash lands on is implementation-dependent on histogram
// ties, so this asserts the density invariant at each checkpoint rather
// than one literal array/hash size sequence (the exact path depends on
// which rehash a given histogram tie-break triggers).
func TestScenarioB_DriverKeySequence(t *testing.T) {
	tb := table.New(0, 0)
	set := func(k value.Value) {
		slot, err := tb.Set(k)
		require.NoError(t, err)
		*slot = value.Bool(true)
	}
	str := func(s string) value.Value { ss := s; return value.StringRef(&ss) }

	steps := []value.Value{
		value.Int(1), value.Int(2),
		str("key1"), str("key2"), str("key3"), str("key4"), str("key5"),
		value.Int(3), value.Int(4), value.Int(5), value.Int(6),
	}
	for i, k := range steps {
		set(k)
		assertDensity(t, tb, i+1)
	}

	// every key set along the way is still retrievable.
	assert.False(t, tb.GetInt(1).IsNil())
	assert.False(t, tb.GetInt(6).IsNil())
	assert.False(t, tb.Get(steps[2]).IsNil())
}

func assertDensity(t *testing.T, tb *table.Table, step int) {
	t.Helper()
	n := tb.ArrayLen()
	if n == 0 {
		return
	}
	live := 0
	for i := 1; i <= n; i++ {
		if !tb.GetInt(int64(i)).IsNil() {
			live++
		}
	}
	assert.Greaterf(t, live*2, n, "step %d: array density %d/%d not >50%%", step, live, n)
}

// ScenarioC: a single out-of-range integer key never grows the array.
func TestScenarioC_SparseIntegerKeyStaysInHash(t *testing.T) {
	tb := table.New(0, 0)
	slot, err := tb.Set(value.Int(5))
	require.NoError(t, err)
	*slot = value.Number(7)

	assert.Equal(t, 0, tb.ArrayLen())
	assert.Equal(t, float64(7), tb.GetInt(5).AsNumber())
	assert.Equal(t, 0, tb.Length())
}

// ScenarioE: setting a NaN key must raise invalid-key.
func TestScenarioE_NaNKeyIsInvalid(t *testing.T) {
	tb := table.New(0, 0)
	_, err := tb.Set(value.Number(math.NaN()))
	require.Error(t, err)
	var invalidKey *luaerr.InvalidKeyError
	assert.ErrorAs(t, err, &invalidKey)
}

func TestNilKeyIsInvalid(t *testing.T) {
	tb := table.New(0, 0)
	_, err := tb.Set(value.Nil)
	require.Error(t, err)
	var invalidKey *luaerr.InvalidKeyError
	assert.ErrorAs(t, err, &invalidKey)
}

// ScenarioF: nilling the current key mid-iteration never revisits it or
// crashes, and iteration still reaches "end".
func TestScenarioF_NilCurrentKeyDuringIteration(t *testing.T) {
	tb := table.New(0, 0)
	for i := int64(1); i <= 10; i++ {
		slot, err := tb.Set(value.Int(i))
		require.NoError(t, err)
		*slot = value.Int(i)
	}

	visited := 0
	cur := value.Nil
	for {
		k, v, ok, err := tb.Next(cur)
		require.NoError(t, err)
		if !ok {
			break
		}
		visited++
		_ = v
		if n, isInt := k.AsInt(); isInt && n == 5 {
			slot, err := tb.Set(k)
			require.NoError(t, err)
			*slot = value.Nil
		}
		cur = k
	}
	assert.LessOrEqual(t, visited, 10)
	assert.GreaterOrEqual(t, visited, 9)
}

func TestGetReturnsNilForAbsentAndNilKey(t *testing.T) {
	tb := table.New(0, 0)
	assert.True(t, tb.Get(value.Nil).IsNil())
	assert.True(t, tb.Get(value.Int(99)).IsNil())
}

func TestNextOnUnknownKeyIsInvalid(t *testing.T) {
	tb := table.New(0, 0)
	_, _, err := setOK(t, tb, value.Int(1), value.Number(1))
	require.NoError(t, err)

	_, _, _, err = tb.Next(value.Int(42))
	require.Error(t, err)
	var invalidNext *luaerr.InvalidNextError
	assert.ErrorAs(t, err, &invalidNext)
}

func setOK(t *testing.T, tb *table.Table, k, v value.Value) (value.Value, value.Value, error) {
	t.Helper()
	slot, err := tb.Set(k)
	if err != nil {
		return k, v, err
	}
	*slot = v
	return k, v, nil
}

func TestResizeArrayGrowsWithoutRehashingHash(t *testing.T) {
	tb := table.New(0, 0)
	_, err := tb.Set(value.StringRef(new(string)))
	require.NoError(t, err)

	tb.ResizeArray(16)
	assert.Equal(t, 16, tb.ArrayLen())
	for i := int64(1); i <= 16; i++ {
		assert.True(t, tb.GetInt(i).IsNil())
	}
}

func TestAllIteratesEveryLiveKey(t *testing.T) {
	tb := table.New(0, 0)
	want := map[int64]bool{}
	for i := int64(1); i <= 50; i++ {
		slot, err := tb.Set(value.Int(i))
		require.NoError(t, err)
		*slot = value.Int(i)
		want[i] = true
	}

	got := map[int64]bool{}
	for k, v := range tb.All() {
		n, ok := k.AsInt()
		require.True(t, ok)
		assert.True(t, value.Int(n).Equal(v))
		got[n] = true
	}
	assert.Equal(t, want, got)
}

// Runs the main-position, array-density, iteration-completeness, and
// length-law generator specs against fresh tables built with varying
// initial size hints.
func TestTableProperties(t *testing.T) {
	constructors := []struct {
		name string
		new  func() *table.Table
	}{
		{"empty", func() *table.Table { return table.New(0, 0) }},
		{"presized", func() *table.Table { return table.New(4, 4) }},
	}

	specs := []func(func() *table.Table) prop.Spec{
		prop.TableMainPositionInvariant,
		prop.TableArrayDensityAfterRehash,
		prop.TableIterationCompleteness,
		prop.TableLengthLaw,
	}

	for _, c := range constructors {
		for _, specFn := range specs {
			s := specFn(c.new)
			t.Run(c.name+"/"+s.Name, s.Test)
		}
	}
}

// Property 1 (round-trip) as a direct assertion across every runtime kind
// the table must accept as a key.
func TestRoundTripAcrossKeyKinds(t *testing.T) {
	tb := table.New(0, 0)
	str := "greeting"

	keys := []value.Value{
		value.Int(7),
		value.Number(3.5),
		value.Bool(true),
		value.Bool(false),
		value.StringRef(&str),
		value.LightUserData(nil),
	}
	for i, k := range keys {
		v := value.Int(int64(i + 1))
		slot, err := tb.Set(k)
		require.NoError(t, err)
		*slot = v
		assert.True(t, v.Equal(tb.Get(k)))
	}
	for _, k := range keys {
		slot, err := tb.Set(k)
		require.NoError(t, err)
		*slot = value.Nil
		assert.True(t, tb.Get(k).IsNil())
	}
}
