package value_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nuralabs/luatable/value"
)

func TestNumberCanonicalizesNegativeZero(t *testing.T) {
	pos := value.Number(0)
	neg := value.Number(math.Copysign(0, -1))
	assert.True(t, pos.Equal(neg))
	assert.Equal(t, pos.HashKey(), neg.HashKey())
}

func TestIsNaN(t *testing.T) {
	assert.True(t, value.Number(math.NaN()).IsNaN())
	assert.False(t, value.Number(1).IsNaN())
	assert.False(t, value.Nil.IsNaN())
}

func TestAsInt(t *testing.T) {
	n, ok := value.Int(7).AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(7), n)

	_, ok = value.Number(1.5).AsInt()
	assert.False(t, ok)

	_, ok = value.Bool(true).AsInt()
	assert.False(t, ok)
}

func TestEqualIsKindSensitive(t *testing.T) {
	assert.False(t, value.Int(1).Equal(value.Bool(true)))
	assert.True(t, value.Nil.Equal(value.Value{}))
}

func TestStringRefIdentity(t *testing.T) {
	s1 := "abc"
	s2 := "abc"
	v1 := value.StringRef(&s1)
	v2 := value.StringRef(&s2)
	assert.False(t, v1.Equal(v2), "distinct pointers must not compare equal even with equal contents")
	assert.True(t, v1.Equal(value.StringRef(&s1)))
}

func TestMarkDeadPreservesIdentityForEqual(t *testing.T) {
	s := "k"
	v := value.StringRef(&s)
	dead := v.MarkDead()
	assert.True(t, dead.IsDead())
	assert.False(t, v.IsDead())
	assert.True(t, dead.Equal(v))
}

func TestBoolPayload(t *testing.T) {
	assert.True(t, value.Bool(true).AsBool())
	assert.False(t, value.Bool(false).AsBool())
}
