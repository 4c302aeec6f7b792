package strpool_test

import (
	"fmt"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuralabs/luatable/gcshim"
	"github.com/nuralabs/luatable/strpool"
	"github.com/nuralabs/luatable/value"
)

// Property 2: Intern(b1) == Intern(b2) (pointer equality) iff b1 == b2.
func TestInternIdentity(t *testing.T) {
	p := strpool.NewPool()

	a1 := p.Intern([]byte("hello"))
	a2 := p.Intern([]byte("hello"))
	assert.Same(t, a1, a2)

	b := p.Intern([]byte("world"))
	assert.NotSame(t, a1, b)

	empty1 := p.Intern([]byte(""))
	empty2 := p.Intern(nil)
	assert.Same(t, empty1, empty2)
}

func TestInternPreservesBytes(t *testing.T) {
	p := strpool.NewPool()
	s := p.Intern([]byte("payload"))
	assert.Equal(t, "payload", s.Bytes)
	assert.Equal(t, 7, s.Len())
}

// Intern enough distinct strings to force several doublings, checking
// nuse <= bucket count and that the bucket count stays a power of two
// after every growth. testing.Short() gates a full million-string run
// against a smaller count, since CI shouldn't pay for the literal million
// every time.
func TestInternManyStringsKeepsBucketsPowerOfTwoAndNuseBounded(t *testing.T) {
	count := 20000
	if !testing.Short() {
		count = 1_000_000
	}

	p := strpool.NewPool()
	prevCap := p.Cap()
	for i := 0; i < count; i++ {
		p.Intern([]byte(fmt.Sprintf("string-%d", i)))
		require.LessOrEqual(t, p.Size(), p.Cap())
		if p.Cap() != prevCap {
			prevCap = p.Cap()
			assert.Equal(t, 1, bits.OnesCount(uint(prevCap)), "bucket count %d is not a power of two", prevCap)
		}
	}
	assert.Equal(t, count, p.Size())
	assert.Equal(t, 1, bits.OnesCount(uint(p.Cap())))
}

func TestInternDistinctStringsAreDistinctObjects(t *testing.T) {
	p := strpool.NewPool()
	seen := map[*strpool.Str]bool{}
	for i := 0; i < 5000; i++ {
		s := p.Intern([]byte(fmt.Sprintf("k%d", i)))
		assert.False(t, seen[s])
		seen[s] = true
	}
	assert.Equal(t, 5000, len(seen))
}

// fakeCollector lets tests drive the dead-key resurrection path and the
// sweep-phase resize guard without a real garbage collector.
type fakeCollector struct {
	dead     map[gcshim.Color]bool
	sweeping bool
}

func (f *fakeCollector) CurrentWhite() gcshim.Color { return 1 }
func (f *fakeCollector) IsDead(c gcshim.Color) bool  { return f.dead[c] }
func (f *fakeCollector) ChangeWhite(c gcshim.Color) gcshim.Color {
	return 1
}
func (f *fakeCollector) Barrier(value.Value, value.Value) {}
func (f *fakeCollector) SweepingStrings() bool { return f.sweeping }

func TestInternResurrectsDeadMatchInsteadOfAllocating(t *testing.T) {
	fc := &fakeCollector{dead: map[gcshim.Color]bool{0: true}}
	p := strpool.NewPoolWith(fc)

	s := p.Intern([]byte("ghost"))
	s.Color = 0 // simulate the collector marking it dead between calls

	again := p.Intern([]byte("ghost"))
	assert.Same(t, s, again)
	assert.Equal(t, gcshim.Color(1), again.Color)
}

func TestResizeIsANoOpDuringStringSweep(t *testing.T) {
	fc := &fakeCollector{dead: map[gcshim.Color]bool{}, sweeping: true}
	p := strpool.NewPoolWith(fc)
	startCap := p.Cap()

	for i := 0; i < startCap*4; i++ {
		p.Intern([]byte(fmt.Sprintf("s%d", i)))
	}
	assert.Equal(t, startCap, p.Cap(), "resize must not run while the collector is sweeping strings")

	fc.sweeping = false
	p.Intern([]byte("one-more-to-trigger-growth"))
	assert.Greater(t, p.Cap(), startCap, "resize should resume once sweeping stops")
}

func TestNewUserDataLinksOntoPoolList(t *testing.T) {
	p := strpool.NewPool()
	u1 := p.NewUserData(16, nil)
	u2 := p.NewUserData(32, nil)
	require.NotNil(t, u1)
	require.NotNil(t, u2)
	assert.Equal(t, 16, u1.Size)
	assert.Equal(t, 32, u2.Size)
}
