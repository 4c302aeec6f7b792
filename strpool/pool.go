package strpool

import (
	"github.com/nuralabs/luatable/alloc"
	"github.com/nuralabs/luatable/gcshim"
	"github.com/nuralabs/luatable/linkedlist"
)

// DefaultCapacity is the pool's initial bucket count.
const DefaultCapacity = 32

// Pool is the string intern pool (S).
//
//	            buckets
//	      ┌─────────────────────┐
//	hash%N│ 0 │ 1 │ 2 │ 3 │ ... │
//	      └─┬─┴───┴─┬─┴───┴─────┘
//	        ▼       ▼
//	     ["foo"] ["bar"]→["baz"]
//
// nuse tracks live strings; when nuse exceeds the bucket count, Intern
// doubles the bucket array and redistributes every entry, unless the
// collector reports it is mid-sweep over the string buckets.
type Pool struct {
	buckets  []*linkedlist.SinglyLinkedList[*Str]
	nuse     int
	gc       gcshim.Collector
	udataHead *UserData // sentinel; real nodes chain after it
}

// NewPool creates an empty pool with DefaultCapacity buckets and no
// collector (gcshim.NoGC(), suitable for tests and the example driver).
//
// complexity:
//   - time : O(DefaultCapacity)
//   - space: O(DefaultCapacity)
func NewPool() *Pool { return NewPoolWith(gcshim.NoGC()) }

// NewPoolWith creates an empty pool cooperating with the given collector.
func NewPoolWith(gc gcshim.Collector) *Pool {
	if gc == nil {
		gc = gcshim.NoGC()
	}
	p := &Pool{
		buckets: make([]*linkedlist.SinglyLinkedList[*Str], DefaultCapacity),
		gc:      gc,
	}
	for i := range p.buckets {
		p.buckets[i] = linkedlist.NewSinglyLinkedList[*Str]()
	}
	p.udataHead = &UserData{}
	return p
}

// hash implements the pool's sampling hash: seed the accumulator with the
// length, then fold in at most ~32 bytes spaced step apart, so a very long
// string is hashed in near-constant time rather than byte by byte.
//
// complexity:
//   - time : O(min(length, 32))
//   - space: O(1)
func hash(b []byte) uint32 {
	l := len(b)
	h := uint32(l)
	step := (l >> 5) + 1
	for l1 := l; l1 >= step; l1 -= step {
		h ^= (h << 5) + (h >> 2) + uint32(b[l1-1])
	}
	return h
}

// Intern returns the canonical *Str for b, creating and remembering one on
// a miss. Two calls with equal bytes always return the identical pointer.
//
//	Intern([]byte("cat")) → &Str{Bytes:"cat", ...}
//	Intern([]byte("cat")) → same pointer as above
//
// complexity:
//   - time : O(min(length, 32)) to hash, O(chain length) to probe
//   - space: O(length) on a miss, O(1) on a hit
func (p *Pool) Intern(b []byte) *Str {
	h := hash(b)
	idx := int(h) % len(p.buckets)
	bucket := p.buckets[idx]
	for s := range bucket.Iter {
		if s.Len() == len(b) && s.Bytes == string(b) {
			// the match may be dead (unreachable, pending collection);
			// resurrect it rather than allocate a fresh object.
			if p.gc.IsDead(s.Color) {
				s.Color = p.gc.ChangeWhite(s.Color)
			}
			return s
		}
	}
	return p.newlstr(b, h, idx)
}

// newlstr allocates a fresh Str, chains it at the head of its bucket, and
// grows the pool if it has become too crowded.
func (p *Pool) newlstr(b []byte, h uint32, idx int) *Str {
	if err := alloc.CheckSize("strpool.Pool.Intern", len(b)); err != nil {
		panic(err)
	}
	s := &Str{
		Bytes: string(b),
		Hash:  h,
		Color: p.gc.CurrentWhite(),
	}
	p.buckets[idx].Prepend(s)
	p.nuse++
	if p.nuse > len(p.buckets) && len(p.buckets) <= alloc.MaxSize/2 {
		p.resize(len(p.buckets) * 2)
	}
	return s
}

// resize reallocates the bucket array to newSize and redistributes every
// live string. It is a no-op while the collector is sweeping the string
// pool, since a sweep in progress is iterating these same buckets and a
// resize mid-sweep would invalidate its cursor.
//
// complexity:
//   - time : O(nuse + newSize)
//   - space: O(newSize)
func (p *Pool) resize(newSize int) {
	if p.gc.SweepingStrings() {
		return
	}
	alloc.MustCheckSize("strpool.Pool.resize", newSize)
	next := make([]*linkedlist.SinglyLinkedList[*Str], newSize)
	for i := range next {
		next[i] = linkedlist.NewSinglyLinkedList[*Str]()
	}
	for _, bucket := range p.buckets {
		for s := range bucket.Iter {
			next[int(s.Hash)%newSize].Prepend(s)
		}
	}
	p.buckets = next
}

// Size returns the number of live interned strings. Satisfies adt.Sizer.
func (p *Pool) Size() int { return p.nuse }

// Cap returns the current bucket count.
func (p *Pool) Cap() int { return len(p.buckets) }

// NewUserData allocates a finalizable heap object of the given byte size
// owned by env, and links it onto the pool's userdata list. The original
// links new userdata "after the main thread"; without a thread model this
// pool links after its own sentinel head instead, preserving the
// newest-first traceable-list shape.
//
// complexity:
//   - time : O(1)
//   - space: O(size)
func (p *Pool) NewUserData(size int, env any) *UserData {
	if err := alloc.CheckSize("strpool.Pool.NewUserData", size); err != nil {
		panic(err)
	}
	u := &UserData{
		Size:  size,
		Env:   env,
		Color: p.gc.CurrentWhite(),
		next:  p.udataHead.next,
	}
	p.udataHead.next = u
	return u
}
