// Package table implements the hybrid array/hash associative table (T)
// that backs every aggregate value in the runtime: a dense array region for
// small positive integer keys, and an open-chained hash region with Brent
// displacement for everything else.
//
// # What Is a Hybrid Table?
//
// Most scripts index tables with small sequential integers (1, 2, 3, ...)
// far more often than with arbitrary keys, so it pays to give that case a
// dedicated dense vector instead of paying hash-table overhead for it. Any
// key outside the dense range — strings, booleans, out-of-range integers,
// object references — falls through to a classic open-chained hash region.
// Get/Set decide which region a key belongs to in O(1).
//
// # Collision Handling: Brent Displacement
//
// Plain chaining (as in the donor's hashmap package) puts a new node
// wherever its bucket is free and links it behind whatever is already
// there. This table instead enforces a main-position invariant: a key
// either sits at the node its own hash points to, or the occupant of that
// node is itself at its own main position (never at the new key's
// position). When a collision lands a new key on an occupied main
// position, the table moves the *intruder* — not the new key — to a free
// slot found by scanning backward from a cursor (lastfree), and relinks
// its former chain to point through the new slot instead. This keeps every
// key's own main position the fast first-probe case even under heavy
// collision, at the cost of more bookkeeping on insert.
//
// # Resizing: Density-Driven Array/Hash Split
//
// Growing the table re-derives the array/hash split from scratch: a
// histogram of integer keys by power-of-two bucket (1, 2, (2,4], (4,8], …)
// picks the largest power-of-two array size that would be more than 50%
// full, keeping the array region dense. Everything else — including any integer
// key that loses the cut — lands in the hash region.
//
// # Complexity
//
//	Get/Set (array region):  O(1)
//	Get/Set (hash region):   O(1) average, O(chain length) worst case
//	Rehash:                  O(n)
//	Next:                    O(1) amortized per step, O(n) full traversal
//	Length:                  O(log n)
//
// # Further Reading
//
// https://en.wikipedia.org/wiki/Hash_table#Open_addressing
// https://en.wikipedia.org/wiki/Primary_clustering
package table

import (
	"iter"
	"math"

	"github.com/nuralabs/luatable/alloc"
	"github.com/nuralabs/luatable/gcshim"
	"github.com/nuralabs/luatable/luaerr"
	"github.com/nuralabs/luatable/strpool"
	"github.com/nuralabs/luatable/value"
)

// maxBits bounds the integer-key histogram used during rehash: keys
// greater than 2^maxBits never compete for array placement, the Go
// rendition of the original's MAXBITS ceiling.
const maxBits = 30

// hnode is one slot of the hash region.
//
//	┌────────┬────────┬──────┐
//	│  key   │  value │ next │
//	└────────┴────────┴──────┘
//
// next is an index into the same node slice, or -1 for "end of chain" —
// the flat-vector analogue of an intrusive linked-list pointer, chosen so
// displacement can relocate a node without any heap allocation.
type hnode struct {
	key  value.Value
	val  value.Value
	next int
}

// dummyNode is the single, shared, read-only sentinel used by every table
// whose hash region has zero capacity. It is never written to directly:
// newkey forces a real rehash before installing into a dummy-backed
// table, per the main-position invariant's "grow node vector first"
// clause.
var dummyNode = []hnode{{next: -1}}

// Table is the hybrid array/hash table (T).
type Table struct {
	array     []value.Value
	node      []hnode
	isDummy   bool
	lastfree  int
	flags     byte
	metatable *Table
	gc        gcshim.Collector
}

// New creates an empty table with array and hash regions eagerly sized to
// narray and nhash respectively, with no real garbage collector attached.
//
// complexity:
//   - time : O(narray + nhash)
//   - space: O(narray + nhash)
func New(narray, nhash int) *Table {
	return NewWith(narray, nhash, gcshim.NoGC())
}

// NewWith creates an empty table cooperating with the given collector; a
// nil gc behaves like gcshim.NoGC().
func NewWith(narray, nhash int, gc gcshim.Collector) *Table {
	if gc == nil {
		gc = gcshim.NoGC()
	}
	t := &Table{gc: gc}
	t.setArrayVector(narray)
	t.setNodeVector(nhash)
	return t
}

// Metatable returns the table's optional back-reference, not owned by T.
func (t *Table) Metatable() *Table { return t.metatable }

// SetMetatable installs m as the table's metatable back-reference.
func (t *Table) SetMetatable(m *Table) { t.metatable = m }

// ArrayLen returns the current array region's length (sizearray).
func (t *Table) ArrayLen() int { return len(t.array) }

// NodeLen returns the current hash region's capacity (2^lsizenode, or 0
// for a dummy-backed table).
func (t *Table) NodeLen() int {
	if t.isDummy {
		return 0
	}
	return len(t.node)
}

// NodeAt exposes the hash node at index i for invariant-checking tests
// (see adt/prop.TableMainPositionInvariant); it is not part of the table's
// embedder-facing ABI. ok is false for an out-of-range index.
func (t *Table) NodeAt(i int) (key, val value.Value, ok bool) {
	if t.isDummy || i < 0 || i >= len(t.node) {
		return value.Nil, value.Nil, false
	}
	n := &t.node[i]
	return n.key, n.val, true
}

// MainPositionOf exposes mainPosition for invariant-checking tests.
func (t *Table) MainPositionOf(key value.Value) int { return t.mainPosition(key) }

// ceilToPow2 rounds n up to the next power of two; 0 maps to 0.
func ceilToPow2(n int) int {
	if n <= 0 {
		return 0
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func (t *Table) setArrayVector(n int) {
	alloc.MustCheckSize("table.Table.setArrayVector", n)
	na := make([]value.Value, n)
	copy(na, t.array)
	t.array = na
}

func (t *Table) setNodeVector(size int) {
	if size == 0 {
		t.node = dummyNode
		t.isDummy = true
		t.lastfree = 0
		return
	}
	lsize := ceilToPow2(size)
	if lsize > alloc.MaxSize {
		panic(&luaerr.OverflowError{Op: "table.Table.setNodeVector"})
	}
	alloc.MustCheckSize("table.Table.setNodeVector", lsize)
	nodes := make([]hnode, lsize)
	for i := range nodes {
		nodes[i].next = -1
	}
	t.node = nodes
	t.isDummy = false
	t.lastfree = lsize
}

// mainPosition computes the hash node a key naturally belongs to. String
// and boolean keys use a power-of-two mask; numbers and every
// pointer-bearing kind use an odd modulus (size-1 rounded up to odd) to
// avoid the clustering a power-of-two modulus would cause on keys whose
// low bits are not uniformly distributed.
//
// complexity:
//   - time : O(1)
//   - space: O(1)
func (t *Table) mainPosition(key value.Value) int {
	size := len(t.node)
	switch key.Kind {
	case value.KindString, value.KindBoolean:
		return int(key.HashKey() & uint64(size-1))
	default:
		m := uint64((size - 1) | 1)
		return int(key.HashKey() % m)
	}
}

// lookupSlot returns a pointer to the value slot for key if it is
// currently present (array region directly, hash region by chain walk),
// or nil if key has no entry. Dead keys are never matched: their
// collectable referent no longer exists, so no fresh lookup key could
// ever legitimately equal one.
func (t *Table) lookupSlot(key value.Value) *value.Value {
	if k, ok := key.AsInt(); ok && k >= 1 && int(k) <= len(t.array) {
		return &t.array[k-1]
	}
	idx := t.mainPosition(key)
	for idx != -1 {
		n := &t.node[idx]
		if !n.key.IsDead() && n.key.Equal(key) {
			return &n.val
		}
		idx = n.next
	}
	return nil
}

// Get returns the value stored for key, or value.Nil if absent. Never
// fails; a nil key simply has no entry.
//
// complexity:
//   - time : O(1) average
//   - space: O(1)
func (t *Table) Get(key value.Value) value.Value {
	if key.IsNil() {
		return value.Nil
	}
	if slot := t.lookupSlot(key); slot != nil {
		return *slot
	}
	return value.Nil
}

// GetInt is Get's specialized fast path for integer keys.
func (t *Table) GetInt(k int64) value.Value {
	if k >= 1 && int(k) <= len(t.array) {
		return t.array[k-1]
	}
	return t.Get(value.Int(k))
}

// GetStr is Get's specialized fast path for interned string keys.
func (t *Table) GetStr(s *strpool.Str) value.Value {
	return t.Get(value.StringRef(s))
}

// Set returns a writable slot for key, creating it if absent. Storing
// value.Nil into the returned slot removes the key from subsequent Get
// calls. Set fails with an *luaerr.InvalidKeyError if key is nil or NaN;
// neither could ever be looked back up afterward.
//
// complexity:
//   - time : O(1) average, O(n) on the rehash that may be triggered
//   - space: O(1) average, O(n) on rehash
func (t *Table) Set(key value.Value) (*value.Value, error) {
	if key.IsNil() {
		return nil, &luaerr.InvalidKeyError{Op: "table.Table.Set", Reason: "key is nil"}
	}
	if key.IsNaN() {
		return nil, &luaerr.InvalidKeyError{Op: "table.Table.Set", Reason: "key is NaN"}
	}
	return t.set(key), nil
}

// SetInt is Set's specialized fast path for integer keys; it never fails.
func (t *Table) SetInt(k int64) *value.Value {
	if k >= 1 && int(k) <= len(t.array) {
		return &t.array[k-1]
	}
	return t.set(value.Int(k))
}

// SetStr is Set's specialized fast path for interned string keys; it
// never fails.
func (t *Table) SetStr(s *strpool.Str) *value.Value {
	return t.set(value.StringRef(s))
}

func (t *Table) set(key value.Value) *value.Value {
	if slot := t.lookupSlot(key); slot != nil {
		return slot
	}
	return t.newkey(key)
}

// getFreePos scans backward from lastfree for an empty node (one whose
// value is nil), returning -1 if the hash region is entirely full.
// lastfree only ever decreases between rehashes, so the amortized cost
// across a run of insertions is O(1) per insertion.
func (t *Table) getFreePos() int {
	for t.lastfree > 0 {
		t.lastfree--
		if t.node[t.lastfree].val.IsNil() {
			return t.lastfree
		}
	}
	return -1
}

// newkey installs key into the hash region, displacing an intruder if
// key's main position is occupied by a node that is not itself at its own
// main position (Brent's variation of chained scatter hashing). Triggers
// a rehash and retries if no free slot exists.
func (t *Table) newkey(key value.Value) *value.Value {
	mp := t.mainPosition(key)
	if t.isDummy || !t.node[mp].val.IsNil() {
		free := t.getFreePos()
		if free == -1 {
			t.rehash(key)
			return t.set(key)
		}
		other := t.mainPosition(t.node[mp].key)
		if other != mp {
			// the node occupying mp is an intruder: relocate it to the
			// free slot and relink its chain to pass through there.
			prev := other
			for t.node[prev].next != mp {
				prev = t.node[prev].next
			}
			t.node[prev].next = free
			t.node[free] = t.node[mp]
			t.node[mp].next = -1
			t.node[mp].val = value.Nil
		} else {
			// mp's occupant is already at its own main position: the new
			// key goes into the free slot, chained behind it.
			t.node[free].next = t.node[mp].next
			t.node[mp].next = free
			mp = free
		}
	}
	t.node[mp].key = key
	t.gc.Barrier(key, value.Nil)
	return &t.node[mp].val
}

// ceilLog2 returns the smallest i with 2^i >= k (0 for k <= 1), the
// histogram bucket an integer key k falls into.
func ceilLog2(k int64) int {
	if k <= 1 {
		return 0
	}
	i := 0
	v := int64(1)
	for v < k {
		v <<= 1
		i++
	}
	return i
}

// countInt adds key to the integer-key histogram nums if it is a positive
// integer no greater than 2^maxBits, returning 1 if it was counted.
func countInt(key value.Value, nums *[maxBits + 1]int) int {
	if k, ok := key.AsInt(); ok && k >= 1 && k <= int64(1)<<maxBits {
		nums[ceilLog2(k)]++
		return 1
	}
	return 0
}

// numUseArray tallies the array region's non-nil entries into nums by
// power-of-two bucket, walked in power-of-two slices, and returns the
// actual count of non-nil entries.
func (t *Table) numUseArray(nums *[maxBits + 1]int) int {
	ause := 0
	i := 1
	ttlg := 1
	for lg := 0; lg <= maxBits; lg++ {
		lc := 0
		lim := ttlg
		if lim > len(t.array) {
			lim = len(t.array)
			if i > lim {
				break
			}
		}
		for ; i <= lim; i++ {
			if !t.array[i-1].IsNil() {
				lc++
			}
		}
		nums[lg] += lc
		ause += lc
		ttlg *= 2
	}
	return ause
}

// numUseHash tallies the hash region's non-nil nodes into nums for those
// keyed by an in-range integer, returning the total live-node count and
// the count that were integer-keyed.
func (t *Table) numUseHash(nums *[maxBits + 1]int) (total, ause int) {
	if t.isDummy {
		return 0, 0
	}
	for i := len(t.node) - 1; i >= 0; i-- {
		n := &t.node[i]
		if !n.val.IsNil() {
			ause += countInt(n.key, nums)
			total++
		}
	}
	return total, ause
}

// computeArraySize scans the histogram to find the largest power-of-two
// array size that would be more than 50% full, returning that size
// and the count of integer keys it would hold. totalInt bounds the scan:
// once the running sum reaches it, every integer key has been accounted
// for and the search stops early.
func computeArraySize(nums *[maxBits + 1]int, totalInt int) (nasize, na int) {
	a := 0
	twotoi := 1
	for i := 0; i <= maxBits; i++ {
		a += nums[i]
		if a > twotoi/2 {
			nasize = twotoi
			na = a
		}
		if a == totalInt {
			break
		}
		twotoi *= 2
	}
	return nasize, na
}

// rehash is invoked when newkey cannot find a free hash slot. It rebuilds
// the integer-key histogram across the array region, the hash region, and
// the key currently being inserted, picks a new density-respecting array
// size, and resizes to it.
func (t *Table) rehash(extraKey value.Value) {
	var nums [maxBits + 1]int
	arrayAuse := t.numUseArray(&nums)
	hashTotal, hashAuse := t.numUseHash(&nums)
	extraAuse := countInt(extraKey, &nums)

	totalIntCandidates := arrayAuse + hashAuse + extraAuse
	totalUse := arrayAuse + hashTotal + 1 // +1: the new key being inserted

	nasize, na := computeArraySize(&nums, totalIntCandidates)
	nhsize := totalUse - na
	t.resize(nasize, nhsize)
}

// resize reallocates the array and hash regions to the given sizes and
// redistributes every live entry. Growing the array happens before the
// hash region is rebuilt so a shrinking hash region always has array room
// to reabsorb nothing it shouldn't; shrinking the array happens only
// after the new (empty) hash region exists, so displaced array entries
// have somewhere to land.
func (t *Table) resize(nasize, nhsize int) {
	oldArray := t.array
	oldNode := t.node
	oldIsDummy := t.isDummy

	if nasize > len(oldArray) {
		t.setArrayVector(nasize)
	}
	t.setNodeVector(nhsize)

	if nasize < len(oldArray) {
		t.setArrayVector(nasize)
		for i := nasize; i < len(oldArray); i++ {
			if !oldArray[i].IsNil() {
				slot := t.set(value.Int(int64(i + 1)))
				*slot = oldArray[i]
			}
		}
	}

	if !oldIsDummy {
		for i := len(oldNode) - 1; i >= 0; i-- {
			n := &oldNode[i]
			if !n.val.IsNil() && !n.key.IsDead() {
				slot := t.set(n.key)
				*slot = n.val
			}
		}
	}
}

// ResizeArray is a public hint to presize the array region to n elements,
// the entry point the ABI exposes as table_resize_array. It does not run
// the density-driven histogram itself: it grows or shrinks the array and
// keeps the hash region's current capacity. When shrinking, entries that
// no longer fit are reinserted into the hash region; if that region is
// full or dummy-backed, that reinsertion goes through the ordinary rehash,
// which can pick a different array size than n.
//
// complexity:
//   - time : O(n)
//   - space: O(n)
func (t *Table) ResizeArray(n int) {
	nhsize := 0
	if !t.isDummy {
		nhsize = len(t.node)
	}
	t.resize(n, nhsize)
}

// Length returns some integer n such that Get(n) is non-nil and
// Get(n+1) is nil, or 0 if Get(1) is nil. A table with holes may satisfy
// this definition at more than one n; Length is free to return any of
// them, matching the boundary definition rather than counting entries.
//
// complexity:
//   - time : O(log n) typical, O(n) on an unbounded probe overflow
//   - space: O(1)
func (t *Table) Length() int {
	j := len(t.array)
	if j > 0 && t.array[j-1].IsNil() {
		i := 0
		for j-i > 1 {
			m := (i + j) / 2
			if t.array[m-1].IsNil() {
				j = m
			} else {
				i = m
			}
		}
		return i
	}
	if t.isDummy {
		return j
	}
	return t.unboundSearch(j)
}

// unboundSearch handles the case where the array region has no boundary:
// it exponentially probes the hash region for an absent index, then
// binary-searches the bracket it finds. If probing overflows (the table
// was built adversarially, with sparse huge integer keys), it falls back
// to a linear scan from 1.
func (t *Table) unboundSearch(j int) int {
	i := j
	j++
	for !t.GetInt(int64(j)).IsNil() {
		i = j
		if j > math.MaxInt32/2 {
			i = 1
			for !t.GetInt(int64(i)).IsNil() {
				i++
			}
			return i - 1
		}
		j *= 2
	}
	for j-i > 1 {
		m := (i + j) / 2
		if t.GetInt(int64(m)).IsNil() {
			j = m
		} else {
			i = m
		}
	}
	return i
}

// findIndex converts a previous iteration key into a linear index over
// the array region followed by the hash region: nil maps to -1; an
// in-range integer maps to its array slot; anything else is located by
// chain walk from its main position. A dead key's node is still matched
// by identity, so a cursor obtained before the collector reclaimed it can
// still resume.
func (t *Table) findIndex(key value.Value) (int, error) {
	if key.IsNil() {
		return -1, nil
	}
	if k, ok := key.AsInt(); ok && k >= 1 && int(k) <= len(t.array) {
		return int(k) - 1, nil
	}
	idx := t.mainPosition(key)
	for {
		n := &t.node[idx]
		if n.key.Equal(key) {
			return len(t.array) + idx, nil
		}
		if n.next == -1 {
			return 0, &luaerr.InvalidNextError{Op: "table.Table.Next"}
		}
		idx = n.next
	}
}

// Next is the stable traversal primitive: given the previously returned
// key (or value.Nil to start), it returns the next live key/value pair in
// array-then-hash order, or ok=false at the end. Setting a slot to nil
// mid-traversal only causes Next to skip it; a structural rehash started
// mid-traversal is undefined behavior, consistent with a host embedding
// this table never rehashing while an iteration cursor is outstanding.
//
// complexity:
//   - time : O(1) amortized per call
//   - space: O(1)
func (t *Table) Next(key value.Value) (k, v value.Value, ok bool, err error) {
	i, err := t.findIndex(key)
	if err != nil {
		return value.Nil, value.Nil, false, err
	}
	i++
	for i < len(t.array) {
		if !t.array[i].IsNil() {
			return value.Int(int64(i + 1)), t.array[i], true, nil
		}
		i++
	}
	j := i - len(t.array)
	for j < len(t.node) {
		n := &t.node[j]
		if !n.val.IsNil() {
			return n.key, n.val, true, nil
		}
		j++
	}
	return value.Nil, value.Nil, false, nil
}

// All returns a range-over-func iterator built atop Next, for idiomatic
// in-process traversal (`for k, v := range t.All() { ... }`). Next
// remains the primitive the ABI exposes; All exists because a single-step
// callback cannot be driven with a for-range loop.
func (t *Table) All() iter.Seq2[value.Value, value.Value] {
	return func(yield func(value.Value, value.Value) bool) {
		cur := value.Nil
		for {
			k, v, ok, err := t.Next(cur)
			if err != nil || !ok {
				return
			}
			if !yield(k, v) {
				return
			}
			cur = k
		}
	}
}

// MarkKeyDead tags the hash node holding key as a dead key: its
// collectable referent has been reclaimed, but the node's chain linkage
// and its identity for comparison purposes are preserved, so an
// in-progress Next traversal can still resume past it. This is a
// gcshim-facing entry point; no operation in this package calls it on its
// own; a real collector implementation calls it during its sweep.
// Reports whether key was found.
func (t *Table) MarkKeyDead(key value.Value) bool {
	if t.isDummy {
		return false
	}
	idx := t.mainPosition(key)
	for {
		n := &t.node[idx]
		if !n.val.IsNil() && n.key.Equal(key) {
			n.key = n.key.MarkDead()
			return true
		}
		if n.next == -1 {
			return false
		}
		idx = n.next
	}
}
