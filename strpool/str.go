// Package strpool provides the string intern pool: a global, per-runtime
// hash table mapping byte sequences to a single canonical, immutable
// string object, so that identity equality always implies byte equality.
//
// # What Is String Interning?
//
// Every string a script touches — literals, keys, concatenation results —
// is looked up here first. If an equal string already exists, its object is
// reused; otherwise a new one is created and remembered. From then on, two
// variables holding "the same" string are holding a pointer to the exact
// same object, so the table package can compare string keys by pointer
// instead of by content.
//
// # Collision Handling
//
// Like the donor's hashmap package, this pool uses separate chaining: each
// bucket is a linked list of every Str whose hash lands there. Unlike the
// table package's hash region (which needs Brent displacement to keep
// lookup O(1) at full load while supporting in-place key installation by
// the GC's write barrier), the string pool is append-only between resizes,
// so plain chaining with doubling is enough — the same trade-off the donor
// makes in hashmap_chaining.go.
//
// # Further Reading
//
// https://en.wikipedia.org/wiki/String_interning
package strpool

import "github.com/nuralabs/luatable/gcshim"

// Str is a single interned string object.
//
//	┌────────┬──────┬───────┬──────────┬─────────────────┐
//	│ length │ hash │ color │ reserved │      bytes      │
//	└────────┴──────┴───────┴──────────┴─────────────────┘
//
// Once created, Bytes never changes: that is what makes pointer identity a
// valid stand-in for content equality.
type Str struct {
	Bytes    string
	Hash     uint32
	Color    gcshim.Color
	Reserved bool // true for language keywords, set by the embedder
}

// Len returns the string's byte length.
func (s *Str) Len() int { return len(s.Bytes) }

// UserData is a finalizable heap object sharing the pool's linkage
// discipline: it is chained onto the pool's userdata list the same way a
// newly interned Str is chained onto its bucket, per the original's
// "link it on udata list (after main thread)".
type UserData struct {
	Size     int
	Env      any // the owning table, typed any to avoid an import cycle
	Color    gcshim.Color
	Finalize bool
	next     *UserData
}
