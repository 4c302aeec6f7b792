// Package gcshim declares the collector contract that table and strpool
// call into, without depending on any actual garbage collector.
//
// # Why This Exists
//
// The hybrid table and the string pool both need to cooperate with a
// garbage collector they do not own: they mark newly allocated objects
// with the collector's current "white" color, invoke a write barrier when
// a key is installed into the hash region (because keys are GC roots once
// reachable from a table), and must not resize the string pool while the
// collector is mid-sweep over its buckets. None of that requires knowing
// how the collector actually marks or sweeps — only this contract.
//
// Collector is supplied by the embedding runtime. NoGC satisfies it for
// every caller (tests, the example driver) that has no real collector.
package gcshim

import "github.com/nuralabs/luatable/value"

// Color is an opaque GC mark used only for equality comparisons by table
// and strpool; its bit layout is entirely the collector's business.
type Color uint8

// Collector is the minimal surface table and strpool need from a garbage
// collector.
type Collector interface {
	// CurrentWhite returns the color newly allocated objects should carry.
	CurrentWhite() Color
	// IsDead reports whether an object marked with c is unreachable and
	// due for collection.
	IsDead(c Color) bool
	// ChangeWhite flips a dead object's color back to live, the
	// resurrection path strpool.Pool.Intern takes on a cache hit against
	// an otherwise-dead string.
	ChangeWhite(c Color) Color
	// Barrier is invoked whenever a key is installed into a table's hash
	// region, mirroring the collector's write-barrier hook.
	Barrier(key, val value.Value)
	// SweepingStrings reports whether the collector is currently sweeping
	// the string pool's buckets; strpool.Pool.resize is a no-op while
	// true, since a resize would invalidate the sweep's cursor.
	SweepingStrings() bool
}

type noGC struct{}

func (noGC) CurrentWhite() Color              { return 0 }
func (noGC) IsDead(Color) bool                { return false }
func (noGC) ChangeWhite(c Color) Color        { return c }
func (noGC) Barrier(value.Value, value.Value) {}
func (noGC) SweepingStrings() bool            { return false }

// NoGC returns a Collector stand-in for callers with no real garbage
// collector: nothing is ever dead, nothing is ever sweeping.
func NoGC() Collector { return noGC{} }
