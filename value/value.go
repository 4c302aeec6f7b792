// Package value provides the tagged runtime value shared by the table and
// string-intern packages.
//
// # What is a Tagged Value?
//
// A dynamically typed runtime needs one Go type that can hold a number, a
// string, a boolean, nil, or a handle to a heap object, and still let code
// ask "what kind is this?" at runtime. Go has no native sum type, so Value
// carries an explicit Kind discriminant alongside a numeric field and an any
// field, picking whichever is meaningful for that Kind.
//
// # Why Not Use any Directly?
//
// A bare any loses the distinction the table needs most: numbers compare by
// numeric value (with -0 folded to 0), strings compare by pool identity, and
// everything else compares by raw reference. A generic interface equality
// check conflates all of these. Value.Equal and Value.HashKey encode the
// per-Kind rule once, so callers never have to reimplement it.
//
// # Further Reading
//
// https://en.wikipedia.org/wiki/Tagged_union
package value

import (
	"math"
	"unsafe"
)

// Kind discriminates the variant a Value currently holds.
type Kind uint8

const (
	KindNil Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindLightUserData
	KindUserData
	KindTable
	KindFunction
	KindThread
)

// String returns a human-readable name for k, used by table/strpool's
// panic messages and test failure output.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindLightUserData:
		return "light-userdata"
	case KindUserData:
		return "userdata"
	case KindTable:
		return "table"
	case KindFunction:
		return "function"
	case KindThread:
		return "thread"
	default:
		return "unknown"
	}
}

// Value is a single tagged runtime value.
//
//	┌──────┬──────────┬────────────────────┐
//	│ Kind │  number  │        ref         │
//	└──────┴──────────┴────────────────────┘
//
// number holds the payload for KindNumber (a float64) and KindBoolean
// (0 or 1). ref holds the payload for every pointer-bearing Kind: the
// *strpool.Str for KindString, a table/function/thread/userdata handle, or
// an unsafe.Pointer for KindLightUserData. Value is comparable under Go's
// built-in == (it can be a map key), but == also compares the dead-key
// flag and panics on a non-comparable ref payload, so Equal is the
// per-Kind key rule the table uses instead.
type Value struct {
	Kind   Kind
	number float64
	ref    any
	// dead marks a hash node's key whose collectable referent has been
	// reclaimed by the collector. The node's chain linkage and the key's
	// identity (for comparison purposes) are preserved; only its
	// liveness changes. See Table.MarkKeyDead.
	dead bool
}

// Nil is the absent-value sentinel. The zero Value already equals Nil.
var Nil = Value{Kind: KindNil}

// IsNil reports whether v represents the absence of a key or value.
func (v Value) IsNil() bool { return v.Kind == KindNil }

// Bool constructs a boolean Value.
func Bool(b bool) Value {
	n := 0.0
	if b {
		n = 1.0
	}
	return Value{Kind: KindBoolean, number: n}
}

// AsBool returns the boolean payload; only meaningful if Kind == KindBoolean.
func (v Value) AsBool() bool { return v.number != 0 }

// Number constructs a numeric Value. -0 is canonicalized to 0 so that two
// keys that differ only in the sign of zero hash and compare identically,
// matching the main-position invariant's numeric equality rule.
func Number(n float64) Value {
	if n == 0 {
		n = 0
	}
	return Value{Kind: KindNumber, number: n}
}

// AsNumber returns the numeric payload; only meaningful if Kind == KindNumber.
func (v Value) AsNumber() float64 { return v.number }

// IsNaN reports whether v is a number Value holding NaN. Setting a table
// entry keyed by a NaN is invalid: NaN never equals itself, so it could
// never be looked back up.
func (v Value) IsNaN() bool {
	return v.Kind == KindNumber && math.IsNaN(v.number)
}

// Int constructs a numeric Value from an integer key, the common case for
// the table's array-region fast path.
func Int(n int64) Value { return Number(float64(n)) }

// AsInt reports whether v holds a number representable exactly as an
// integer, returning that integer and true if so. This is how the table
// decides whether a key belongs in the array region.
func (v Value) AsInt() (int64, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	i := int64(v.number)
	if float64(i) != v.number {
		return 0, false
	}
	return i, true
}

// StringRef constructs a Value referring to an interned string object. The
// ref field is an any so this package never imports strpool (strpool
// imports value, not the reverse); callers pass the pool's *Str directly.
func StringRef(s any) Value { return Value{Kind: KindString, ref: s} }

// Ref returns the pointer-bearing payload for any non-numeric, non-nil,
// non-boolean Kind.
func (v Value) Ref() any { return v.ref }

// LightUserData constructs a Value wrapping an opaque pointer that the
// core never dereferences, only compares by identity.
func LightUserData(p unsafe.Pointer) Value {
	return Value{Kind: KindLightUserData, ref: p}
}

// Object constructs a Value of the given pointer-bearing Kind wrapping an
// arbitrary heap reference (table, function, thread, userdata).
func Object(k Kind, ref any) Value {
	return Value{Kind: k, ref: ref}
}

// MarkDead returns a copy of v tagged as a dead key: its referent was
// reclaimed by the collector, but Equal/HashKey still treat it as the same
// key, so a cursor obtained before the collection still finds the node.
// Only gcshim-facing code calls this (see table.Table.MarkKeyDead).
func (v Value) MarkDead() Value {
	v.dead = true
	return v
}

// IsDead reports whether v is a dead-key tombstone.
func (v Value) IsDead() bool { return v.dead }

// Equal implements the main-position invariant's per-Kind equality rule:
// numbers and booleans compare by numeric value (so NaN never equals
// itself), strings by pool identity (pointer
// equality on ref, since both sides are always the canonical interned
// object), everything else by raw reference equality.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNil:
		return true
	case KindBoolean, KindNumber:
		return v.number == o.number
	default:
		return v.ref == o.ref
	}
}

// HashKey returns a 64-bit hash consistent with Equal: equal values always
// hash equal. Non-comparable ref payloads (e.g. light-userdata over a
// pointer) hash on the pointer bits.
func (v Value) HashKey() uint64 {
	switch v.Kind {
	case KindNil:
		return 0
	case KindBoolean:
		if v.number != 0 {
			return 1
		}
		return 0
	case KindNumber:
		return math.Float64bits(v.number)
	case KindLightUserData:
		p, _ := v.ref.(unsafe.Pointer)
		return uint64(uintptr(p))
	default:
		// String identity and every other heap reference hash on the
		// interface's data pointer; see table.mainPosition for how this
		// combines with the odd-modulus rule for non-string keys.
		type iface struct {
			typ, data unsafe.Pointer
		}
		i := (*iface)(unsafe.Pointer(&v.ref))
		return uint64(uintptr(i.data))
	}
}
