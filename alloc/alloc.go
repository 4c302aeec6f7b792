// Package alloc provides the allocator facade's size-accounting half.
//
// Go already manages memory for table and strpool (both use make/append),
// so there is no raw alloc/realloc/free to wrap. What the facade still owns
// is the error-reporting discipline every resize path needs: reject a
// request before it reaches make if the computed size would overflow or
// exceed a sane ceiling, the same "too big" guard the donor's arrays
// package enforces around its own allocator (arrays.New panics before
// calling into C if the element size is degenerate; CheckSize reports the
// equivalent condition as an error instead of a panic, since memory errors
// here are meant to surface to the host as a recoverable failure mode
// rather than crash the process outright).
package alloc

import (
	"math"

	"github.com/nuralabs/luatable/luaerr"
)

// MaxSize is the largest element count this facade will allow a single
// vector (array region, node region, or string bucket array) to request.
// It stands in for the C original's MAX_SIZET-derived ceiling.
const MaxSize = math.MaxInt32

// CheckSize rejects a resize request of n elements before the caller makes
// the backing slice, reporting a *luaerr.MemoryError for a negative count
// or a count beyond MaxSize.
//
// complexity:
//   - time : O(1)
//   - space: O(1)
func CheckSize(op string, n int) error {
	if n < 0 {
		return &luaerr.MemoryError{Op: op, Reason: "negative size requested"}
	}
	if n > MaxSize {
		return &luaerr.MemoryError{Op: op, Reason: "requested size too big"}
	}
	return nil
}

// MustCheckSize is CheckSize's panicking twin, used on paths that are
// genuinely unrecoverable (a resize triggered internally by rehash, not by
// a caller-suppliable count).
func MustCheckSize(op string, n int) {
	if err := CheckSize(op, n); err != nil {
		panic(err)
	}
}
