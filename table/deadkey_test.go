package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuralabs/luatable/table"
	"github.com/nuralabs/luatable/value"
)

// MarkKeyDead is the gcshim-facing entry point a real collector calls
// during its sweep; no operation in this package calls it on its own. This
// exercises it with a stand-in sweep, confirming Next still traverses the
// chain correctly afterward even with a dead key sitting mid-chain.
func TestMarkKeyDeadPreservesChainTraversal(t *testing.T) {
	tb := table.New(0, 0)

	strs := make([]*string, 6)
	for i := range strs {
		s := string(rune('a' + i))
		strs[i] = &s
		slot, err := tb.Set(value.StringRef(&s))
		require.NoError(t, err)
		*slot = value.Int(int64(i))
	}

	found := tb.MarkKeyDead(value.StringRef(strs[2]))
	require.True(t, found)

	// a fresh lookup by the same identity no longer matches: the key is
	// dead even though its node (and the value stored there) is untouched.
	assert.True(t, tb.Get(value.StringRef(strs[2])).IsNil())

	visited := map[*string]bool{}
	cur := value.Nil
	for {
		k, _, ok, err := tb.Next(cur)
		require.NoError(t, err)
		if !ok {
			break
		}
		if ref, okRef := k.Ref().(*string); okRef {
			visited[ref] = true
		}
		cur = k
	}

	// every key, including the dead one, is still reachable by traversal:
	// the node's chain linkage (and its stored value) survives the
	// collector tagging its key dead.
	for i, s := range strs {
		assert.True(t, visited[s], "key %d not visited after a dead key was marked mid-chain", i)
	}
}

func TestMarkKeyDeadReportsMissingKey(t *testing.T) {
	tb := table.New(0, 0)
	_, err := tb.Set(value.Int(1))
	require.NoError(t, err)

	s := "never-inserted"
	found := tb.MarkKeyDead(value.StringRef(&s))
	assert.False(t, found)
}

func TestMarkKeyDeadOnEmptyDummyTable(t *testing.T) {
	tb := table.New(0, 0)
	s := "x"
	assert.False(t, tb.MarkKeyDead(value.StringRef(&s)))
}
