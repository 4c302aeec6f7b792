package alloc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuralabs/luatable/alloc"
	"github.com/nuralabs/luatable/luaerr"
)

func TestCheckSizeRejectsNegative(t *testing.T) {
	err := alloc.CheckSize("test.Op", -1)
	require.Error(t, err)
	var memErr *luaerr.MemoryError
	assert.ErrorAs(t, err, &memErr)
}

func TestCheckSizeRejectsTooBig(t *testing.T) {
	err := alloc.CheckSize("test.Op", alloc.MaxSize+1)
	require.Error(t, err)
	var memErr *luaerr.MemoryError
	assert.ErrorAs(t, err, &memErr)
}

func TestCheckSizeAcceptsInRange(t *testing.T) {
	assert.NoError(t, alloc.CheckSize("test.Op", 0))
	assert.NoError(t, alloc.CheckSize("test.Op", alloc.MaxSize))
}

func TestMustCheckSizePanicsOnOverflow(t *testing.T) {
	assert.Panics(t, func() {
		alloc.MustCheckSize("test.Op", alloc.MaxSize+1)
	})
}
