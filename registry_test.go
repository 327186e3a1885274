package bucketalloc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryInitAllocFreeRoundTrip(t *testing.T) {
	var r Registry
	require.NoError(t, r.Init(DefaultArenaID, 1<<20))

	p, err := r.Alloc(DefaultArenaID, 8, StrictSize|Class32, BaseAlign, 0)
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.True(t, r.Free(DefaultArenaID, p))
}

func TestRegistryRejectsOutOfRangeID(t *testing.T) {
	var r Registry
	assert.Error(t, r.Init(RegistryCapacity, 1<<20))
	assert.Error(t, r.Init(-1, 1<<20))
}

func TestRegistryInitAbortsOnLayoutError(t *testing.T) {
	var r Registry
	assert.Panics(t, func() {
		// Exceeds the 28-bit per-class bin-index budget computeLayout enforces.
		_ = r.Init(DefaultArenaID, uint64(1)<<40)
	})
}

func TestRegistryAllocBeforeInitIsError(t *testing.T) {
	var r Registry
	_, err := r.Alloc(1, 8, HintNone, BaseAlign, 0)
	assert.Error(t, err)
}

func TestRegistryQueryAndPrintStatus(t *testing.T) {
	var r Registry
	require.NoError(t, r.Init(DefaultArenaID, 1<<20))

	res := r.Query(DefaultArenaID, 16, HintNone)
	assert.True(t, res.Succeeded())

	var buf bytes.Buffer
	require.NoError(t, r.PrintStatus(DefaultArenaID, &buf))
	assert.Contains(t, buf.String(), "arena:")
}

func TestRegistryHoldsDistinctArenasPerID(t *testing.T) {
	var r Registry
	require.NoError(t, r.Init(0, 1<<20))
	require.NoError(t, r.Init(1, 1<<20))

	p0, err := r.Alloc(0, 8, StrictSize|Class32, BaseAlign, 0)
	require.NoError(t, err)
	require.NotNil(t, p0)

	p1, err := r.Alloc(1, 8, StrictSize|Class32, BaseAlign, 0)
	require.NoError(t, err)
	require.NotNil(t, p1)

	assert.True(t, r.Free(0, p0))
	assert.True(t, r.Free(1, p1))
}
