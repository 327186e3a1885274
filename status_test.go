package bucketalloc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassSnapshotFragmentationRatio(t *testing.T) {
	full := ClassSnapshot{BinOccupancy: 10, LargestRun: 10}
	assert.Equal(t, 0.0, full.FragmentationRatio())

	split := ClassSnapshot{BinOccupancy: 10, LargestRun: 2}
	assert.InDelta(t, 0.8, split.FragmentationRatio(), 1e-9)

	empty := ClassSnapshot{BinOccupancy: 0, LargestRun: 0}
	assert.Equal(t, 0.0, empty.FragmentationRatio())
}

func TestArenaSnapshotAndPrintStatus(t *testing.T) {
	a := newTestArena(t)
	snap := a.Snapshot()
	require.Equal(t, a.layout.totalSize, snap.TotalSize)

	for i, c := range snap.Classes {
		assert.Equal(t, BinSizes[i], c.BinSize)
		assert.Equal(t, uint32(1), c.TrackedCount, "freshly constructed arena has one full-range extent per class")
		assert.Equal(t, c.BinCount, c.BinOccupancy)
	}

	var buf bytes.Buffer
	require.NoError(t, a.PrintStatus(&buf))
	assert.Contains(t, buf.String(), "class 0")
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.00 KiB", formatBytes(1024))
	assert.Equal(t, "1.00 MiB", formatBytes(1<<20))
}
