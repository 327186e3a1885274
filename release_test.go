package bucketalloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseNilIsNoop(t *testing.T) {
	a := newTestArena(t)
	assert.False(t, a.Release(nil))
}

func TestReleaseCaseAEmptyRegion(t *testing.T) {
	tr := newTestTracker(100)
	tr.removeAt(0)
	require.Equal(t, uint32(0), tr.trackedCount)

	a := &Arena{}
	a.releaseInto(tr, makeHeader(10, 0, 5))

	require.Equal(t, uint32(1), tr.trackedCount)
	assert.Equal(t, uint32(10), tr.entry(0).startBin())
}

func TestReleaseCaseBCoalesceTail(t *testing.T) {
	tr := newTestTracker(100)
	tr.removeAt(0)
	tr.insertAt(0, makeHeader(10, 0, 10)) // [10,20)

	a := &Arena{}
	a.releaseInto(tr, makeHeader(20, 0, 5)) // [20,25) touches the tail

	require.Equal(t, uint32(1), tr.trackedCount)
	e := tr.entry(0)
	assert.Equal(t, uint32(10), e.startBin())
	assert.Equal(t, uint32(15), e.runLength)
}

func TestReleaseCaseBCoalesceHead(t *testing.T) {
	tr := newTestTracker(100)
	tr.removeAt(0)
	tr.insertAt(0, makeHeader(10, 0, 10)) // [10,20)

	a := &Arena{}
	a.releaseInto(tr, makeHeader(5, 0, 5)) // [5,10) touches the head

	require.Equal(t, uint32(1), tr.trackedCount)
	e := tr.entry(0)
	assert.Equal(t, uint32(5), e.startBin())
	assert.Equal(t, uint32(15), e.runLength)
}

func TestReleaseCaseBDisjointInsertsBefore(t *testing.T) {
	tr := newTestTracker(100)
	tr.removeAt(0)
	tr.insertAt(0, makeHeader(50, 0, 10))

	a := &Arena{}
	a.releaseInto(tr, makeHeader(10, 0, 5))

	require.Equal(t, uint32(2), tr.trackedCount)
	assert.Equal(t, uint32(10), tr.entry(0).startBin())
	assert.Equal(t, uint32(50), tr.entry(1).startBin())
}

func TestReleaseCaseBDisjointInsertsAfter(t *testing.T) {
	tr := newTestTracker(100)
	tr.removeAt(0)
	tr.insertAt(0, makeHeader(10, 0, 10))

	a := &Arena{}
	a.releaseInto(tr, makeHeader(50, 0, 5))

	require.Equal(t, uint32(2), tr.trackedCount)
	assert.Equal(t, uint32(10), tr.entry(0).startBin())
	assert.Equal(t, uint32(50), tr.entry(1).startBin())
}

// TestReleaseCaseCAppendsPastLastEntry exercises the binary-search fallback
// for a freed extent that lies entirely after every tracked entry: the
// worked example that originally exposed a stale-index bug (the insertion
// used to land one slot too early, reordering the tracker).
func TestReleaseCaseCAppendsPastLastEntry(t *testing.T) {
	tr := newTestTracker(100)
	tr.removeAt(0)
	tr.insertAt(0, makeHeader(10, 0, 10)) // [10,20)
	tr.insertAt(1, makeHeader(30, 0, 10)) // [30,40)

	a := &Arena{}
	a.releaseInto(tr, makeHeader(45, 0, 5)) // [45,50) after everything

	require.Equal(t, uint32(3), tr.trackedCount)
	assert.Equal(t, uint32(10), tr.entry(0).startBin())
	assert.Equal(t, uint32(30), tr.entry(1).startBin())
	assert.Equal(t, uint32(45), tr.entry(2).startBin())
}

func TestReleaseCaseCInsertsBeforeFirstEntry(t *testing.T) {
	tr := newTestTracker(100)
	tr.removeAt(0)
	tr.insertAt(0, makeHeader(30, 0, 10)) // [30,40)
	tr.insertAt(1, makeHeader(60, 0, 10)) // [60,70)

	a := &Arena{}
	a.releaseInto(tr, makeHeader(0, 0, 5)) // [0,5) before everything

	require.Equal(t, uint32(3), tr.trackedCount)
	assert.Equal(t, uint32(0), tr.entry(0).startBin())
	assert.Equal(t, uint32(30), tr.entry(1).startBin())
	assert.Equal(t, uint32(60), tr.entry(2).startBin())
}

func TestReleaseCaseCCoalescesWithLastEntry(t *testing.T) {
	tr := newTestTracker(100)
	tr.removeAt(0)
	tr.insertAt(0, makeHeader(10, 0, 10)) // [10,20)
	tr.insertAt(1, makeHeader(30, 0, 10)) // [30,40)

	a := &Arena{}
	a.releaseInto(tr, makeHeader(40, 0, 5)) // touches the tail of [30,40)

	require.Equal(t, uint32(2), tr.trackedCount)
	assert.Equal(t, uint32(30), tr.entry(1).startBin())
	assert.Equal(t, uint32(15), tr.entry(1).runLength)
}

func TestReleaseCaseCBracketsAndDoubleCoalesces(t *testing.T) {
	tr := newTestTracker(100)
	tr.removeAt(0)
	tr.insertAt(0, makeHeader(10, 0, 10)) // [10,20)
	tr.insertAt(1, makeHeader(25, 0, 5))  // [25,30), touches the freed extent's end
	tr.insertAt(2, makeHeader(60, 0, 10)) // [60,70)

	a := &Arena{}
	a.releaseInto(tr, makeHeader(20, 0, 5)) // [20,25) bridges [10,20) and [25,30)

	require.Equal(t, uint32(2), tr.trackedCount)
	assert.Equal(t, uint32(10), tr.entry(0).startBin())
	assert.Equal(t, uint32(20), tr.entry(0).runLength)
	assert.Equal(t, uint32(60), tr.entry(1).startBin())
}

func TestAllocateReleaseRoundTripRestoresFullExtent(t *testing.T) {
	a := newTestArena(t)
	tr := a.trackers[0]
	original := tr.entry(0)

	p := a.Allocate(8, StrictSize|Class32, BaseAlign, 0)
	require.NotNil(t, p)
	require.True(t, a.Release(p))

	require.Equal(t, uint32(1), tr.trackedCount)
	assert.Equal(t, original, tr.entry(0))
}
