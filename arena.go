package bucketalloc

import (
	"io"
	"unsafe"
)

// Arena owns one contiguous backing buffer, partitioned into a tracker
// array followed by six payload regions, one per size class. An Arena is
// single-threaded: concurrent use of the same Arena from multiple
// goroutines is undefined behavior (see Registry for distinct
// per-goroutine/per-thread arenas).
type Arena struct {
	buf      []byte
	layout   arenaLayout
	trackers [NumClasses]*trackerRegion
	cfg      Config

	debugTags map[uintptr]uint64 // populated only when debugTaggingEnabled
}

// NewArena reserves a backing arena sized per cfg and initializes all six
// size classes' free lists to a single entry covering their whole region.
func NewArena(cfg Config) (*Arena, error) {
	cfg = cfg.withDefaults()

	lay, err := computeLayout(cfg.ArenaSize, cfg.ClassShares, BinSizes, HeaderSize, cfg.BaseAlign)
	if err != nil {
		return nil, err
	}

	buf, err := cfg.Provider.Reserve(lay.totalSize)
	if err != nil {
		return nil, allocFailureErrorf("arena provider failed: %v", err)
	}
	if buf == nil {
		return nil, allocFailureErrorf("arena provider returned no region")
	}

	a := &Arena{buf: buf, layout: lay, cfg: cfg}
	if debugTaggingEnabled {
		a.debugTags = make(map[uintptr]uint64)
	}

	for i := 0; i < NumClasses; i++ {
		geom := lay.classes[i]
		region := buf[geom.trackerOffset : geom.trackerOffset+uint64(geom.binCount)*HeaderSize]
		t := newTrackerRegion(region, uint8(i), geom.binCount)
		t.initFull()
		a.trackers[i] = t
	}

	return a, nil
}

// MustNewArena is like NewArena but reports construction failures to the
// configured DebugReporter and panics, matching this package's convention
// that LayoutError/AllocFailure are aborts, not recoverable errors.
func MustNewArena(cfg Config) *Arena {
	a, err := NewArena(cfg)
	if err != nil {
		cfg.withDefaults().Reporter.Abort(err)
	}
	return a
}

func (a *Arena) payloadAddr(classIndex int, binIndex uint32) unsafe.Pointer {
	geom := a.layout.classes[classIndex]
	off := geom.regionOffset + uint64(binIndex)*uint64(geom.binWidth)
	return unsafe.Pointer(&a.buf[off])
}

// Snapshot returns a point-in-time read of every class's occupancy.
func (a *Arena) Snapshot() ArenaSnapshot {
	snap := ArenaSnapshot{TotalSize: a.layout.totalSize}
	for i, t := range a.trackers {
		geom := a.layout.classes[i]
		snap.Classes[i] = ClassSnapshot{
			BinSize:      geom.binSize,
			BinCount:     geom.binCount,
			TrackedCount: t.trackedCount,
			BinOccupancy: t.binOccupancy,
			LargestRun:   t.largestRun(),
		}
	}
	return snap
}

// PrintStatus renders a.Snapshot() to w via the arena's configured
// StatusRenderer.
func (a *Arena) PrintStatus(w io.Writer) error {
	return a.cfg.Renderer.Render(w, a.Snapshot())
}
