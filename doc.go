// Package bucketalloc implements a segregated-fit bucketed heap allocator
// over a single contiguous pre-reserved arena.
//
// # Overview
//
// The arena is partitioned into six power-of-two size classes (32, 64, 128,
// 256, 512, 1024 bytes). Each class owns a fixed share of the arena and a
// free list of run-length-encoded extents, stored in a tracker array that
// precedes all payload regions. Allocation picks a size class, first-fit
// scans the class's free list, and carves bins from the chosen extent.
// Release recovers the bin range from an in-band header and coalesces it
// back into the free list, extending or merging adjacent extents so the
// free list never describes two touching runs as separate entries.
//
// # Basic usage
//
//	a, err := bucketalloc.NewArena(bucketalloc.Config{ArenaSize: 64 << 20})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ptr := a.Allocate(40, bucketalloc.HintNone, bucketalloc.BaseAlign, 0)
//	defer a.Release(ptr)
//
// # Scoped allocation
//
// A Scope releases every allocation made through it, in reverse order, when
// closed:
//
//	scope := bucketalloc.NewScope(a)
//	defer scope.Close()
//	p := scope.Alloc(128, bucketalloc.HintNone, bucketalloc.BaseAlign, 0)
//
// # Thread model
//
// One Arena is single-threaded; concurrent access to the same Arena from
// multiple goroutines is undefined behavior. Registry exposes the
// distinct-per-thread-arena pattern as a legacy, id-indexed convenience on
// top of caller-owned Arena values.
//
// # What this package does not do
//
// It does not return memory to the OS, compact or relocate live
// allocations, guarantee alignment stronger than the configured base
// alignment, or serve allocations larger than the 1024-byte class. Obtaining
// backing memory from the OS, debug reporting, and status rendering are
// pluggable via ArenaProvider, DebugReporter, and StatusRenderer.
package bucketalloc
