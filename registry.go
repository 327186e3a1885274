package bucketalloc

import (
	"fmt"
	"io"
	"unsafe"
)

// RegistryCapacity is the fixed number of distinct per-thread arenas a
// Registry can hold.
const RegistryCapacity = 8

// DefaultArenaID documents the conventional threadID an embedder uses when
// it has no real notion of distinct threads. threadID stays a required
// parameter on every Registry method rather than being hidden behind a
// zero-value convenience wrapper, so callers that do track distinct thread
// ids aren't stuck with an implicit default they can't override.
const DefaultArenaID = 0

// Registry is a thin legacy-compatibility wrapper: a fixed-size array of
// *Arena indexed by threadID. A reimplementation that does not need to
// match this array-indexed API should simply own Arena values directly
// instead of going through a Registry.
type Registry struct {
	arenas [RegistryCapacity]*Arena
}

func (r *Registry) checkID(arenaID int) error {
	if arenaID < 0 || arenaID >= RegistryCapacity {
		return fmt.Errorf("bucketalloc: arenaID %d out of range [0,%d)", arenaID, RegistryCapacity)
	}
	return nil
}

// Init constructs the arena at arenaID, sized to targetSize and configured
// by opts, and overwrites any arena already installed at that slot. It
// returns an error if arenaID is out of range. A layout or backing
// allocation failure is reported to the resolved Config's DebugReporter and
// panics, matching MustNewArena and Allocate's handling of programmer/
// environment errors.
func (r *Registry) Init(arenaID int, targetSize uint64, opts ...Option) error {
	if err := r.checkID(arenaID); err != nil {
		return err
	}

	cfg := Config{ArenaSize: targetSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	a, err := NewArena(cfg)
	if err != nil {
		cfg.withDefaults().Reporter.Abort(err)
	}
	r.arenas[arenaID] = a
	return nil
}

// Alloc allocates from the arena at arenaID.
func (r *Registry) Alloc(arenaID int, bytes uint64, hint Hint, payloadAlignment uint32, debugTag uint64) (unsafe.Pointer, error) {
	if err := r.checkID(arenaID); err != nil {
		return nil, err
	}
	a := r.arenas[arenaID]
	if a == nil {
		return nil, fmt.Errorf("bucketalloc: arena %d not initialized", arenaID)
	}
	return a.Allocate(bytes, hint, payloadAlignment, debugTag), nil
}

// Free releases ptr back to the arena at arenaID.
func (r *Registry) Free(arenaID int, ptr unsafe.Pointer) bool {
	if err := r.checkID(arenaID); err != nil {
		return false
	}
	a := r.arenas[arenaID]
	if a == nil {
		return false
	}
	return a.Release(ptr)
}

// Query runs the query engine against the arena at arenaID without
// allocating.
func (r *Registry) Query(arenaID int, bytes uint64, hint Hint) QueryResult {
	if err := r.checkID(arenaID); err != nil {
		return QueryResult{Status: StatusNoFreeSpace}
	}
	a := r.arenas[arenaID]
	if a == nil {
		return QueryResult{Status: StatusNoFreeSpace}
	}
	return a.Query(bytes, hint)
}

// PrintStatus renders the arena at arenaID's snapshot to w via its
// configured StatusRenderer.
func (r *Registry) PrintStatus(arenaID int, w io.Writer) error {
	if err := r.checkID(arenaID); err != nil {
		return err
	}
	a := r.arenas[arenaID]
	if a == nil {
		return fmt.Errorf("bucketalloc: arena %d not initialized", arenaID)
	}
	return a.cfg.Renderer.Render(w, a.Snapshot())
}
