package bucketalloc

import "unsafe"

// Scope is a bounded-depth stack of allocations released in reverse order
// on Close. It is a thin convenience over Arena: it does not own any memory
// itself, it only remembers what to release.
type Scope struct {
	arena *Arena
	stack [DefaultScopeDepth]unsafe.Pointer
	depth int
}

// NewScope opens a scope against arena. Scopes do not nest arenas: closing
// one only releases the pointers it tracked.
func NewScope(arena *Arena) *Scope {
	return &Scope{arena: arena}
}

// Alloc allocates from the scope's arena and records the pointer for
// release on Close. Overflowing the bounded stack returns nil without
// allocating from the arena at all.
func (s *Scope) Alloc(byteCount uint64, hint Hint, payloadAlignment uint32, debugTag uint64) unsafe.Pointer {
	if s.depth == DefaultScopeDepth {
		return nil
	}

	ptr := s.arena.Allocate(byteCount, hint, payloadAlignment, debugTag)
	if ptr == nil {
		return nil
	}
	s.stack[s.depth] = ptr
	s.depth++
	return ptr
}

// Close releases every pointer the scope tracked, in reverse allocation
// order, and resets the scope so it can be reused.
func (s *Scope) Close() {
	for i := s.depth - 1; i >= 0; i-- {
		s.arena.Release(s.stack[i])
		s.stack[i] = nil
	}
	s.depth = 0
}
