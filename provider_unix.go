//go:build unix

package bucketalloc

import "golang.org/x/sys/unix"

// unixMmapProvider backs the arena with an anonymous, private mmap region
// instead of a Go-heap slice, so the arena is a real OS-obtained contiguous
// region outside GC scanning. Grounded on golang.org/x/sys/unix, a direct
// dependency used for raw syscalls elsewhere in the example pack. The arena
// is process-lifetime (returning memory to the OS is a non-goal), so the
// mapping is intentionally never munmap'd.
type unixMmapProvider struct{}

func defaultProvider() ArenaProvider { return unixMmapProvider{} }

func (unixMmapProvider) Reserve(size uint64) ([]byte, error) {
	if size == 0 {
		return nil, allocFailureErrorf("requested arena size is zero")
	}
	buf, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, allocFailureErrorf("mmap(%d) failed: %v", size, err)
	}
	return buf, nil
}
