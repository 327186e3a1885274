//go:build !unix

package bucketalloc

// defaultProvider falls back to a Go-heap []byte on platforms without the
// "unix" build tag (e.g. Windows, wasm): golang.org/x/sys/unix has no mmap
// there, so there is no portable OS-level equivalent in the pack to wire.
func defaultProvider() ArenaProvider { return makeSliceProvider{} }
