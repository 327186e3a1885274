//go:build alloctag

package bucketalloc

// debugTaggingEnabled turns on the per-allocation debugTag bookkeeping in
// Arena, at the cost of one map write per Allocate/Release. Build with
// -tags alloctag to enable it.
const debugTaggingEnabled = true
