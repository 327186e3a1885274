//go:build !alloctag

package bucketalloc

const debugTaggingEnabled = false
