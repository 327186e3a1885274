package bucketalloc

import (
	"errors"
	"fmt"
)

// Sentinel errors. LayoutError, BadAlignment, and AllocFailure are
// programmer/environment errors: Allocate, MustNewArena, and Registry.Init
// report them to a DebugReporter and panic, matching this package's
// convention that misuse (like a bad payload alignment) is an abort, not a
// recoverable error; NewArena returns them as plain errors. NoSpace and ExcessFragmentation are carried as QueryResult status
// flags rather than errors, since a full free list is an expected runtime
// outcome, not a programmer mistake.
var (
	ErrLayout       = errors.New("bucketalloc: layout error")
	ErrBadAlignment = errors.New("bucketalloc: bad alignment")
	ErrAllocFailure = errors.New("bucketalloc: backing allocation failed")
)

func layoutErrorf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrLayout)
}

func badAlignmentErrorf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrBadAlignment)
}

func allocFailureErrorf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrAllocFailure)
}
