package bucketalloc

import "unsafe"

// Release returns a previously allocated payload to its class's free list,
// coalescing it with whichever neighboring free extents it touches. It
// returns false only for a nil pointer; passing a pointer not obtained from
// this Arena's Allocate is undefined behavior.
func (a *Arena) Release(ptr unsafe.Pointer) bool {
	if ptr == nil {
		return false
	}

	headerAddr := unsafe.Add(ptr, -HeaderSize)
	h := decodeHeader(unsafe.Slice((*byte)(headerAddr), HeaderSize))
	class := h.class()
	t := a.trackers[class]

	if debugTaggingEnabled {
		delete(a.debugTags, uintptr(ptr))
	}

	a.releaseInto(t, binHeader{indexAndClass: h.indexAndClass &^ 0xF | uint32(class), runLength: h.runLength})
	a.cfg.Logger.Debug("bucketalloc: released", "class", class, "bin", h.startBin(), "n", h.runLength)
	return true
}

// releaseInto inserts a freed extent into t, coalescing with whichever
// adjacent extents it touches. An empty region just records the extent; a
// single-entry region is handled directly; anything larger dispatches to
// the binary-search placement below.
func (a *Arena) releaseInto(t *trackerRegion, freed binHeader) {
	switch t.trackedCount {
	case 0:
		t.insertAt(0, freed)
	case 1:
		a.releaseSingle(t, freed)
	default:
		a.releaseBinarySearch(t, freed)
	}
}

// releaseSingle implements Case B: the region has exactly one entry.
func (a *Arena) releaseSingle(t *trackerRegion, freed binHeader) {
	cur := t.entry(0)
	headGap := int64(cur.startBin()) - int64(freed.end())
	tailGap := int64(freed.startBin()) - int64(cur.end())

	switch {
	case headGap == 0:
		merged := cur.withStart(freed.startBin())
		merged.runLength = cur.runLength + freed.runLength
		t.setEntry(0, merged)
		t.binOccupancy += freed.runLength
	case tailGap == 0:
		merged := cur
		merged.runLength = cur.runLength + freed.runLength
		t.setEntry(0, merged)
		t.binOccupancy += freed.runLength
	case headGap > 0:
		t.insertAt(0, freed)
	default:
		t.insertAt(1, freed)
	}
}

// releaseBinarySearch implements Case C: binary search over adjacent-entry
// windows for the insertion position, with single- or double-coalesce when
// the freed extent touches one or both neighbors.
func (a *Arena) releaseBinarySearch(t *trackerRegion, freed binHeader) {
	head, tail := uint32(0), t.trackedCount-1

	for head < tail {
		pivot := head + (tail-head)/2
		left := t.entry(pivot)
		right := t.entry(pivot + 1)

		leftDist := int64(freed.startBin()) - int64(left.end())
		rightDist := int64(right.startBin()) - int64(freed.end())

		switch {
		case leftDist >= 0 && rightDist >= 0:
			a.placeBetween(t, pivot, left, right, freed, leftDist == 0, rightDist == 0)
			return
		case leftDist >= 0:
			head = pivot + 1
		default:
			tail = pivot
		}
	}

	a.releaseBoundary(t, freed)
}

// placeBetween resolves the window [pivot, pivot+1) once the freed extent
// has been located between the two neighbors.
func (a *Arena) placeBetween(t *trackerRegion, pivot uint32, left, right, freed binHeader, touchesLeft, touchesRight bool) {
	switch {
	case touchesLeft && touchesRight:
		merged := left
		merged.runLength = left.runLength + freed.runLength + right.runLength
		t.setEntry(pivot, merged)
		t.shiftLeftFrom(pivot + 1)
		t.trackedCount--
		t.binOccupancy += freed.runLength
	case touchesLeft:
		merged := left
		merged.runLength = left.runLength + freed.runLength
		t.setEntry(pivot, merged)
		t.binOccupancy += freed.runLength
	case touchesRight:
		merged := right.withStart(freed.startBin())
		merged.runLength = right.runLength + freed.runLength
		t.setEntry(pivot+1, merged)
		t.binOccupancy += freed.runLength
	default:
		t.insertAt(pivot+1, freed)
	}
}

// releaseBoundary handles the case where the binary search narrows without
// ever finding a pivot/pivot+1 window that brackets the freed extent: since
// the tracker is sorted and disjoint, that only happens when the freed
// extent sits before R[0] or after R[trackedCount-1]. Placement is decided
// against those two global endpoints directly, never against the loop's
// intermediate head/tail state.
func (a *Arena) releaseBoundary(t *trackerRegion, freed binHeader) {
	first := t.entry(0)
	if freed.end() <= first.startBin() {
		if int64(first.startBin())-int64(freed.end()) == 0 {
			merged := first.withStart(freed.startBin())
			merged.runLength = first.runLength + freed.runLength
			t.setEntry(0, merged)
			t.binOccupancy += freed.runLength
			return
		}
		t.insertAt(0, freed)
		return
	}

	last := t.entry(t.trackedCount - 1)
	if int64(freed.startBin())-int64(last.end()) == 0 {
		merged := last
		merged.runLength = last.runLength + freed.runLength
		t.setEntry(t.trackedCount-1, merged)
		t.binOccupancy += freed.runLength
		return
	}
	t.insertAt(t.trackedCount, freed)
}
