package bucketalloc

import "unsafe"

// Allocate carves a payload of at least byteCount bytes out of the class
// selected by hint, returning the address just past its header. It returns
// nil for a zero-byte request, for a request larger than the largest class,
// and for NoSpace/ExcessFragmentation outcomes. A non-positive or
// non-multiple-of-4 payloadAlignment is a programmer error: it is reported
// to the configured DebugReporter and the call panics.
func (a *Arena) Allocate(byteCount uint64, hint Hint, payloadAlignment uint32, debugTag uint64) unsafe.Pointer {
	if byteCount == 0 {
		return nil
	}
	if payloadAlignment == 0 || payloadAlignment%4 != 0 {
		a.cfg.Reporter.Abort(badAlignmentErrorf("payload alignment %d must be a positive multiple of 4", payloadAlignment))
		return nil // unreachable: Abort does not return
	}

	effective := alignUp(byteCount, uint64(payloadAlignment))

	res := a.Query(effective, hint)
	if !res.Succeeded() {
		return nil
	}

	class := classOf(Hint(res.Status &^ (StatusSuccess | StatusNoFreeSpace | StatusExcessFragmentation)))
	return a.carve(class, res.TrackerIndex, res.AllocBins, debugTag)
}

// carve recovers the free extent a query chose, writes the payload header
// at its start, shrinks the extent in place or removes it entirely
// depending on how much of it the request consumes, and returns the
// address past the header.
func (a *Arena) carve(classIndex int, trackerIdx, n uint32, debugTag uint64) unsafe.Pointer {
	t := a.trackers[classIndex]
	entry := t.entry(trackerIdx)

	binStart := a.payloadAddr(classIndex, entry.startBin())
	encodeHeader(unsafe.Slice((*byte)(binStart), HeaderSize), makeHeader(entry.startBin(), uint8(classIndex), n))

	if entry.runLength > n {
		shrunk := entry.withStart(entry.startBin() + n)
		shrunk.runLength = entry.runLength - n
		t.setEntry(trackerIdx, shrunk)
		t.binOccupancy -= n
	} else {
		// removeAt already subtracts the entry's full run length (== n here).
		t.removeAt(trackerIdx)
	}

	payload := unsafe.Add(binStart, HeaderSize)
	if debugTaggingEnabled {
		a.debugTags[uintptr(payload)] = debugTag
	}

	a.cfg.Logger.Debug("bucketalloc: carved", "class", classIndex, "bin", entry.startBin(), "n", n)
	return payload
}
