package bucketalloc

// Query chooses a size class for byteCount (honoring hint), computes how
// many bins the request needs, and locates a first-fit free extent without
// carving anything. It is the read-only half of Allocate, usable on its own
// to probe whether a request would succeed.
func (a *Arena) Query(byteCount uint64, hint Hint) QueryResult {
	aligned := alignUp(byteCount, BaseAlign)

	class, ok := a.selectClass(uint32(aligned), hint)
	if !ok {
		// Exceeds the largest class: a plain failure, not fragmentation.
		return QueryResult{Status: StatusNoFreeSpace}
	}

	geom := a.layout.classes[class]
	w := geom.binSize + HeaderSize
	n := (uint32(aligned) + w - 1) / w
	if n == 0 {
		n = 1
	}

	t := a.trackers[class]
	statusClassBit := uint32(classBits[class])

	if t.binOccupancy < n {
		a.cfg.Logger.Debug("bucketalloc: no free space", "class", class, "need", n, "occupancy", t.binOccupancy)
		return QueryResult{Status: StatusNoFreeSpace | statusClassBit}
	}

	idx, found := t.firstFit(n)
	if !found {
		a.cfg.Logger.Debug("bucketalloc: excess fragmentation", "class", class, "need", n)
		return QueryResult{Status: StatusNoFreeSpace | StatusExcessFragmentation | statusClassBit}
	}

	return QueryResult{
		AllocBins:    n,
		Status:       StatusSuccess | statusClassBit,
		TrackerIndex: idx,
	}
}

// selectClass defaults to best-fit: the smallest class whose bin size fits
// aligned. With StrictSize set in hint, it instead picks the largest class
// whose bit is present in hint, falling through to best-fit if hint carries
// no candidate class bit at all.
func (a *Arena) selectClass(aligned uint32, hint Hint) (int, bool) {
	if hint&StrictSize != 0 {
		for i := NumClasses - 1; i >= 0; i-- {
			if hint&classBits[i] != 0 {
				return i, true
			}
		}
		// No candidate bit set: fall through to best-fit.
	}

	for i := 0; i < NumClasses; i++ {
		if BinSizes[i] >= aligned {
			return i, true
		}
	}
	return 0, false
}
