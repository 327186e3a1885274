package bucketalloc

// classGeometry is the static layout of one size class: where its tracker
// region and payload region sit in the arena, and how many bins it holds.
type classGeometry struct {
	binSize       uint32
	binWidth      uint32 // binSize + HeaderSize
	binCount      uint32
	regionOffset  uint64 // payload region start, relative to arena start
	regionSize    uint64
	trackerOffset uint64 // tracker entry region start, relative to arena start
}

// arenaLayout is the fully computed placement of the tracker array and the
// six payload regions within one backing buffer.
type arenaLayout struct {
	totalSize    uint64
	trackerBytes uint64
	classes      [NumClasses]classGeometry
}

// maxBinIndexBits is the width of the upper bits of indexAndClass that hold
// the bin index (28 bits), limiting each class to 2^28 bins.
const maxBinIndexBits = 28

// computeLayout lays out one arena's backing buffer: for each class, round
// its percentage share up to baseAlign, compute its bin width and bin count
// (reserving one tracker slot per bin so a fully fragmented class can still
// describe every bin as a singleton extent), then lay the tracker array and
// the six payload regions out back to back.
func computeLayout(targetSize uint64, shares [NumClasses]float64, binSizes [NumClasses]uint32, headerSize uint32, baseAlign uint32) (arenaLayout, error) {
	var lay arenaLayout

	var trackerBins uint64
	for i := range binSizes {
		rawShare := alignUp(uint64(float64(targetSize)*shares[i]), uint64(baseAlign))
		binWidth := binSizes[i] + headerSize
		binCount := rawShare / uint64(binWidth+headerSize)

		if binCount > (1 << maxBinIndexBits) {
			return arenaLayout{}, layoutErrorf("class %d would need %d bins, exceeding the %d-bit bin-index budget", i, binCount, maxBinIndexBits)
		}

		lay.classes[i] = classGeometry{
			binSize:    binSizes[i],
			binWidth:   binWidth,
			binCount:   uint32(binCount),
			regionSize: binCount * uint64(binWidth),
		}
		trackerBins += binCount
	}

	lay.trackerBytes = trackerBins * uint64(headerSize)

	offset := lay.trackerBytes
	var trackerOffset uint64
	for i := range lay.classes {
		lay.classes[i].trackerOffset = trackerOffset
		lay.classes[i].regionOffset = offset
		offset += lay.classes[i].regionSize
		trackerOffset += uint64(lay.classes[i].binCount) * uint64(headerSize)
	}

	lay.totalSize = alignUp(lay.trackerBytes+sumRegionSizes(lay.classes), uint64(baseAlign))

	last := lay.classes[NumClasses-1]
	if last.regionOffset+last.regionSize != offset {
		return arenaLayout{}, layoutErrorf("payload region layout inconsistent: end %d != expected %d", offset, last.regionOffset+last.regionSize)
	}
	if offset > lay.totalSize {
		return arenaLayout{}, layoutErrorf("computed regions (%d bytes) exceed total arena size (%d bytes)", offset, lay.totalSize)
	}

	const addressSpaceBudget = uint64(1) << 32
	if lay.totalSize > addressSpaceBudget {
		return arenaLayout{}, layoutErrorf("arena size %d exceeds the 32-bit address-space budget", lay.totalSize)
	}

	return lay, nil
}

func sumRegionSizes(classes [NumClasses]classGeometry) uint64 {
	var sum uint64
	for _, c := range classes {
		sum += c.regionSize
	}
	return sum
}
