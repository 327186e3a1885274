package bucketalloc

import "encoding/binary"

// binHeader is the shape shared by a live allocation's payload header and a
// tracker-resident free-extent record. For a payload header, runLength is
// the number of bins the allocation consumes. For a tracker entry, it is
// the length of the free run. The class nibble of indexAndClass is load-
// bearing on a payload header (it identifies which class's arithmetic to
// use when recovering the bin index on release) but purely informational
// on a tracker-resident copy, since the tracker region itself already
// identifies the class.
type binHeader struct {
	indexAndClass uint32
	runLength     uint32
}

func makeHeader(binIndex uint32, class uint8, runLength uint32) binHeader {
	return binHeader{
		indexAndClass: binIndex<<4 | uint32(class&0xF),
		runLength:     runLength,
	}
}

func (h binHeader) startBin() uint32 {
	return h.indexAndClass >> 4
}

func (h binHeader) class() uint8 {
	return uint8(h.indexAndClass & 0xF)
}

func (h binHeader) end() uint32 {
	return h.startBin() + h.runLength
}

func (h binHeader) withStart(start uint32) binHeader {
	h.indexAndClass = start<<4 | uint32(h.class())
	return h
}

func encodeHeader(dst []byte, h binHeader) {
	binary.LittleEndian.PutUint32(dst[0:4], h.indexAndClass)
	binary.LittleEndian.PutUint32(dst[4:8], h.runLength)
}

func decodeHeader(src []byte) binHeader {
	return binHeader{
		indexAndClass: binary.LittleEndian.Uint32(src[0:4]),
		runLength:     binary.LittleEndian.Uint32(src[4:8]),
	}
}
