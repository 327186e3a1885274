package bucketalloc

// BaseAlign is the alignment unit used for arena-share rounding and for the
// smallest payload alignment an allocation can request.
const BaseAlign = 8

// HeaderSize is the fixed width of a binHeader: two packed uint32 fields.
const HeaderSize = 8

// NumClasses is the number of power-of-two size classes the arena serves.
const NumClasses = 6

// BinSizes holds the usable payload size of a bin in each class, smallest
// class first.
var BinSizes = [NumClasses]uint32{32, 64, 128, 256, 512, 1024}

// ClassShares holds each class's fixed percentage share of the arena.
var ClassShares = [NumClasses]float64{0.05, 0.10, 0.15, 0.20, 0.25, 0.25}

// Hint is a bitfield combining the STRICT_SIZE flag with zero or more
// candidate-class bits. Class bits reuse the bin-size values themselves as
// identifiers, so they never collide with the low status flags a
// QueryResult packs into the same width.
type Hint uint32

const (
	// HintNone requests best-fit class selection.
	HintNone Hint = 0
	// StrictSize requires the selected class to be one of the candidate
	// class bits set in the hint.
	StrictSize Hint = 0x1

	Class32   Hint = 0x20
	Class64   Hint = 0x40
	Class128  Hint = 0x80
	Class256  Hint = 0x100
	Class512  Hint = 0x200
	Class1024 Hint = 0x400
)

// classBits maps a class index to its hint/status bit, in the same order as
// BinSizes.
var classBits = [NumClasses]Hint{Class32, Class64, Class128, Class256, Class512, Class1024}

// Status flags for QueryResult, packed below the class-bit range (class
// bits start at 0x20, so three low flag bits never collide with them).
const (
	StatusSuccess             uint32 = 0x1
	StatusNoFreeSpace         uint32 = 0x2
	StatusExcessFragmentation uint32 = 0x4
)

// QueryResult reports the outcome of a size-class/free-extent lookup.
type QueryResult struct {
	AllocBins    uint32
	Status       uint32
	TrackerIndex uint32
}

// Succeeded reports whether the query found a usable extent.
func (r QueryResult) Succeeded() bool {
	return r.Status&StatusSuccess != 0
}

// classOf returns the class index encoded in a hint/status bit, or -1 if the
// bit does not correspond to a known class.
func classOf(bit Hint) int {
	for i, b := range classBits {
		if b == bit {
			return i
		}
	}
	return -1
}

func alignUp(n, align uint64) uint64 {
	if align == 0 {
		return n
	}
	return (n + align - 1) / align * align
}
