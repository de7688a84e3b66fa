// Package bitstream provides a wrapper for io.Reader to allow bit-granularity
// access to the stream, following the MSB pattern, where the most-significant
// bits of each byte are read first.
//
// A reader assumes exclusive use of its underlying io.Reader for its entire
// lifetime. A single reader instance is not safe for concurrent use; buffer
// state is mutated on every read.
package bitstream

// Bit values as delivered by the reader.
const (
	Zero uint32 = 0
	One  uint32 = 1
)

// BitReader is the capability set of a bit-granularity reader. The bit order
// within each byte is determined by the implementation.
type BitReader interface {
	// Read returns the next numBits bits of the stream as an unsigned value.
	// numBits must be in [1,32]; this is not validated, and a width wider
	// than the caller's target type is the caller's responsibility.
	Read(numBits uint) (uint32, error)

	// ReadSigned returns the next numBits bits of the stream as a
	// twos-complement signed value. numBits must be in [1,32]; a width of 0
	// is undefined.
	ReadSigned(numBits uint) (int32, error)

	// Skip advances the stream by numBits bits without returning a value.
	// It consumes bits and fails exactly as Read does.
	Skip(numBits uint) error

	// ReadBytes completely fills p with the next 8*len(p) bits of the
	// stream. On failure no partial fill of p is observable when the reader
	// was byte-aligned at the call.
	ReadBytes(p []byte) error

	// ReadUnary0 counts consecutive One bits and consumes, without counting,
	// the terminating Zero bit.
	ReadUnary0() (uint32, error)

	// ReadUnary1 counts consecutive Zero bits and consumes, without
	// counting, the terminating One bit.
	ReadUnary1() (uint32, error)

	// ByteAligned reports whether no bits of a partially consumed byte
	// remain buffered.
	ByteAligned() bool

	// ByteAlign discards any buffered bits, so that the next read starts at
	// the next whole byte of the underlying stream.
	ByteAlign()
}
