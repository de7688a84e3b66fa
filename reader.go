package bitstream

import (
	"io"
)

// BigEndianReader reads bits from an io.Reader, most-significant bit first.
// It implements BitReader.
type BigEndianReader struct {
	stream  io.Reader
	scratch [1]byte

	// The low pending bits of cache are the unconsumed bits of the byte most
	// recently pulled from the stream. pending is always in [0,8): a refill
	// loads exactly one byte and the first bit of it is consumed immediately.
	cache   byte
	pending uint8
}

// NewBigEndianReader returns a new instance of BigEndianReader.
// The reader owns r for its lifetime; r must not be read elsewhere while the
// reader is in use.
func NewBigEndianReader(r io.Reader) *BigEndianReader {
	b := new(BigEndianReader)
	b.stream = r
	return b
}

// nextBit returns the next single bit of the stream, MSB first. When the
// cache is drained it pulls exactly one byte from the stream; a failed pull
// leaves the cache untouched, so alignment is unchanged on error.
func (br *BigEndianReader) nextBit() (uint32, error) {
	if br.pending == 0 {
		if _, err := io.ReadFull(br.stream, br.scratch[:]); err != nil {
			return Zero, err
		}
		br.cache = br.scratch[0]
		br.pending = 8
	}
	br.pending--
	return uint32(br.cache>>br.pending) & 1, nil
}

// Read reads the next numBits bits from the stream and returns them as an
// unsigned value, first bit read in the most-significant position.
func (br *BigEndianReader) Read(numBits uint) (uint32, error) {
	var acc uint32
	for ; numBits > 0; numBits-- {
		bit, err := br.nextBit()
		if err != nil {
			return 0, err
		}
		acc = acc<<1 | bit
	}
	return acc, nil
}

// ReadSigned reads the next numBits bits from the stream as a twos-complement
// signed value: if bit numBits-1 of the unsigned reading is set, the result
// is that reading minus 1<<numBits. numBits must be at least 1.
func (br *BigEndianReader) ReadSigned(numBits uint) (int32, error) {
	u, err := br.Read(numBits)
	if err != nil {
		return 0, err
	}
	if u&(1<<(numBits-1)) == 0 {
		return int32(u), nil
	}
	return int32(int64(u) - int64(1)<<numBits), nil
}

// Skip advances the stream by numBits bits. Bits are consumed one at a time,
// so failure points match Read exactly; byte-aligned distances could skip
// over the stream directly, but the per-bit path is kept for uniformity.
func (br *BigEndianReader) Skip(numBits uint) error {
	for ; numBits > 0; numBits-- {
		if _, err := br.nextBit(); err != nil {
			return err
		}
	}
	return nil
}

// ReadBytes completely fills p with the next 8*len(p) bits of the stream.
// When the reader is byte-aligned it maps to a single bulk read of the
// stream and p is untouched on failure; otherwise bytes are assembled one
// Read(8) at a time across byte boundaries.
func (br *BigEndianReader) ReadBytes(p []byte) error {
	if br.ByteAligned() {
		_, err := io.ReadFull(br.stream, p)
		return err
	}
	for i := range p {
		b, err := br.Read(8)
		if err != nil {
			return err
		}
		p[i] = byte(b)
	}
	return nil
}

// ReadUnary0 counts the run of One bits preceding the next Zero bit and
// returns the count. The Zero stop bit is consumed but not counted. There is
// no bound on the run; a degenerate stream ends only with the source's error.
func (br *BigEndianReader) ReadUnary0() (uint32, error) {
	var acc uint32
	for {
		bit, err := br.nextBit()
		if err != nil {
			return 0, err
		}
		if bit == Zero {
			return acc, nil
		}
		acc++
	}
}

// ReadUnary1 counts the run of Zero bits preceding the next One bit and
// returns the count. The One stop bit is consumed but not counted.
func (br *BigEndianReader) ReadUnary1() (uint32, error) {
	var acc uint32
	for {
		bit, err := br.nextBit()
		if err != nil {
			return 0, err
		}
		if bit == One {
			return acc, nil
		}
		acc++
	}
}

// ByteAligned reports whether the next read will start at a whole byte of
// the underlying stream.
func (br *BigEndianReader) ByteAligned() bool {
	return br.pending == 0
}

// ByteAlign discards the unconsumed bits of the current byte. The cache only
// ever holds leftovers of the byte most recently pulled from the stream, so
// dropping it lands the next read exactly on the next byte boundary.
func (br *BigEndianReader) ByteAlign() {
	br.pending = 0
}
