package huffzip

import (
	"bytes"
	"fmt"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Pack concatenates the codeword of every input byte, in input order, and
// packs the resulting bit sequence into octets, most significant bit first.
// The final octet is zero-padded; the returned BitString records how many
// bits are real so a decoder never has to guess where padding starts.
func Pack(data []byte, table CodeTable) (BitString, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	var bitLength int
	for i, b := range data {
		c, ok := table[b]
		if !ok {
			return BitString{}, fmt.Errorf("%w: byte %#02x at offset %d", ErrUnknownSymbol, b, i)
		}
		if err := w.WriteBits(c.Bits, c.Len); err != nil {
			return BitString{}, err
		}
		bitLength += int(c.Len)
	}
	if err := w.Close(); err != nil {
		return BitString{}, err
	}

	bs := BitString{Packed: buf.Bytes(), BitLength: bitLength}
	assert.Assertf(len(bs.Packed) == bs.ByteLen(),
		"packed %d octets for %d bits", len(bs.Packed), bitLength)
	return bs, nil
}

// Unpack expands a BitString back into its individual bits, most significant
// bit of each octet first, mirroring Pack.  Padding bits beyond BitLength
// are not included.  A BitLength outside the BitString invariant is clamped
// to the octets actually present.
func Unpack(bs BitString) []uint8 {
	bits := make([]uint8, bs.clampedBits())
	for i := range bits {
		bits[i] = (bs.Packed[i/8] >> uint(7-i%8)) & 1
	}
	return bits
}
