package huffzip

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"
)

// Sidecar is the decode-side metadata that travels next to the packed
// output: the code table plus the exact bit length of the packed stream.
type Sidecar struct {
	Table CodeTable

	// BitLength is the number of meaningful bits in the packed stream.
	// Trailing bits beyond it are byte-alignment padding.
	BitLength int
}

// Binary sidecar layout, all integers big-endian:
//
//	offset  size  field
//	0       4     signature "hufz"
//	4       1     format version (currently 1)
//	5       2     symbol count
//	7       8     packed stream bit length
//	15      ...   records: symbol byte, codeword bit length byte,
//	              ceil(len/8) codeword bytes (first bit in the MSB of the
//	              first byte, unused low bits zero)
//	...     4     CRC-32 (IEEE) of every preceding byte
//
// Unlike the legacy text format this is delimiter-free, so no data byte can
// collide with the framing, and the recorded bit length removes the padding
// ambiguity at the end of the packed stream.
var sidecarMagic = [4]byte{'h', 'u', 'f', 'z'}

const sidecarVersion = 1

// WriteSidecar writes sc to w in the binary sidecar format.
func WriteSidecar(w io.Writer, sc Sidecar) error {
	if err := sc.Table.Validate(); err != nil {
		return err
	}
	if sc.BitLength < 0 {
		return fmt.Errorf("%w: negative bit length %d", ErrMalformedTable, sc.BitLength)
	}

	var buf bytes.Buffer
	buf.Write(sidecarMagic[:])
	buf.WriteByte(sidecarVersion)

	var scratch [8]byte
	binary.BigEndian.PutUint16(scratch[:2], uint16(len(sc.Table)))
	buf.Write(scratch[:2])
	binary.BigEndian.PutUint64(scratch[:8], uint64(sc.BitLength))
	buf.Write(scratch[:8])

	for _, symbol := range sc.Table.Symbols() {
		c := sc.Table[symbol]
		buf.WriteByte(symbol)
		buf.WriteByte(c.Len)
		// Left-align the codeword so its first bit lands in the MSB of
		// the first record byte.
		aligned := c.Bits << (64 - uint(c.Len))
		binary.BigEndian.PutUint64(scratch[:8], aligned)
		buf.Write(scratch[:(int(c.Len)+7)/8])
	}

	binary.BigEndian.PutUint32(scratch[:4], crc32.ChecksumIEEE(buf.Bytes()))
	buf.Write(scratch[:4])

	_, err := buf.WriteTo(w)
	return err
}

// ReadSidecar parses a binary sidecar previously written by WriteSidecar.
func ReadSidecar(r io.Reader) (Sidecar, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Sidecar{}, err
	}
	return parseSidecar(raw)
}

// IsBinarySidecar reports whether raw starts with the binary sidecar
// signature.  Sidecars that do not are assumed to be in the legacy text
// format.
func IsBinarySidecar(raw []byte) bool {
	return len(raw) >= len(sidecarMagic) && bytes.Equal(raw[:len(sidecarMagic)], sidecarMagic[:])
}

func parseSidecar(raw []byte) (Sidecar, error) {
	const headerLen = 4 + 1 + 2 + 8
	if len(raw) < headerLen+4 {
		return Sidecar{}, fmt.Errorf("%w: %d bytes is too short", ErrMalformedTable, len(raw))
	}
	if !IsBinarySidecar(raw) {
		return Sidecar{}, ErrBadMagic
	}
	if raw[4] != sidecarVersion {
		return Sidecar{}, fmt.Errorf("%w: version %d", ErrBadVersion, raw[4])
	}

	body, trailer := raw[:len(raw)-4], raw[len(raw)-4:]
	if sum := crc32.ChecksumIEEE(body); sum != binary.BigEndian.Uint32(trailer) {
		return Sidecar{}, fmt.Errorf("%w: computed %#08x, recorded %#08x",
			ErrChecksum, sum, binary.BigEndian.Uint32(trailer))
	}

	numSymbols := int(binary.BigEndian.Uint16(raw[5:7]))
	bitLength := binary.BigEndian.Uint64(raw[7:15])
	// The bit length must survive the conversion to int and the +7
	// rounding in ByteLen without wrapping.
	if bitLength > math.MaxInt64/8 {
		return Sidecar{}, fmt.Errorf("%w: implausible bit length %d", ErrMalformedTable, bitLength)
	}

	table := make(CodeTable, numSymbols)
	rest := body[headerLen:]
	for i := 0; i < numSymbols; i++ {
		if len(rest) < 2 {
			return Sidecar{}, fmt.Errorf("%w: record %d truncated", ErrMalformedTable, i)
		}
		symbol, codeLen := rest[0], rest[1]
		rest = rest[2:]
		if codeLen == 0 || codeLen > MaxCodeLen {
			return Sidecar{}, fmt.Errorf("%w: record %d has codeword length %d", ErrMalformedTable, i, codeLen)
		}
		numBytes := (int(codeLen) + 7) / 8
		if len(rest) < numBytes {
			return Sidecar{}, fmt.Errorf("%w: record %d truncated", ErrMalformedTable, i)
		}

		var aligned uint64
		for j := 0; j < numBytes; j++ {
			aligned |= uint64(rest[j]) << (56 - 8*uint(j))
		}
		rest = rest[numBytes:]

		if _, dup := table[symbol]; dup {
			return Sidecar{}, fmt.Errorf("%w: record %d repeats symbol %#02x", ErrMalformedTable, i, symbol)
		}
		table[symbol] = MakeCode(codeLen, aligned>>(64-uint(codeLen)))
	}
	if len(rest) != 0 {
		return Sidecar{}, fmt.Errorf("%w: %d trailing bytes after %d records", ErrMalformedTable, len(rest), numSymbols)
	}
	if err := table.Validate(); err != nil {
		return Sidecar{}, err
	}

	return Sidecar{Table: table, BitLength: int(bitLength)}, nil
}
