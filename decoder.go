package huffzip

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Decoder matches the bits of a packed stream back to symbols.
type Decoder struct {
	byCode map[Code]byte
	maxLen uint8
}

// NewDecoder builds a Decoder from a code table.  The table must be valid
// and prefix-free; prefix-freedom is what lets the decoder emit a symbol at
// the first exact match without backtracking.
func NewDecoder(table CodeTable) (*Decoder, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	return &Decoder{
		byCode: table.Invert(),
		maxLen: table.MaxLen(),
	}, nil
}

// Decode expands bs back into a bit sequence and greedily matches it against
// the code table: each bit is appended to an accumulator, and as soon as the
// accumulator equals a codeword the mapped symbol is emitted and the
// accumulator resets.
//
// Decode is strict: exactly bs.BitLength bits are consumed and the stream
// must end on a codeword boundary.  A non-empty accumulator at end of stream
// is ErrTruncated, and an accumulator that outgrows every codeword is
// ErrUnknownCode.
func (d *Decoder) Decode(bs BitString) ([]byte, error) {
	return d.decode(bs, false)
}

// DecodePadded is Decode except that leftover accumulator bits at end of
// stream are discarded as byte-alignment padding.  This is how the legacy
// text sidecar has to be decoded, since it records no bit length; a padding
// sequence that happens to spell a complete codeword decodes to a spurious
// trailing symbol, which is exactly the ambiguity the binary sidecar's bit
// count removes.
func (d *Decoder) DecodePadded(bs BitString) ([]byte, error) {
	return d.decode(bs, true)
}

func (d *Decoder) decode(bs BitString, discardTrailing bool) ([]byte, error) {
	if bs.BitLength < 0 || bs.BitLength > len(bs.Packed)*8 {
		return nil, fmt.Errorf("%w: %d bits recorded, %d octets present", ErrTruncated, bs.BitLength, len(bs.Packed))
	}

	var out bytes.Buffer
	r := bitio.NewReader(bytes.NewReader(bs.Packed))

	var accum Code
	for i := 0; i < bs.BitLength; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		if bit {
			accum = accum.Append(1)
		} else {
			accum = accum.Append(0)
		}

		if symbol, found := d.byCode[accum]; found {
			out.WriteByte(symbol)
			accum = Code{}
			continue
		}
		if accum.Len > d.maxLen {
			return nil, fmt.Errorf("%w: %s at bit %d", ErrUnknownCode, accum, i+1-int(accum.Len))
		}
	}

	if accum.Len != 0 && !discardTrailing {
		return nil, fmt.Errorf("%w: %d leftover bits %s", ErrTruncated, accum.Len, accum)
	}
	return out.Bytes(), nil
}
