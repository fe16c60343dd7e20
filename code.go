package huffzip

import (
	"fmt"
	"strconv"
)

// MaxCodeLen is the longest codeword this package will generate or accept.
// Reaching it requires Fibonacci-skewed frequency counts whose total exceeds
// any input that fits in memory, but the bound is checked everywhere codes
// are built or parsed.
const MaxCodeLen = 64

// Code represents a sequence of bits.
type Code struct {
	// Len holds the number of valid bits.
	Len uint8

	// Bits holds the actual values of the bits.  The first bit of the
	// sequence is the most significant of the Len valid bits, so the raw
	// value reads the same as the codeword written out in binary.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(length uint8, bits uint64) Code {
	return Code{Len: length, Bits: bits}
}

// Append returns the Code extended by one bit.  bit must be 0 or 1.
func (c Code) Append(bit uint8) Code {
	return Code{Len: c.Len + 1, Bits: c.Bits<<1 | uint64(bit&1)}
}

// BitString returns the codeword as a string of '0' and '1' characters, the
// form the legacy text sidecar uses.
func (c Code) BitString() string {
	if c.Len == 0 {
		return ""
	}
	format := "%0" + strconv.FormatUint(uint64(c.Len), 10) + "b"
	return fmt.Sprintf(format, c.Bits)
}

// String returns the quoted string representation of this Code.
func (c Code) String() string {
	return strconv.Quote(c.BitString())
}

var _ fmt.Stringer = Code{}

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(s string) (Code, error) {
	if s == "" {
		return Code{}, fmt.Errorf("%w: empty codeword", ErrMalformedTable)
	}
	if len(s) > MaxCodeLen {
		return Code{}, fmt.Errorf("%w: %d bits", ErrCodeTooLong, len(s))
	}
	var c Code
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			c = c.Append(0)
		case '1':
			c = c.Append(1)
		default:
			return Code{}, fmt.Errorf("%w: codeword byte %q", ErrMalformedTable, s[i])
		}
	}
	return c, nil
}
