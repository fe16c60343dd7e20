package huffzip

// BitString represents a packed bit string.  Within each octet, bits are
// addressed most significant first.
//
// Invariants:
//   - 0 <= BitLength <= len(Packed)*8
//   - if BitLength%8 != 0, the low (8 - BitLength%8) bits of the final
//     octet are zero
//
// BitLength is what makes decoding exact: without it a reader cannot tell
// real trailing bits from byte-alignment padding.
type BitString struct {
	Packed    []byte
	BitLength int
}

// ByteLen returns the number of octets needed to hold BitLength bits.
func (bs BitString) ByteLen() int {
	return (bs.BitLength + 7) / 8
}

// clampedBits returns BitLength forced back inside the invariant, for
// callers that only read bits and must not panic on a malformed value.
func (bs BitString) clampedBits() int {
	n := bs.BitLength
	if n < 0 {
		n = 0
	}
	if max := len(bs.Packed) * 8; n > max {
		n = max
	}
	return n
}

func (bs BitString) String() string {
	runes := make([]rune, bs.clampedBits())
	for i := range runes {
		bit := (bs.Packed[i/8] >> uint(7-i%8)) & 1
		if bit == 0 {
			runes[i] = '0'
		} else {
			runes[i] = '1'
		}
	}
	return string(runes)
}
