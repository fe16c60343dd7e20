package huffzip

// FreqTable maps a byte value to its number of occurrences.  Only bytes with
// a nonzero count are present.
type FreqTable map[byte]uint64

// CountFrequencies counts the occurrences of each byte value in data.
//
// When forceNewline is set, the newline byte is counted one extra time even
// if it never occurs, so a codeword always exists for it.  The original tool
// did this unconditionally; here it is a policy knob (see
// Options.AlwaysIncludeNewline).  Disabling it changes the generated codes
// but not correctness.
func CountFrequencies(data []byte, forceNewline bool) FreqTable {
	freqs := make(FreqTable, 64)
	for _, b := range data {
		freqs[b]++
	}
	if forceNewline {
		freqs['\n']++
	}
	return freqs
}
