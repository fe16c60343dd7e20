package huffzip

// Options controls compression policy.
type Options struct {
	// AlwaysIncludeNewline forces one extra frequency count for the
	// newline byte so a codeword always exists for it, matching the
	// original tool's output.  See CountFrequencies.
	AlwaysIncludeNewline bool
}

// DefaultOptions returns the options matching the original tool's behavior.
func DefaultOptions() Options {
	return Options{AlwaysIncludeNewline: true}
}

// Compress encodes data in one shot: count frequencies, build the tree,
// generate codes, pack.  It returns the packed bit stream and the code table
// a decoder needs to invert it.
//
// Zero-symbol input (empty data with AlwaysIncludeNewline disabled) is not
// an error: it yields an empty table and an empty bit stream, which
// Decompress maps back to zero bytes.
func Compress(data []byte, opts Options) (BitString, CodeTable, error) {
	freqs := CountFrequencies(data, opts.AlwaysIncludeNewline)
	if len(freqs) == 0 {
		return BitString{}, CodeTable{}, nil
	}

	root, err := buildTree(freqs)
	if err != nil {
		return BitString{}, nil, err
	}
	table, err := generateCodes(root)
	if err != nil {
		return BitString{}, nil, err
	}

	bs, err := Pack(data, table)
	if err != nil {
		return BitString{}, nil, err
	}
	return bs, table, nil
}

// Decompress decodes a packed bit stream with its code table.  It is
// strict: bs.BitLength must end on a codeword boundary.
func Decompress(bs BitString, table CodeTable) ([]byte, error) {
	if bs.BitLength == 0 {
		return nil, nil
	}
	d, err := NewDecoder(table)
	if err != nil {
		return nil, err
	}
	return d.Decode(bs)
}
