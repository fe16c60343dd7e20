package huffzip

import (
	"bytes"
	"fmt"
	"sort"
)

// CodeTable maps a byte value to its codeword.
type CodeTable map[byte]Code

// Symbols returns the table's byte values in ascending order.
func (t CodeTable) Symbols() []byte {
	symbols := make([]byte, 0, len(t))
	for symbol := range t {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols
}

// MaxLen returns the length in bits of the longest codeword.
func (t CodeTable) MaxLen() uint8 {
	var max uint8
	for _, c := range t {
		if c.Len > max {
			max = c.Len
		}
	}
	return max
}

// Invert returns the codeword-to-symbol mapping the decoder matches against.
func (t CodeTable) Invert() map[Code]byte {
	inverse := make(map[Code]byte, len(t))
	for symbol, c := range t {
		inverse[c] = symbol
	}
	return inverse
}

// Validate checks that every codeword is non-empty, within MaxCodeLen, and
// that no codeword is a prefix of another.
func (t CodeTable) Validate() error {
	seen := make(map[Code]byte, len(t))
	for symbol, c := range t {
		if c.Len == 0 {
			return fmt.Errorf("%w: empty codeword for symbol %#02x", ErrMalformedTable, symbol)
		}
		if c.Len > MaxCodeLen {
			return fmt.Errorf("%w: %d bits for symbol %#02x", ErrCodeTooLong, c.Len, symbol)
		}
		if other, dup := seen[c]; dup {
			return fmt.Errorf("%w: symbols %#02x and %#02x share codeword %s", ErrNotPrefixFree, other, symbol, c)
		}
		seen[c] = symbol
	}
	for symbol, c := range t {
		prefix := c
		for prefix.Len > 1 {
			prefix.Len--
			prefix.Bits >>= 1
			if other, found := seen[prefix]; found {
				return fmt.Errorf("%w: codeword %s of symbol %#02x is a prefix of symbol %#02x's",
					ErrNotPrefixFree, prefix, other, symbol)
			}
		}
	}
	return nil
}

// MarshalText serializes the table in the legacy line format: one
// `<symbol-token>:<code>` line per codeword, with the newline byte escaped as
// the two-character token `\n`.  Lines are emitted in ascending symbol order
// so identical tables serialize identically.
//
// Known limitation, kept for compatibility rather than silently fixed: a
// data byte of ':' or a data byte sequence spelling `\n` makes the line
// format ambiguous.  The binary sidecar format (WriteSidecar) has no
// delimiters and no such collisions.
func (t CodeTable) MarshalText() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	for _, symbol := range t.Symbols() {
		if symbol == '\n' {
			buf.WriteString(`\n`)
		} else {
			buf.WriteByte(symbol)
		}
		buf.WriteByte(':')
		buf.WriteString(t[symbol].BitString())
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// UnmarshalText parses the legacy line format produced by MarshalText.
// Each non-empty line is split at its first colon; the left side is the
// symbol token (with the inverse `\n` escape applied), the right side the
// verbatim codeword.
func (t *CodeTable) UnmarshalText(data []byte) error {
	table := make(CodeTable, 64)
	for lineNo, line := range bytes.Split(data, []byte{'\n'}) {
		if len(line) == 0 {
			continue
		}
		colon := bytes.IndexByte(line, ':')
		if colon < 0 {
			return fmt.Errorf("%w: line %d has no colon", ErrMalformedTable, lineNo+1)
		}
		token, codeword := line[:colon], line[colon+1:]

		var symbol byte
		switch {
		case len(token) == 1:
			symbol = token[0]
		case bytes.Equal(token, []byte(`\n`)):
			symbol = '\n'
		default:
			return fmt.Errorf("%w: line %d has symbol token %q", ErrMalformedTable, lineNo+1, token)
		}

		c, err := ParseCode(string(codeword))
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo+1, err)
		}
		if _, dup := table[symbol]; dup {
			return fmt.Errorf("%w: line %d repeats symbol %#02x", ErrMalformedTable, lineNo+1, symbol)
		}
		table[symbol] = c
	}
	if err := table.Validate(); err != nil {
		return err
	}
	*t = table
	return nil
}
