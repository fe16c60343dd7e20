package huffzip

import (
	"errors"
)

var (
	// ErrNoSymbols is returned when a tree is requested for an empty
	// frequency table.
	ErrNoSymbols = errors.New("huffzip: no symbols to code")

	// ErrUnknownSymbol is returned when the input contains a byte the
	// code table has no codeword for.
	ErrUnknownSymbol = errors.New("huffzip: symbol not present in code table")

	// ErrUnknownCode is returned when the packed stream contains a bit
	// sequence longer than every codeword without matching any of them.
	ErrUnknownCode = errors.New("huffzip: bit sequence matches no codeword")

	// ErrTruncated is returned by strict decoding when the stream ends in
	// the middle of a codeword.
	ErrTruncated = errors.New("huffzip: bit stream ends inside a codeword")

	// ErrNotPrefixFree is returned when one codeword in a table is a
	// prefix of another, which makes greedy decoding ambiguous.
	ErrNotPrefixFree = errors.New("huffzip: code table is not prefix-free")

	// ErrMalformedTable is returned for a sidecar whose records cannot be
	// parsed.
	ErrMalformedTable = errors.New("huffzip: malformed code table")

	// ErrCodeTooLong is returned for codewords beyond MaxCodeLen bits.
	ErrCodeTooLong = errors.New("huffzip: codeword too long")

	// ErrBadMagic is returned when a binary sidecar does not start with
	// the huffzip signature.
	ErrBadMagic = errors.New("huffzip: bad sidecar signature")

	// ErrBadVersion is returned for a binary sidecar written by an
	// unknown format version.
	ErrBadVersion = errors.New("huffzip: unsupported sidecar version")

	// ErrChecksum is returned when a binary sidecar fails its CRC check.
	ErrChecksum = errors.New("huffzip: sidecar checksum mismatch")
)
