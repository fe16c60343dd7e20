// Package huffzip implements a whole-file Huffman coder: it counts byte
// frequencies, builds a frequency-weighted binary tree, assigns each byte a
// prefix-free variable-length code, and packs the per-byte codes into a dense
// bit stream.  The code table travels in a sidecar alongside the packed
// output and is all a decoder needs to invert the process.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffzip
