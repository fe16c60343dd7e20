package huffzip

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeTable_MarshalText(t *testing.T) {
	table := CodeTable{
		'a':  MakeCode(1, 0x1),
		'b':  MakeCode(2, 0x1),
		'\n': MakeCode(2, 0x0),
	}

	raw, err := table.MarshalText()
	require.NoError(t, err)

	expect := strings.Join([]string{
		`\n:00`,
		"a:1",
		"b:01",
		"",
	}, "\n")
	require.Equal(t, expect, string(raw))
}

func TestCodeTable_TextRoundTrip(t *testing.T) {
	table := CodeTable{
		'a':  MakeCode(1, 0x1),
		'b':  MakeCode(2, 0x1),
		'\n': MakeCode(2, 0x0),
	}

	raw, err := table.MarshalText()
	require.NoError(t, err)

	var parsed CodeTable
	require.NoError(t, parsed.UnmarshalText(raw))
	require.Equal(t, table, parsed)
}

func TestCodeTable_UnmarshalText_Errors(t *testing.T) {
	type testRow struct {
		name   string
		input  string
		expect error
	}

	testData := [...]testRow{
		{"no colon", "a1\n", ErrMalformedTable},
		{"empty codeword", "a:\n", ErrMalformedTable},
		{"bad digit", "a:01x\n", ErrMalformedTable},
		{"long token", "ab:01\n", ErrMalformedTable},
		{"duplicate symbol", "a:0\na:1\n", ErrMalformedTable},
		{"not prefix-free", "a:0\nb:01\n", ErrNotPrefixFree},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var table CodeTable
			err := table.UnmarshalText([]byte(row.input))
			require.ErrorIs(t, err, row.expect)
		})
	}
}

// A codeword for the colon byte produces the line "::<code>", which splits
// at its first colon into an empty token.  The text format cannot represent
// it; this is the documented ambiguity the binary sidecar avoids.
func TestCodeTable_TextColonAmbiguity(t *testing.T) {
	table := CodeTable{
		':': MakeCode(1, 0x0),
		'a': MakeCode(1, 0x1),
	}

	raw, err := table.MarshalText()
	require.NoError(t, err)

	var parsed CodeTable
	require.ErrorIs(t, parsed.UnmarshalText(raw), ErrMalformedTable)
}

func TestCodeTable_Validate(t *testing.T) {
	good := CodeTable{'a': MakeCode(1, 0x0), 'b': MakeCode(2, 0x2), 'c': MakeCode(2, 0x3)}
	if err := good.Validate(); err != nil {
		t.Errorf("valid table rejected: %v", err)
	}

	empty := CodeTable{'a': Code{}}
	if err := empty.Validate(); !errors.Is(err, ErrMalformedTable) {
		t.Errorf("empty codeword: expected ErrMalformedTable, got %v", err)
	}

	dup := CodeTable{'a': MakeCode(1, 0x0), 'b': MakeCode(1, 0x0)}
	if err := dup.Validate(); !errors.Is(err, ErrNotPrefixFree) {
		t.Errorf("duplicate codeword: expected ErrNotPrefixFree, got %v", err)
	}

	prefixed := CodeTable{'a': MakeCode(1, 0x1), 'b': MakeCode(3, 0x5)}
	if err := prefixed.Validate(); !errors.Is(err, ErrNotPrefixFree) {
		t.Errorf("prefixed codeword: expected ErrNotPrefixFree, got %v", err)
	}
}

func TestCodeTable_Invert(t *testing.T) {
	table := CodeTable{'a': MakeCode(1, 0x1), 'b': MakeCode(2, 0x1)}
	inverse := table.Invert()
	require.Equal(t, map[Code]byte{
		MakeCode(1, 0x1): 'a',
		MakeCode(2, 0x1): 'b',
	}, inverse)
}
