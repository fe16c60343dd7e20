package huffzip

import (
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	freqs := CountFrequencies([]byte("aaab"), false)

	expect := FreqTable{'a': 3, 'b': 1}
	if len(freqs) != len(expect) {
		t.Fatalf("wrong table size: expect %d, actual %d", len(expect), len(freqs))
	}
	for symbol, count := range expect {
		if freqs[symbol] != count {
			t.Errorf("wrong count for %q: expect %d, actual %d", symbol, count, freqs[symbol])
		}
	}
}

func TestCountFrequencies_ForceNewline(t *testing.T) {
	freqs := CountFrequencies([]byte("aaab"), true)
	if freqs['\n'] != 1 {
		t.Errorf("expected forced newline count 1, got %d", freqs['\n'])
	}

	// A newline already present gets one extra count on top.
	freqs = CountFrequencies([]byte("a\n\n"), true)
	if freqs['\n'] != 3 {
		t.Errorf("expected newline count 3, got %d", freqs['\n'])
	}
}

func TestCountFrequencies_Empty(t *testing.T) {
	if freqs := CountFrequencies(nil, false); len(freqs) != 0 {
		t.Errorf("expected empty table, got %v", freqs)
	}
	if freqs := CountFrequencies(nil, true); len(freqs) != 1 || freqs['\n'] != 1 {
		t.Errorf("expected table with only the forced newline, got %v", freqs)
	}
}
