package huffzip

import (
	"errors"
	"testing"
)

func TestCode_BitString(t *testing.T) {
	type testRow struct {
		code   Code
		expect string
	}

	testData := [...]testRow{
		{MakeCode(0, 0), ""},
		{MakeCode(1, 0), "0"},
		{MakeCode(1, 1), "1"},
		{MakeCode(3, 0x5), "101"},
		{MakeCode(8, 0x01), "00000001"},
	}
	for _, row := range testData {
		actual := row.code.BitString()
		if actual != row.expect {
			t.Errorf("wrong bit string:\n\texpect: %q\n\tactual: %q", row.expect, actual)
		}
	}
}

func TestCode_Append(t *testing.T) {
	c := Code{}
	for _, bit := range []uint8{1, 0, 1, 1} {
		c = c.Append(bit)
	}
	if expect := MakeCode(4, 0xb); c != expect {
		t.Errorf("wrong code: expect %s, actual %s", expect, c)
	}
}

func TestParseCode(t *testing.T) {
	c, err := ParseCode("1011")
	if err != nil {
		t.Fatalf("ParseCode failed: %v", err)
	}
	if expect := MakeCode(4, 0xb); c != expect {
		t.Errorf("wrong code: expect %s, actual %s", expect, c)
	}

	if _, err := ParseCode(""); !errors.Is(err, ErrMalformedTable) {
		t.Errorf("empty codeword: expected ErrMalformedTable, got %v", err)
	}
	if _, err := ParseCode("01x0"); !errors.Is(err, ErrMalformedTable) {
		t.Errorf("bad digit: expected ErrMalformedTable, got %v", err)
	}

	tooLong := make([]byte, MaxCodeLen+1)
	for i := range tooLong {
		tooLong[i] = '0'
	}
	if _, err := ParseCode(string(tooLong)); !errors.Is(err, ErrCodeTooLong) {
		t.Errorf("oversized codeword: expected ErrCodeTooLong, got %v", err)
	}
}

func TestParseCode_RoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "01", "111000", "010101010101"} {
		c, err := ParseCode(s)
		if err != nil {
			t.Fatalf("ParseCode(%q) failed: %v", s, err)
		}
		if actual := c.BitString(); actual != s {
			t.Errorf("round trip: expect %q, actual %q", s, actual)
		}
	}
}
