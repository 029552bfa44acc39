package id

import (
	"errors"
	"sort"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 61, 62, 63, 3843, 3844, 130402561181093888, 1<<63 - 1}
	for _, v := range values {
		s := encodeFixed(v)
		if len(s) != EncodedLen {
			t.Fatalf("encode(%d): length %d, want %d", v, len(s), EncodedLen)
		}
		got, err := decode(s)
		if err != nil {
			t.Fatalf("decode(%q): %v", s, err)
		}
		if got != v {
			t.Fatalf("round trip: got %d want %d", got, v)
		}
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	for _, s := range []string{"00000000000", "09dFCDS6P8y", "0000000000z", "AzL8n0Y58m7"} {
		v, err := decode(s)
		if err != nil {
			t.Fatalf("decode(%q): %v", s, err)
		}
		if got := encodeFixed(v); got != s {
			t.Fatalf("encode(decode(%q)) = %q", s, got)
		}
	}
}

func TestDecodeRejectsForeignSymbols(t *testing.T) {
	for _, s := range []string{"", "abc-def", "id with sp", "émigré", "0000000000_"} {
		if _, err := decode(s); !errors.Is(err, ErrInvalidCharacter) {
			t.Fatalf("decode(%q): want ErrInvalidCharacter, got %v", s, err)
		}
	}
}

func TestDecodeRejectsOverflow(t *testing.T) {
	// One past the largest 63-bit value.
	for _, s := range []string{"AzL8n0Y58m8", "zzzzzzzzzzzz"} {
		_, err := decode(s)
		if !errors.Is(err, ErrValueOverflow) {
			t.Fatalf("decode(%q): want ErrValueOverflow, got %v", s, err)
		}
		if errors.Is(err, ErrInvalidCharacter) {
			t.Fatalf("decode(%q): overflow must not report ErrInvalidCharacter", s)
		}
	}
}

func TestEncodingPreservesOrder(t *testing.T) {
	values := []uint64{0, 1, 61, 62, 4095, 1 << 22, 1 << 40, 130402561181093888, 1<<63 - 1}
	encoded := make([]string, len(values))
	for i, v := range values {
		encoded[i] = encodeFixed(v)
	}
	if !sort.StringsAreSorted(encoded) {
		t.Fatalf("fixed-width encodings not in numeric order: %v", encoded)
	}
}
