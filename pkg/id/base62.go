package id

import "fmt"

// alphabet is ASCII-ordered so that equal-length encodings compare
// lexicographically in numeric order.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const base = uint64(len(alphabet))

// EncodedLen is the fixed width of an encoded ID. Eleven base-62 symbols
// cover the full 63-bit range.
const EncodedLen = 11

// encodeFixed renders v as exactly EncodedLen symbols, zero-padded on the
// left with alphabet[0].
func encodeFixed(v uint64) string {
	var buf [EncodedLen]byte
	for i := EncodedLen - 1; i >= 0; i-- {
		buf[i] = alphabet[v%base]
		v /= base
	}
	return string(buf[:])
}

// symbolValue maps one alphabet byte to its numeric value.
func symbolValue(c byte) (uint64, error) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), nil
	case c >= 'A' && c <= 'Z':
		return uint64(c-'A') + 10, nil
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 36, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCharacter, c)
}

// decode folds a base-62 string into its numeric value. It accepts any
// non-empty length; callers enforce width policy. Values past 63 bits fail
// with ErrValueOverflow so the result always round-trips through ID.
func decode(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidCharacter)
	}
	const maxPacked = uint64(1<<63 - 1)
	var v uint64
	for i := 0; i < len(s); i++ {
		d, err := symbolValue(s[i])
		if err != nil {
			return 0, err
		}
		if v > (maxPacked-d)/base {
			return 0, fmt.Errorf("%w: %q", ErrValueOverflow, s)
		}
		v = v*base + d
	}
	return v, nil
}
