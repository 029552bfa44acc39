package id

import (
	"fmt"
	"time"
)

// Parsed is the read-only result of decoding an encoded id.
type Parsed struct {
	ID        ID        `json:"id"`
	MachineID int64     `json:"machineId"`
	Sequence  int64     `json:"sequence"`
	UTC       time.Time `json:"utc"`
	Local     time.Time `json:"local"`
}

// Parse decodes a fixed-width base-62 id back into its components. Local is
// the same instant rendered in the host timezone, a display convenience
// only. It fails with ErrMalformedID on wrong length, foreign characters,
// or values outside the packed range.
func Parse(s string) (Parsed, error) {
	if len(s) != EncodedLen {
		return Parsed{}, fmt.Errorf("%w: length %d, want %d", ErrMalformedID, len(s), EncodedLen)
	}
	v, err := decode(s)
	if err != nil {
		return Parsed{}, fmt.Errorf("%w: %w", ErrMalformedID, err)
	}
	return FromInt64(int64(v)), nil
}

// FromInt64 unpacks a raw packed value. Every 63-bit value decodes to some
// triple, so there is nothing further to validate.
func FromInt64(v int64) Parsed {
	i := ID(v)
	utc := i.Time()
	return Parsed{
		ID:        i,
		MachineID: i.MachineID(),
		Sequence:  i.Sequence(),
		UTC:       utc,
		Local:     utc.Local(),
	}
}
