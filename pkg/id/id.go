package id

import (
	"errors"
	"fmt"
	"time"
)

// Bit layout of the 63 usable bits, most significant first.
const (
	TimestampBits = 41
	MachineBits   = 10
	SequenceBits  = 12

	machineShift   = SequenceBits
	timestampShift = SequenceBits + MachineBits

	// MaxMachineID and MaxSequence are the largest representable field values.
	MaxMachineID = -1 ^ (-1 << MachineBits)
	MaxSequence  = -1 ^ (-1 << SequenceBits)

	maxTimestamp = -1 ^ (-1 << TimestampBits)
)

// Epoch is the reference instant all timestamps are offset against,
// in milliseconds since the Unix epoch (2023-01-01T00:00:00Z).
const Epoch int64 = 1672531200000

var (
	// ErrInvalidMachineID reports a machine id outside 0..MaxMachineID.
	ErrInvalidMachineID = errors.New("id: machine id out of range")
	// ErrClockRegression reports a clock reading earlier than the last
	// issued millisecond.
	ErrClockRegression = errors.New("id: clock moved backwards")
	// ErrFieldOverflow reports a field that does not fit its bit width.
	// Seeing it indicates a logic or configuration bug.
	ErrFieldOverflow = errors.New("id: field exceeds bit width")
	// ErrInvalidCharacter reports a symbol outside the base-62 alphabet.
	ErrInvalidCharacter = errors.New("id: invalid character")
	// ErrValueOverflow reports a well-formed encoding whose value exceeds
	// the packed range.
	ErrValueOverflow = errors.New("id: value overflows packed range")
	// ErrMalformedID reports an encoded id that cannot be decoded.
	ErrMalformedID = errors.New("id: malformed id")
)

// ID is a packed 64-bit identifier. The zero value encodes the epoch
// instant, machine 0, sequence 0.
type ID int64

// pack combines the three fields, validating each against its width.
func pack(offsetMs, machineID, sequence int64) (ID, error) {
	if offsetMs < 0 || offsetMs > maxTimestamp {
		return 0, fmt.Errorf("%w: timestamp offset %d", ErrFieldOverflow, offsetMs)
	}
	if machineID < 0 || machineID > MaxMachineID {
		return 0, fmt.Errorf("%w: machine id %d", ErrFieldOverflow, machineID)
	}
	if sequence < 0 || sequence > MaxSequence {
		return 0, fmt.Errorf("%w: sequence %d", ErrFieldOverflow, sequence)
	}
	return ID(offsetMs<<timestampShift | machineID<<machineShift | sequence), nil
}

// OffsetMs returns the milliseconds elapsed between Epoch and issuance.
func (i ID) OffsetMs() int64 { return int64(i) >> timestampShift }

// MachineID returns the issuing machine id.
func (i ID) MachineID() int64 { return (int64(i) >> machineShift) & MaxMachineID }

// Sequence returns the intra-millisecond sequence number.
func (i ID) Sequence() int64 { return int64(i) & MaxSequence }

// Time returns the issuance instant in UTC at millisecond resolution.
func (i ID) Time() time.Time {
	return time.UnixMilli(Epoch + i.OffsetMs()).UTC()
}

// Encode returns the fixed-width base-62 form.
func (i ID) Encode() string { return encodeFixed(uint64(i)) }

// String returns the same fixed-width base-62 form as Encode.
func (i ID) String() string { return i.Encode() }
