// Package id provides a 64-bit, time-sortable identifier with a compact
// base-62 string form.
//
// # Format
//
// An ID packs three fields into 63 bits (the sign bit stays zero):
//
//	41 bits  milliseconds since the stamp epoch (2023-01-01T00:00:00Z)
//	10 bits  machine id (0..1023)
//	12 bits  per-millisecond sequence (0..4095)
//
// Numeric order therefore tracks issuance order per machine, and the
// fixed-width base-62 encoding preserves that order lexicographically.
//
// # Monotonicity
//
// The Generator serializes issuance behind a mutex:
//   - If the clock reads earlier than the last issued millisecond, Next
//     fails with ErrClockRegression rather than risk a duplicate or
//     out-of-order id. Callers retry or escalate.
//   - If the sequence would overflow within one millisecond, Next waits for
//     the clock to advance before emitting the next id.
//
// Usage
//
//	g, err := id.NewGenerator(42)
//	next, err := g.Next()
//	s := next.Encode()        // fixed-width base-62 string
//	p, err := id.Parse(s)     // machine id, sequence, UTC and local time
package id
