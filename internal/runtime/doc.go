// Package runtime wires the id generator, config, and the durable state
// store into a single stamp instance. It owns the one process-wide
// Generator, refuses to start when the wall clock sits behind the persisted
// issuance high-water mark or when the data directory was claimed by a
// different machine id, and checkpoints the high-water mark in the
// background.
//
// Example:
//
//	cfg := config.Default()
//	rt, _ := runtime.Open(runtime.Options{DataDir: "./data", Config: cfg})
//	defer rt.Close()
//	s, _ := rt.NextString()
package runtime
