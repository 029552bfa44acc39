// Package pebblestore wraps a Pebble database behind a small key/value
// surface with an explicit fsync policy. Stamp uses it for the instance
// state store: the machine-id claim and the issuance high-water mark.
package pebblestore
