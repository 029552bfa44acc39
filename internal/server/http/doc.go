// Package httpserver exposes stamp's HTTP API: health, id issuance
// (single and batch), and offline id parsing. Every handled request is also
// tagged with a freshly issued id via middleware, echoed back in the
// X-Request-Id header and attached to log fields.
package httpserver
