// Package client provides the `stamp` command-line client.
//
// `stamp next` asks a running server for new ids over the HTTP API, so the
// ids carry that server's machine id and share its sequence counter.
// `stamp parse` decodes an id locally with no server involved, for
// offline diagnostics against ids captured from logs.
//
// The HTTP base URL is discovered by the application that embeds the
// commands via a BaseURLFunc. The standalone binary defaults to
// http://127.0.0.1:8080 and honors STAMP_HTTP_URL.
//
// Usage
//
//	stamp next
//	stamp next --count 10
//	stamp parse 09dFCDS6P8y
//	stamp parse --json 09dFCDS6P8y
package client
