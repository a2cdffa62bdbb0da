// Package didjws builds and decodes compact signed tokens (JOSE-style
// header.payload.signature strings) whose signing algorithm is selected from
// the issuing identity's key material rather than configured up front.
//
// The package is designed for concurrent callers: the algorithm registry is
// populated once during initialization and read-only afterward, and [Engine]
// methods are safe to call from multiple goroutines after [Builder.Build].
//
// # Architecture boundaries
//
// didjws is the public surface. It exposes [Engine], [Builder], [Config], the
// canonical segment encoders, and value types (DecodedToken, MetricsSnapshot,
// AuditEvent). Key material lives in package jwk, identity construction and
// resolution in package did, and the negotiation-protocol fixtures that
// consume tokens in package protocol.
//
// # What this package must NOT do
//
//   - Retain private key material beyond the duration of a single Sign call.
//   - Fall back to a default algorithm on a registry miss; an unregistered
//     composite id always surfaces as ErrUnsupportedAlgorithm.
//   - Verify signatures inside Decode; decoding is structural only.
package didjws
