// Package proto contains the wire types and the service client surface of the
// Lunaris datasets API (lunaris.v1).
//
// The message structs here are a hand-maintained mirror of the platform's
// protobuf schema. SDK-facing packages never expose these types directly:
// they convert between them and the value types in the query and datasets
// packages.
package proto
